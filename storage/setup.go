// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/orderd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Orders       *PoolHandle `prefix:"O" registry:"Order"`
	SellerInfo   *PoolHandle `prefix:"S" registry:"OrderSellerInfo"`
	Sellers      *PoolHandle `prefix:"E" registry:"Seller"`
	Buyers       *PoolHandle `prefix:"B" registry:"Buyer"`
	Accounts     *PoolHandle `prefix:"A" registry:"Account"`
	Transactions *PoolHandle `prefix:"T"`
	Events       *PoolHandle `prefix:"V"`
	Sequence     *PoolHandle `prefix:"N"`
	TestData     *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open ledger database
type Database struct {
	sync.Mutex

	// Pool - the set of exported pools
	Pool pools

	db         *leveldb.DB
	trx        *transaction
	registries map[string]*PoolHandle
}

// Open - open up the database connection
//
// creates the database if it does not exist, unless opened read only
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - an in-memory database, contents are lost on Close
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Database, error) {

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	} else if version != currentDBVersion {
		return nil, fault.IncompatibleDatabase
	}

	d := &Database{
		db:         db,
		trx:        newTransaction(db),
		registries: make(map[string]*PoolHandle),
	}

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			name:   fieldInfo.Name,
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))

		if registry := fieldInfo.Tag.Get("registry"); "" != registry {
			d.registries[registry] = p
		}
	}

	ok = true // prevent db close
	return d, nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// Registry - the pool holding records of the given short type name
func (d *Database) Registry(name string) (*PoolHandle, bool) {
	p, ok := d.registries[name]
	return p, ok
}

// Begin - start the single write transaction
//
// only one transaction may be active at a time, the caller is
// responsible for serialising access
func (d *Database) Begin() (Transaction, error) {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return nil, fault.DatabaseIsNotSet
	}
	if err := d.trx.begin(); nil != err {
		return nil, err
	}
	return d.trx, nil
}

// Get - read a committed value, nil if not present
func (d *Database) Get(p *PoolHandle, key []byte) ([]byte, error) {
	if nil == d.db {
		return nil, fault.DatabaseIsNotSet
	}
	value, err := d.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a committed key exists
func (d *Database) Has(p *PoolHandle, key []byte) (bool, error) {
	if nil == d.db {
		return false, fault.DatabaseIsNotSet
	}
	return d.db.Has(p.prefixKey(key), nil)
}

// return the database version, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
