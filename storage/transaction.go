// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/orderd/fault"
)

// Transaction - a batch of writes applied atomically on Commit
//
// reads see the writes already made in the same transaction
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Get(*PoolHandle, []byte) ([]byte, error)
	GetN(*PoolHandle, []byte) (uint64, bool, error)
	Has(*PoolHandle, []byte) (bool, error)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyActive
	}

	t.inUse = true
	return nil
}

// Put - store a key/value bytes pair
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	t.cache.Set(string(k), value)
	t.batch.Put(k, value)
}

// PutN - store a big endian uint64
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

// Get - read a value for a given key, nil if not present
func (t *transaction) Get(p *PoolHandle, key []byte) ([]byte, error) {
	k := p.prefixKey(key)
	value, present, cached := t.cache.Get(string(k))
	if cached {
		if !present {
			return nil, nil
		}
		return value, nil
	}

	value, err := t.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool, error) {
	buffer, err := t.Get(p, key)
	if nil != err {
		return 0, false, err
	}
	if nil == buffer {
		return 0, false, nil
	}
	if len(buffer) < 8 {
		return 0, false, fmt.Errorf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true, nil
}

// Has - check if a key exists
func (t *transaction) Has(p *PoolHandle, key []byte) (bool, error) {
	k := p.prefixKey(key)
	_, present, cached := t.cache.Get(string(k))
	if cached {
		return present, nil
	}
	return t.db.Has(k, nil)
}

// Commit - write the whole batch, the transaction ends even on error
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotActive
	}

	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard all writes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
