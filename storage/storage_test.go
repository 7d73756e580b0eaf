// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

func setupMemory(t *testing.T) *storage.Database {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

func fill(t *testing.T, db *storage.Database) {
	p := db.Pool.TestData

	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	trx.Put(p, []byte("key-one"), []byte("data-one"))
	trx.Put(p, []byte("key-two"), []byte("data-two"))
	trx.Put(p, []byte("key-three"), []byte("data-three"))
	trx.Put(p, []byte("key-four"), []byte("data-four"))
	trx.Put(p, []byte("key-five"), []byte("data-five"))
	trx.Put(p, []byte("key-six"), []byte("data-six"))
	trx.Put(p, []byte("key-seven"), []byte("data-seven"))
	trx.Put(p, []byte("key-one"), []byte("data-one(NEW)")) // duplicate

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestOnlyOneTransaction(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	trx, err := db.Begin()
	assert.Nil(t, err, "first Begin should not return any error")

	_, err = db.Begin()
	assert.Equal(t, fault.TransactionAlreadyActive, err, "second Begin should return error")

	trx.Abort()

	trx, err = db.Begin()
	assert.Nil(t, err, "Begin after Abort should not return any error")
	assert.Nil(t, trx.Commit(), "empty commit")

	assert.Equal(t, fault.TransactionNotActive, trx.Commit(), "second commit should fail")
}

func TestReadYourWrites(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	p := db.Pool.TestData
	trx, _ := db.Begin()

	trx.Put(p, []byte("k"), []byte("v"))

	value, err := trx.Get(p, []byte("k"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("v"), value, "uncommitted value not visible")

	committed, err := db.Get(p, []byte("k"))
	assert.Nil(t, err, "committed get error")
	assert.Nil(t, committed, "uncommitted value leaked")

	ok, err := trx.Has(p, []byte("k"))
	assert.Nil(t, err, "has error")
	assert.True(t, ok, "uncommitted key not found")

	trx.PutN(p, []byte("n"), 12345)
	n, found, err := trx.GetN(p, []byte("n"))
	assert.Nil(t, err, "getN error")
	assert.True(t, found, "number not found")
	assert.Equal(t, uint64(12345), n, "wrong number")

	assert.Nil(t, trx.Commit(), "commit error")

	ok, _ = db.Has(p, []byte("k"))
	assert.True(t, ok, "key not committed")
	ok, _ = db.Has(p, []byte("n"))
	assert.True(t, ok, "number not committed")
}

func TestAbortDiscards(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	p := db.Pool.TestData
	fill(t, db)

	trx, _ := db.Begin()
	trx.Put(p, []byte("key-one"), []byte("overwritten"))
	trx.Put(p, []byte("key-eight"), []byte("data-eight"))
	trx.Abort()

	value, _ := db.Get(p, []byte("key-one"))
	assert.Equal(t, []byte("data-one(NEW)"), value, "abort did not discard overwrite")
	ok, _ := db.Has(p, []byte("key-eight"))
	assert.False(t, ok, "abort did not discard new key")

	// cache must be empty for the next transaction
	trx, _ = db.Begin()
	value, _ = trx.Get(p, []byte("key-eight"))
	assert.Nil(t, value, "stale cache after abort")
	trx.Abort()
}

func TestFetchCursor(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	fill(t, db)

	cursor := db.NewFetchCursor(db.Pool.TestData)

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	second, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")

	assert.Equal(t, expectedElements, append(first, second...), "wrong elements")

	empty, err := cursor.Fetch(1)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(empty), "cursor not exhausted")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count accepted")
}

func TestPrefixMap(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	fill(t, db)

	keys := []string{}
	err := db.NewFetchCursor(db.Pool.TestData).Prefix([]byte("key-t")).Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, []string{"key-three", "key-two"}, keys, "wrong prefix scan")

	// other pools are not visible
	count := 0
	_ = db.NewFetchCursor(db.Pool.Orders).Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Equal(t, 0, count, "pool leaked into another pool")
}

func TestRegistryLookup(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	p, ok := db.Registry("Order")
	assert.True(t, ok, "missing Order registry")
	assert.Equal(t, db.Pool.Orders, p, "wrong Order pool")

	p, ok = db.Registry("OrderSellerInfo")
	assert.True(t, ok, "missing OrderSellerInfo registry")
	assert.Equal(t, db.Pool.SellerInfo, p, "wrong OrderSellerInfo pool")

	_, ok = db.Registry("Events")
	assert.False(t, ok, "ledger pool exposed as registry")
}

func TestReopen(t *testing.T) {
	removeFiles()
	defer removeFiles()

	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	fill(t, db)
	db.Close()

	db, err = storage.Open(databaseFileName, storage.ReadOnly)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	defer db.Close()

	value, err := db.Get(db.Pool.TestData, []byte("key-seven"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("data-seven"), value, "data lost on reopen")
}
