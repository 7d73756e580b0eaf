// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/orderd/fault"
)

// FetchCursor - cursor structure over committed data
type FetchCursor struct {
	database *Database
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a pool
func (d *Database) NewFetchCursor(p *PoolHandle) *FetchCursor {
	return &FetchCursor{
		database: d,
		pool:     p,
		maxRange: p.fullRange(),
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Prefix - restrict cursor to keys starting with a prefix
func (cursor *FetchCursor) Prefix(key []byte) *FetchCursor {
	r := util.BytesPrefix(cursor.pool.prefixKey(key))
	cursor.maxRange = *r
	return cursor
}

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	if nil == cursor.database.db {
		return nil, fault.DatabaseIsNotSet
	}

	iter := cursor.database.db.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		e := Element{
			Key:   dataKey,
			Value: dataValue,
		}
		results = append(results, e)
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// the smallest key after the last one returned is that key ++ 0x00
	if n > 0 {
		last := results[n-1].Key
		start := make([]byte, 0, len(last)+2)
		start = append(start, cursor.pool.prefix)
		start = append(start, last...)
		cursor.maxRange.Start = append(start, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	if nil == cursor.database.db {
		return fault.DatabaseIsNotSet
	}

	iter := cursor.database.db.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
