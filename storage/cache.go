// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the active transaction
type Cache interface {
	Get(string) ([]byte, bool, bool)
	Set(string, []byte)
	Clear()
}

type dbCache struct {
	cache *cache.Cache
}

// entries live until the transaction commits or aborts
func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - returns value, present, cached
//
// records are never removed so a cached key is always present
func (c *dbCache) Get(key string) ([]byte, bool, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false, false
	}
	return obj.([]byte), true, true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, value, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
