// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/json"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/storage"
)

// Registry - records of one fully qualified type
type Registry interface {
	Type() string
	Get(id string) (entity.Resource, error)
	Add(resource entity.Resource) error
	Update(resource entity.Resource) error
	Exists(id string) (bool, error)
}

type poolRegistry struct {
	fullyQualifiedType string
	factory            *entity.Factory
	pool               *storage.PoolHandle
	trx                storage.Transaction
}

// Type - the fully qualified type held
func (r *poolRegistry) Type() string {
	return r.fullyQualifiedType
}

// Get - fetch and decode one record
func (r *poolRegistry) Get(id string) (entity.Resource, error) {
	if "" == id {
		return nil, fault.InvalidIdentifier
	}

	buffer, err := r.trx.Get(r.pool, []byte(id))
	if nil != err {
		return nil, err
	}
	if nil == buffer {
		return nil, fault.RecordNotFound
	}

	resource, err := r.factory.Empty(r.fullyQualifiedType, id)
	if nil != err {
		return nil, err
	}
	err = json.Unmarshal(buffer, resource)
	if nil != err {
		return nil, err
	}
	return resource, nil
}

// Add - store a new record, its identifier must not be present
func (r *poolRegistry) Add(resource entity.Resource) error {
	key, err := r.key(resource)
	if nil != err {
		return err
	}

	ok, err := r.trx.Has(r.pool, key)
	if nil != err {
		return err
	}
	if ok {
		return fault.DuplicateRecord
	}
	return r.put(key, resource)
}

// Update - replace an existing record
func (r *poolRegistry) Update(resource entity.Resource) error {
	key, err := r.key(resource)
	if nil != err {
		return err
	}

	ok, err := r.trx.Has(r.pool, key)
	if nil != err {
		return err
	}
	if !ok {
		return fault.RecordNotFound
	}
	return r.put(key, resource)
}

// Exists - check for a record
func (r *poolRegistry) Exists(id string) (bool, error) {
	if "" == id {
		return false, fault.InvalidIdentifier
	}
	return r.trx.Has(r.pool, []byte(id))
}

func (r *poolRegistry) key(resource entity.Resource) ([]byte, error) {
	if nil == resource {
		return nil, fault.InvalidStructPointer
	}
	if r.fullyQualifiedType != resource.FullyQualifiedType() {
		return nil, fault.WrongResourceType
	}
	id := resource.Identifier()
	if "" == id {
		return nil, fault.InvalidIdentifier
	}
	return []byte(id), nil
}

func (r *poolRegistry) put(key []byte, resource entity.Resource) error {
	buffer, err := json.Marshal(resource)
	if nil != err {
		return err
	}
	r.trx.Put(r.pool, key, buffer)
	return nil
}
