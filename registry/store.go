// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/storage"
)

// Store - all registries inside one storage transaction
type Store struct {
	db      *storage.Database
	factory *entity.Factory
	trx     storage.Transaction
}

// NewStore - registries writing to the given transaction
func NewStore(db *storage.Database, factory *entity.Factory, trx storage.Transaction) *Store {
	return &Store{
		db:      db,
		factory: factory,
		trx:     trx,
	}
}

// Factory - the factory used to decode records
func (s *Store) Factory() *entity.Factory {
	return s.factory
}

// Registry - the registry of a fully qualified type
//
// the type must be registered with the factory and have a pool
func (s *Store) Registry(fullyQualifiedType string) (Registry, error) {
	if !s.factory.Known(fullyQualifiedType) {
		return nil, fault.UnknownResourceType
	}

	name, ok := s.factory.Namespace().ShortName(fullyQualifiedType)
	if !ok {
		return nil, fault.UnknownResourceType
	}

	pool, ok := s.db.Registry(name)
	if !ok {
		return nil, fault.UnknownResourceType
	}

	return &poolRegistry{
		fullyQualifiedType: fullyQualifiedType,
		factory:            s.factory,
		pool:               pool,
		trx:                s.trx,
	}, nil
}

// Get - fetch any resource, allows a Store to resolve relationships
func (s *Store) Get(fullyQualifiedType string, id string) (entity.Resource, error) {
	r, err := s.Registry(fullyQualifiedType)
	if nil != err {
		return nil, err
	}
	return r.Get(id)
}
