// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/orderd/fault"
)

// Constructor - make an empty resource of one type
type Constructor func(fullyQualifiedType string, id string) Resource

type typeInfo struct {
	construct   Constructor
	participant bool
}

// Factory - creates resources and relationships for one namespace
type Factory struct {
	sync.RWMutex
	namespace Namespace
	types     map[string]typeInfo
}

// NewFactory - create a factory with no registered types
func NewFactory(namespace Namespace) *Factory {
	return &Factory{
		namespace: namespace,
		types:     make(map[string]typeInfo),
	}
}

// Namespace - namespace of every type produced
func (f *Factory) Namespace() Namespace {
	return f.namespace
}

// Register - add an asset type
func (f *Factory) Register(name string, construct Constructor) {
	f.register(name, construct, false)
}

// RegisterParticipant - add a participant type
func (f *Factory) RegisterParticipant(name string) {
	f.register(name, newParticipant, true)
}

func (f *Factory) register(name string, construct Constructor, participant bool) {
	f.Lock()
	defer f.Unlock()
	f.types[f.namespace.Qualify(name)] = typeInfo{
		construct:   construct,
		participant: participant,
	}
}

// Known - check a fully qualified type has been registered
func (f *Factory) Known(fullyQualifiedType string) bool {
	f.RLock()
	defer f.RUnlock()
	_, ok := f.types[fullyQualifiedType]
	return ok
}

// IsParticipant - check a fully qualified type is a participant type
func (f *Factory) IsParticipant(fullyQualifiedType string) bool {
	f.RLock()
	defer f.RUnlock()
	return f.types[fullyQualifiedType].participant
}

// Types - all registered fully qualified type names, sorted
func (f *Factory) Types() []string {
	f.RLock()
	defer f.RUnlock()
	names := make([]string, 0, len(f.types))
	for name := range f.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewResource - a new resource of a short type name
func (f *Factory) NewResource(name string, id string) (Resource, error) {
	if "" == id {
		return nil, fault.InvalidIdentifier
	}
	return f.Empty(f.namespace.Qualify(name), id)
}

// Empty - a resource of a fully qualified type ready for decoding
func (f *Factory) Empty(fullyQualifiedType string, id string) (Resource, error) {
	f.RLock()
	info, ok := f.types[fullyQualifiedType]
	f.RUnlock()
	if !ok {
		return nil, fault.UnknownResourceType
	}
	return info.construct(fullyQualifiedType, id), nil
}

// NewRelationship - a reference to a resource of a short type name
//
// the referenced resource is not fetched and need not exist
func (f *Factory) NewRelationship(name string, id string) (Relationship, error) {
	fullyQualifiedType := f.namespace.Qualify(name)
	if !f.Known(fullyQualifiedType) {
		return Relationship{}, fault.UnknownResourceType
	}
	if "" == id {
		return Relationship{}, fault.InvalidIdentifier
	}
	return Relationship{
		Type: fullyQualifiedType,
		ID:   id,
	}, nil
}

// RelationshipTo - the relationship of an existing resource
func RelationshipTo(r Resource) Relationship {
	return Relationship{
		Type: r.FullyQualifiedType(),
		ID:   r.Identifier(),
	}
}
