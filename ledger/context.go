// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/event"
	"github.com/bitmark-inc/orderd/registry"
)

// Context - what a transaction function may use
type Context interface {
	Registry(fullyQualifiedType string) (registry.Registry, error)
	Factory() *entity.Factory
	Emit(e *event.Event)
	Invoker() entity.Relationship
}

type transactionContext struct {
	store   *registry.Store
	invoker entity.Relationship
	events  []*event.Event
}

func (c *transactionContext) Registry(fullyQualifiedType string) (registry.Registry, error) {
	return c.store.Registry(fullyQualifiedType)
}

func (c *transactionContext) Factory() *entity.Factory {
	return c.store.Factory()
}

func (c *transactionContext) Emit(e *event.Event) {
	c.events = append(c.events, e)
}

func (c *transactionContext) Invoker() entity.Relationship {
	return c.invoker
}
