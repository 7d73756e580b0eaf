// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/orderd/access"
	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/order"
)

// where the seller info of an order is kept
type sellerInfoStore interface {
	// set up a new order, returns any extra record to be added
	// after the order
	prepare(f *entity.Factory, o *order.Order, info string) (entity.Resource, error)
	appendNote(ctx ledger.Context, policy access.Policy, orderId string, note string) error
	read(ctx ledger.Context, o *order.Order) (string, error)
}

func newSellerInfoStore(partitioned bool) sellerInfoStore {
	if partitioned {
		return partitionedSellerInfo{}
	}
	return inlineSellerInfo{}
}

// the layout an existing order was created with, which may differ
// from the one configured for new orders
func sellerInfoStoreOf(o *order.Order) sellerInfoStore {
	return newSellerInfoStore(o.IsPartitioned())
}

// seller info is a field of the order
type inlineSellerInfo struct{}

func (inlineSellerInfo) prepare(_ *entity.Factory, o *order.Order, info string) (entity.Resource, error) {
	o.SellerInfo = info
	return nil, nil
}

func (inlineSellerInfo) appendNote(ctx ledger.Context, policy access.Policy, orderId string, note string) error {
	r, err := orders(ctx)
	if nil != err {
		return err
	}
	o, err := getOrder(r, orderId)
	if nil != err {
		return err
	}
	if o.IsPartitioned() {
		return partitionedSellerInfo{}.appendNote(ctx, policy, o.SellerInfoRef.ID, note)
	}
	err = policy.Check(access.UpdateSellerInfo, ctx.Invoker(), o.Seller)
	if nil != err {
		return err
	}
	o.AppendSellerInfo(note)
	return translate(r.Update(o), fault.DuplicateOrder, fault.OrderNotFound)
}

func (inlineSellerInfo) read(_ ledger.Context, o *order.Order) (string, error) {
	return o.SellerInfo, nil
}

// seller info is a separate record with the order's identifier
type partitionedSellerInfo struct{}

func (partitionedSellerInfo) prepare(f *entity.Factory, o *order.Order, info string) (entity.Resource, error) {
	return order.NewPrivateInfo(f, o, info)
}

func (partitionedSellerInfo) appendNote(ctx ledger.Context, policy access.Policy, orderId string, note string) error {
	r, err := sellerInfos(ctx)
	if nil != err {
		return err
	}
	p, err := getPrivateInfo(r, orderId)
	if nil != err {
		return err
	}
	err = policy.Check(access.UpdateSellerInfo, ctx.Invoker(), p.Seller)
	if nil != err {
		return err
	}
	p.AppendInfo(note)
	return translate(r.Update(p), fault.DuplicatePrivateInfo, fault.PrivateInfoNotFound)
}

func (partitionedSellerInfo) read(ctx ledger.Context, o *order.Order) (string, error) {
	if !o.IsPartitioned() {
		return o.SellerInfo, nil
	}
	r, err := sellerInfos(ctx)
	if nil != err {
		return "", err
	}
	p, err := getPrivateInfo(r, o.SellerInfoRef.ID)
	if nil != err {
		return "", err
	}
	return p.Info, nil
}
