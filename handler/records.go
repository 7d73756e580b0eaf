// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/order"
	"github.com/bitmark-inc/orderd/registry"
)

func orders(ctx ledger.Context) (registry.Registry, error) {
	return ctx.Registry(ctx.Factory().Namespace().Qualify(order.OrderType))
}

func sellerInfos(ctx ledger.Context) (registry.Registry, error) {
	return ctx.Registry(ctx.Factory().Namespace().Qualify(order.SellerInfoType))
}

func getOrder(r registry.Registry, id string) (*order.Order, error) {
	res, err := r.Get(id)
	if fault.RecordNotFound == err {
		return nil, fault.OrderNotFound
	} else if nil != err {
		return nil, err
	}
	o, ok := res.(*order.Order)
	if !ok {
		return nil, fault.WrongResourceType
	}
	return o, nil
}

func getPrivateInfo(r registry.Registry, id string) (*order.PrivateInfo, error) {
	res, err := r.Get(id)
	if fault.RecordNotFound == err {
		return nil, fault.PrivateInfoNotFound
	} else if nil != err {
		return nil, err
	}
	p, ok := res.(*order.PrivateInfo)
	if !ok {
		return nil, fault.WrongResourceType
	}
	return p, nil
}

// replace generic registry errors with the record specific ones
func translate(err error, duplicate error, notFound error) error {
	switch err {
	case fault.DuplicateRecord:
		return duplicate
	case fault.RecordNotFound:
		return notFound
	default:
		return err
	}
}
