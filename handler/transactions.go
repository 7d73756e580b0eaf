// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/orderd/access"
	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/event"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/order"
	"github.com/bitmark-inc/orderd/registry"
)

// Transactions - transaction bodies, new orders get the configured
// seller info layout
type Transactions struct {
	partitioned bool
	policy      access.Policy
	sellerInfo  sellerInfoStore
}

// NewTransactions - create the transaction set
//
// a nil policy permits everything
func NewTransactions(partitioned bool, policy access.Policy) *Transactions {
	if nil == policy {
		policy = access.AllowAll
	}
	return &Transactions{
		partitioned: partitioned,
		policy:      policy,
		sellerInfo:  newSellerInfoStore(partitioned),
	}
}

// IsPartitioned - true if seller info is kept in its own record
func (t *Transactions) IsPartitioned() bool {
	return t.partitioned
}

// CreateOrder - add a new order and, if partitioned, its seller info
func (t *Transactions) CreateOrder(ctx ledger.Context, req *CreateOrder) error {
	if nil == req {
		return fault.MissingParameters
	}
	if "" == req.OrderId {
		return fault.InvalidIdentifier
	}
	if err := validPrice(req.Price); nil != err {
		return err
	}

	f := ctx.Factory()
	seller, err := reference(f, order.SellerType, req.Seller, fault.MissingSeller)
	if nil != err {
		return err
	}
	buyer, err := reference(f, order.BuyerType, req.Buyer, fault.MissingBuyer)
	if nil != err {
		return err
	}

	res, err := f.NewResource(order.OrderType, req.OrderId)
	if nil != err {
		return err
	}
	o := res.(*order.Order)
	o.Seller = seller
	o.Buyer = buyer
	o.Price = req.Price
	o.BuyerInfo = req.BuyerInfo

	extra, err := t.sellerInfo.prepare(f, o, req.SellerInfo)
	if nil != err {
		return err
	}

	// a partition left without its order must not be taken over
	var infos registry.Registry
	if nil != extra {
		infos, err = sellerInfos(ctx)
		if nil != err {
			return err
		}
		exists, err := infos.Exists(req.OrderId)
		if nil != err {
			return err
		}
		if exists {
			return fault.DuplicatePrivateInfo
		}
	}

	r, err := orders(ctx)
	if nil != err {
		return err
	}
	err = r.Add(o)
	if nil != err {
		return translate(err, fault.DuplicateOrder, fault.OrderNotFound)
	}

	if nil == extra {
		return nil
	}
	return translate(infos.Add(extra), fault.DuplicatePrivateInfo, fault.PrivateInfoNotFound)
}

// UpdateBuyerInfo - append to the buyer log of an order
//
// empty notes are not appended, they fail with fault.EmptyNote
func (t *Transactions) UpdateBuyerInfo(ctx ledger.Context, req *UpdateBuyerInfo) error {
	if nil == req {
		return fault.MissingParameters
	}
	orderId, err := orderIdentifier(ctx.Factory(), req.Order)
	if nil != err {
		return err
	}
	if err := validNote(req.NewInfo); nil != err {
		return err
	}

	r, err := orders(ctx)
	if nil != err {
		return err
	}
	o, err := getOrder(r, orderId)
	if nil != err {
		return err
	}
	err = t.policy.Check(access.UpdateBuyerInfo, ctx.Invoker(), o.Seller)
	if nil != err {
		return err
	}
	o.AppendBuyerInfo(req.NewInfo)
	return translate(r.Update(o), fault.DuplicateOrder, fault.OrderNotFound)
}

// UpdateSellerInfo - append to the seller log wherever it is kept
//
// an existing order keeps the layout it was created with whatever
// the configured layout is. Empty notes fail with fault.EmptyNote
func (t *Transactions) UpdateSellerInfo(ctx ledger.Context, req *UpdateSellerInfo) error {
	if nil == req {
		return fault.MissingParameters
	}
	orderId, err := orderIdentifier(ctx.Factory(), req.Order)
	if nil != err {
		return err
	}
	if err := validNote(req.NewInfo); nil != err {
		return err
	}
	return t.sellerInfo.appendNote(ctx, t.policy, orderId, req.NewInfo)
}

// UpdatePrice - replace the price of an order
func (t *Transactions) UpdatePrice(ctx ledger.Context, req *UpdatePrice) error {
	if nil == req {
		return fault.MissingParameters
	}
	orderId, err := orderIdentifier(ctx.Factory(), req.Order)
	if nil != err {
		return err
	}
	if err := validPrice(req.NewPrice); nil != err {
		return err
	}

	r, err := orders(ctx)
	if nil != err {
		return err
	}
	o, err := getOrder(r, orderId)
	if nil != err {
		return err
	}
	err = t.policy.Check(access.UpdatePrice, ctx.Invoker(), o.Seller)
	if nil != err {
		return err
	}
	o.Price = req.NewPrice
	return translate(r.Update(o), fault.DuplicateOrder, fault.OrderNotFound)
}

// GetOrderInfo - emit price, seller info and buyer info of an order
func (t *Transactions) GetOrderInfo(ctx ledger.Context, req *GetOrderInfo) error {
	if nil == req {
		return fault.MissingParameters
	}
	f := ctx.Factory()
	account, err := reference(f, order.AccountType, req.Account, fault.InvalidRelationship)
	if nil != err {
		return err
	}
	orderId, err := orderIdentifier(f, req.Order)
	if nil != err {
		return err
	}

	r, err := orders(ctx)
	if nil != err {
		return err
	}
	o, err := getOrder(r, orderId)
	if nil != err {
		return err
	}
	sellerInfo, err := sellerInfoStoreOf(o).read(ctx, o)
	if nil != err {
		return err
	}

	ctx.Emit(event.New(event.OrderPrice, account.ID, orderId, o.Price))
	ctx.Emit(event.New(event.SellerInfo, account.ID, orderId, sellerInfo))
	ctx.Emit(event.New(event.BuyerInfo, account.ID, orderId, o.BuyerInfo))
	return nil
}

// AddParticipant - register a participant
func (t *Transactions) AddParticipant(ctx ledger.Context, req *AddParticipant) error {
	if nil == req {
		return fault.MissingParameters
	}
	if "" == req.ParticipantId {
		return fault.InvalidIdentifier
	}

	f := ctx.Factory()
	fullyQualifiedType := f.Namespace().Qualify(req.Type)
	if !f.IsParticipant(fullyQualifiedType) {
		return fault.UnknownResourceType
	}

	res, err := f.NewResource(req.Type, req.ParticipantId)
	if nil != err {
		return err
	}
	p := res.(*entity.Participant)
	p.Name = req.Name

	r, err := ctx.Registry(fullyQualifiedType)
	if nil != err {
		return err
	}
	return translate(r.Add(p), fault.DuplicateParticipant, fault.ParticipantNotFound)
}

func orderIdentifier(f *entity.Factory, r entity.Relationship) (string, error) {
	ref, err := reference(f, order.OrderType, r, fault.InvalidIdentifier)
	if nil != err {
		return "", err
	}
	return ref.ID, nil
}
