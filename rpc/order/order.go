// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package order - RPC access to the order transactions
package order

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/handler"
	"github.com/bitmark-inc/orderd/rpc/ratelimit"
	"github.com/bitmark-inc/orderd/txid"
)

const (
	rateLimitOrder = 200
	rateBurstOrder = 100
)

// Handler - the order transactions
type Handler interface {
	CreateOrder(entity.Relationship, *handler.CreateOrder) (txid.Id, error)
	UpdateBuyerInfo(entity.Relationship, *handler.UpdateBuyerInfo) (txid.Id, error)
	UpdateSellerInfo(entity.Relationship, *handler.UpdateSellerInfo) (txid.Id, error)
	UpdatePrice(entity.Relationship, *handler.UpdatePrice) (txid.Id, error)
	GetOrderInfo(entity.Relationship, *handler.GetOrderInfo) (txid.Id, error)
}

// Order - type for RPC calls
type Order struct {
	Log     *logger.L
	Limiter *rate.Limiter
	handler Handler
}

// New - create the order service
func New(log *logger.L, h Handler) *Order {
	return &Order{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOrder, rateBurstOrder),
		handler: h,
	}
}

// TransactionReply - the id of the committed transaction
type TransactionReply struct {
	TxId txid.Id `json:"txId"`
}

// ---

// CreateArguments - arguments for order creation
type CreateArguments struct {
	Invoker    entity.Relationship `json:"invoker"`
	OrderId    string              `json:"orderId"`
	Seller     entity.Relationship `json:"seller"`
	Buyer      entity.Relationship `json:"buyer"`
	Price      float64             `json:"price"`
	SellerInfo string              `json:"sellerInfo"`
	BuyerInfo  string              `json:"buyerInfo"`
}

// Create - place a new order
func (order *Order) Create(arguments *CreateArguments, reply *TransactionReply) error {
	if err := ratelimit.Limit(order.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	order.Log.Infof("Order.Create: %q", arguments.OrderId)

	id, err := order.handler.CreateOrder(arguments.Invoker, &handler.CreateOrder{
		OrderId:    arguments.OrderId,
		Seller:     arguments.Seller,
		Buyer:      arguments.Buyer,
		Price:      arguments.Price,
		SellerInfo: arguments.SellerInfo,
		BuyerInfo:  arguments.BuyerInfo,
	})
	if nil != err {
		return err
	}
	reply.TxId = id
	return nil
}

// ---

// InfoArguments - a note for the buyer or seller info
type InfoArguments struct {
	Invoker entity.Relationship `json:"invoker"`
	Order   entity.Relationship `json:"order"`
	NewInfo string              `json:"newInfo"`
}

// UpdateBuyerInfo - append to the buyer info
func (order *Order) UpdateBuyerInfo(arguments *InfoArguments, reply *TransactionReply) error {
	if err := ratelimit.Limit(order.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	order.Log.Infof("Order.UpdateBuyerInfo: %s", arguments.Order)

	id, err := order.handler.UpdateBuyerInfo(arguments.Invoker, &handler.UpdateBuyerInfo{
		Order:   arguments.Order,
		NewInfo: arguments.NewInfo,
	})
	if nil != err {
		return err
	}
	reply.TxId = id
	return nil
}

// UpdateSellerInfo - append to the seller info
func (order *Order) UpdateSellerInfo(arguments *InfoArguments, reply *TransactionReply) error {
	if err := ratelimit.Limit(order.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	order.Log.Infof("Order.UpdateSellerInfo: %s", arguments.Order)

	id, err := order.handler.UpdateSellerInfo(arguments.Invoker, &handler.UpdateSellerInfo{
		Order:   arguments.Order,
		NewInfo: arguments.NewInfo,
	})
	if nil != err {
		return err
	}
	reply.TxId = id
	return nil
}

// ---

// PriceArguments - a replacement price
type PriceArguments struct {
	Invoker  entity.Relationship `json:"invoker"`
	Order    entity.Relationship `json:"order"`
	NewPrice float64             `json:"newPrice"`
}

// UpdatePrice - replace the price
func (order *Order) UpdatePrice(arguments *PriceArguments, reply *TransactionReply) error {
	if err := ratelimit.Limit(order.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	order.Log.Infof("Order.UpdatePrice: %s  price: %g", arguments.Order, arguments.NewPrice)

	id, err := order.handler.UpdatePrice(arguments.Invoker, &handler.UpdatePrice{
		Order:    arguments.Order,
		NewPrice: arguments.NewPrice,
	})
	if nil != err {
		return err
	}
	reply.TxId = id
	return nil
}

// ---

// GetInfoArguments - the account that receives the order events
type GetInfoArguments struct {
	Account entity.Relationship `json:"account"`
	Order   entity.Relationship `json:"order"`
}

// GetInfo - emit price, seller info and buyer info events
//
// the events are stored with the transaction and broadcast to
// subscribers
func (order *Order) GetInfo(arguments *GetInfoArguments, reply *TransactionReply) error {
	if err := ratelimit.Limit(order.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	order.Log.Infof("Order.GetInfo: %s  account: %s", arguments.Order, arguments.Account)

	id, err := order.handler.GetOrderInfo(arguments.Account, &handler.GetOrderInfo{
		Account: arguments.Account,
		Order:   arguments.Order,
	})
	if nil != err {
		return err
	}
	reply.TxId = id
	return nil
}
