// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/txid"
)

// Submitter - runs transaction bodies atomically
type Submitter interface {
	Submit(kind string, invoker entity.Relationship, request interface{}, fn ledger.Func) (txid.Id, error)
}

// Handler - submits order transactions
type Handler struct {
	log          *logger.L
	ledger       Submitter
	transactions *Transactions
}

// New - create a handler
func New(log *logger.L, l Submitter, transactions *Transactions) *Handler {
	return &Handler{
		log:          log,
		ledger:       l,
		transactions: transactions,
	}
}

// IsPartitioned - true if seller info is kept in its own record
func (h *Handler) IsPartitioned() bool {
	return h.transactions.IsPartitioned()
}

// CreateOrder - submit an order creation
//
// the price is checked before submission since NaN and infinities
// cannot be encoded into the transaction record
func (h *Handler) CreateOrder(invoker entity.Relationship, req *CreateOrder) (txid.Id, error) {
	if nil != req {
		if err := validPrice(req.Price); nil != err {
			return h.reject(KindCreateOrder, err)
		}
	}
	return h.submit(KindCreateOrder, invoker, req, func(ctx ledger.Context) error {
		return h.transactions.CreateOrder(ctx, req)
	})
}

// UpdateBuyerInfo - submit a buyer note
//
// an empty note is rejected with fault.EmptyNote rather than
// appending a bare separator
func (h *Handler) UpdateBuyerInfo(invoker entity.Relationship, req *UpdateBuyerInfo) (txid.Id, error) {
	return h.submit(KindUpdateBuyerInfo, invoker, req, func(ctx ledger.Context) error {
		return h.transactions.UpdateBuyerInfo(ctx, req)
	})
}

// UpdateSellerInfo - submit a seller note
//
// an empty note is rejected with fault.EmptyNote rather than
// appending a bare separator
func (h *Handler) UpdateSellerInfo(invoker entity.Relationship, req *UpdateSellerInfo) (txid.Id, error) {
	return h.submit(KindUpdateSellerInfo, invoker, req, func(ctx ledger.Context) error {
		return h.transactions.UpdateSellerInfo(ctx, req)
	})
}

// UpdatePrice - submit a price change
func (h *Handler) UpdatePrice(invoker entity.Relationship, req *UpdatePrice) (txid.Id, error) {
	if nil != req {
		if err := validPrice(req.NewPrice); nil != err {
			return h.reject(KindUpdatePrice, err)
		}
	}
	return h.submit(KindUpdatePrice, invoker, req, func(ctx ledger.Context) error {
		return h.transactions.UpdatePrice(ctx, req)
	})
}

// GetOrderInfo - submit an order read, the values arrive as events
func (h *Handler) GetOrderInfo(invoker entity.Relationship, req *GetOrderInfo) (txid.Id, error) {
	return h.submit(KindGetOrderInfo, invoker, req, func(ctx ledger.Context) error {
		return h.transactions.GetOrderInfo(ctx, req)
	})
}

// AddParticipant - submit a participant registration
func (h *Handler) AddParticipant(invoker entity.Relationship, req *AddParticipant) (txid.Id, error) {
	return h.submit(KindAddParticipant, invoker, req, func(ctx ledger.Context) error {
		return h.transactions.AddParticipant(ctx, req)
	})
}

func (h *Handler) submit(kind string, invoker entity.Relationship, req interface{}, fn ledger.Func) (txid.Id, error) {
	id, err := h.ledger.Submit(kind, invoker, req, fn)
	if nil != err {
		return h.reject(kind, err)
	}
	h.log.Debugf("%s: txId: %s", kind, id)
	return id, nil
}

func (h *Handler) reject(kind string, err error) (txid.Id, error) {
	h.log.Warnf("%s: rejected: %s", kind, err)
	return txid.Id{}, err
}
