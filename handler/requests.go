// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/orderd/entity"
)

// transaction kinds
const (
	KindCreateOrder      = "CreateOrder"
	KindUpdateBuyerInfo  = "UpdateOrderBuyerInfo"
	KindUpdateSellerInfo = "UpdateOrderSellerInfo"
	KindUpdatePrice      = "UpdateOrderPrice"
	KindGetOrderInfo     = "GetOrderInfo"
	KindAddParticipant   = "AddParticipant"
)

// CreateOrder - place a new order
type CreateOrder struct {
	OrderId    string              `json:"orderId"`
	Seller     entity.Relationship `json:"seller"`
	Buyer      entity.Relationship `json:"buyer"`
	Price      float64             `json:"price"`
	SellerInfo string              `json:"sellerInfo"`
	BuyerInfo  string              `json:"buyerInfo"`
}

// UpdateBuyerInfo - append a buyer note
type UpdateBuyerInfo struct {
	Order   entity.Relationship `json:"order"`
	NewInfo string              `json:"newInfo"`
}

// UpdateSellerInfo - append a seller note
type UpdateSellerInfo struct {
	Order   entity.Relationship `json:"order"`
	NewInfo string              `json:"newInfo"`
}

// UpdatePrice - replace the price
type UpdatePrice struct {
	Order    entity.Relationship `json:"order"`
	NewPrice float64             `json:"newPrice"`
}

// GetOrderInfo - emit the current price and notes to an account
type GetOrderInfo struct {
	Account entity.Relationship `json:"account"`
	Order   entity.Relationship `json:"order"`
}

// AddParticipant - register a seller, buyer or account
type AddParticipant struct {
	Type          string `json:"type"`
	ParticipantId string `json:"participantId"`
	Name          string `json:"name"`
}
