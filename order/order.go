// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order

import (
	"github.com/bitmark-inc/orderd/entity"
)

// separator placed before every appended note
const noteSeparator = "; "

// Order - the public asset
//
// SellerInfo is only used when seller info is held inline,
// SellerInfoRef only when it is partitioned
type Order struct {
	Class         string               `json:"$class"`
	OrderId       string               `json:"orderId"`
	Seller        entity.Relationship  `json:"seller"`
	Buyer         entity.Relationship  `json:"buyer"`
	Price         float64              `json:"price"`
	BuyerInfo     string               `json:"buyerInfo"`
	SellerInfo    string               `json:"sellerInfo,omitempty"`
	SellerInfoRef *entity.Relationship `json:"sellerInfoRef,omitempty"`
}

// FullyQualifiedType - for Resource interface
func (o *Order) FullyQualifiedType() string {
	return o.Class
}

// Identifier - for Resource interface
func (o *Order) Identifier() string {
	return o.OrderId
}

// IsPartitioned - true if seller info is held in a PrivateInfo
func (o *Order) IsPartitioned() bool {
	return nil != o.SellerInfoRef
}

// AppendBuyerInfo - add a note to the buyer log
func (o *Order) AppendBuyerInfo(note string) {
	o.BuyerInfo = Append(o.BuyerInfo, note)
}

// AppendSellerInfo - add a note to the inline seller log
func (o *Order) AppendSellerInfo(note string) {
	o.SellerInfo = Append(o.SellerInfo, note)
}

// Append - add a note to the end of a log
func Append(log string, note string) string {
	return log + noteSeparator + note
}
