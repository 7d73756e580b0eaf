// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - rules on who may change an order
//
// by default nothing is checked and identity is left to whoever
// submits transactions; SellerAuthority restricts price and seller
// info changes to the order's seller
package access

import (
	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/fault"
)

// Action - a protected operation
type Action string

// actions checked by a policy
const (
	UpdatePrice      Action = "UpdateOrderPrice"
	UpdateSellerInfo Action = "UpdateOrderSellerInfo"
	UpdateBuyerInfo  Action = "UpdateOrderBuyerInfo"
)

// Policy - decides if an invoker may perform an action on a record
// whose seller is given
type Policy interface {
	Check(action Action, invoker entity.Relationship, seller entity.Relationship) error
	String() string
}

// New - the policy selected by configuration
func New(enforceSellerAuthority bool) Policy {
	if enforceSellerAuthority {
		return SellerAuthority
	}
	return AllowAll
}

type allowAll struct{}

// AllowAll - permits everything
var AllowAll Policy = allowAll{}

func (allowAll) Check(Action, entity.Relationship, entity.Relationship) error {
	return nil
}

func (allowAll) String() string {
	return "allow-all"
}

type sellerAuthority struct{}

// SellerAuthority - only the seller may change price or seller info
var SellerAuthority Policy = sellerAuthority{}

func (sellerAuthority) Check(action Action, invoker entity.Relationship, seller entity.Relationship) error {
	switch action {
	case UpdatePrice, UpdateSellerInfo:
		if invoker.IsZero() || !invoker.Equal(seller) {
			return fault.NotSeller
		}
	}
	return nil
}

func (sellerAuthority) String() string {
	return "seller-authority"
}
