// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order

import (
	"github.com/bitmark-inc/orderd/entity"
)

// short type names
const (
	OrderType      = "Order"
	SellerInfoType = "OrderSellerInfo"
	SellerType     = "Seller"
	BuyerType      = "Buyer"
	AccountType    = "Account"
)

// Register - make all order types known to a factory
func Register(f *entity.Factory) {
	f.Register(OrderType, func(fullyQualifiedType string, id string) entity.Resource {
		return &Order{
			Class:   fullyQualifiedType,
			OrderId: id,
		}
	})
	f.Register(SellerInfoType, func(fullyQualifiedType string, id string) entity.Resource {
		return &PrivateInfo{
			Class:   fullyQualifiedType,
			OrderId: id,
		}
	})
	f.RegisterParticipant(SellerType)
	f.RegisterParticipant(BuyerType)
	f.RegisterParticipant(AccountType)
}
