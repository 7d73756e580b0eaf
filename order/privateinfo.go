// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order

import (
	"github.com/bitmark-inc/orderd/entity"
)

// PrivateInfo - seller only part of an order
//
// Seller duplicates the order's seller so that access rules can be
// applied without reading the order
type PrivateInfo struct {
	Class   string              `json:"$class"`
	OrderId string              `json:"orderId"`
	Order   entity.Relationship `json:"order"`
	Seller  entity.Relationship `json:"seller"`
	Info    string              `json:"info"`
}

// NewPrivateInfo - the partition of an order
//
// the order's SellerInfoRef is linked to the new record
func NewPrivateInfo(f *entity.Factory, o *Order, info string) (*PrivateInfo, error) {
	r, err := f.NewResource(SellerInfoType, o.OrderId)
	if nil != err {
		return nil, err
	}
	p := r.(*PrivateInfo)
	p.Order = entity.RelationshipTo(o)
	p.Seller = o.Seller
	p.Info = info

	ref := entity.RelationshipTo(p)
	o.SellerInfoRef = &ref
	return p, nil
}

// FullyQualifiedType - for Resource interface
func (p *PrivateInfo) FullyQualifiedType() string {
	return p.Class
}

// Identifier - for Resource interface
func (p *PrivateInfo) Identifier() string {
	return p.OrderId
}

// AppendInfo - add a note to the log
func (p *PrivateInfo) AppendInfo(note string) {
	p.Info = Append(p.Info, note)
}
