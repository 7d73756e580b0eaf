// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/order"
)

func newFactory() *entity.Factory {
	f := entity.NewFactory(entity.DefaultNamespace)
	order.Register(f)
	return f
}

func TestAppend(t *testing.T) {
	o := &order.Order{BuyerInfo: "ok"}

	o.AppendBuyerInfo("fast shipping")
	o.AppendBuyerInfo("gift wrap")
	assert.Equal(t, "ok; fast shipping; gift wrap", o.BuyerInfo, "wrong buyer log")

	o.AppendSellerInfo("first")
	assert.Equal(t, "; first", o.SellerInfo, "empty log not appended to")
}

func TestRegisteredTypes(t *testing.T) {
	f := newFactory()

	expected := []string{
		"org.privatedata.Account",
		"org.privatedata.Buyer",
		"org.privatedata.Order",
		"org.privatedata.OrderSellerInfo",
		"org.privatedata.Seller",
	}
	assert.Equal(t, expected, f.Types(), "wrong types")

	r, err := f.NewResource(order.OrderType, "O1")
	assert.Nil(t, err, "new order error")
	assert.IsType(t, &order.Order{}, r, "wrong order type")
	assert.Equal(t, "org.privatedata.Order", r.FullyQualifiedType(), "wrong order class")
}

func TestNewPrivateInfo(t *testing.T) {
	f := newFactory()

	r, _ := f.NewResource(order.OrderType, "O1")
	o := r.(*order.Order)
	o.Seller, _ = f.NewRelationship(order.SellerType, "S1")
	assert.False(t, o.IsPartitioned(), "new order partitioned")

	p, err := order.NewPrivateInfo(f, o, "confidential")
	assert.Nil(t, err, "private info error")
	assert.Equal(t, "O1", p.Identifier(), "private info not co-keyed")
	assert.Equal(t, o.Seller, p.Seller, "seller not copied")
	assert.Equal(t, entity.RelationshipTo(o), p.Order, "wrong back reference")
	assert.Equal(t, "confidential", p.Info, "wrong info")

	assert.True(t, o.IsPartitioned(), "order not linked")
	assert.Equal(t, entity.RelationshipTo(p), *o.SellerInfoRef, "wrong forward reference")

	p.AppendInfo("more")
	assert.Equal(t, "confidential; more", p.Info, "wrong info log")
}

func TestOrderJSON(t *testing.T) {
	f := newFactory()
	r, _ := f.NewResource(order.OrderType, "O1")
	o := r.(*order.Order)
	o.Seller, _ = f.NewRelationship(order.SellerType, "S1")
	o.Buyer, _ = f.NewRelationship(order.BuyerType, "B1")
	o.Price = 100
	o.BuyerInfo = "ok"
	o.SellerInfo = "confidential"

	buffer, err := json.Marshal(o)
	assert.Nil(t, err, "marshal error")

	expected := `{"$class":"org.privatedata.Order","orderId":"O1",` +
		`"seller":"resource:org.privatedata.Seller#S1",` +
		`"buyer":"resource:org.privatedata.Buyer#B1",` +
		`"price":100,"buyerInfo":"ok","sellerInfo":"confidential"}`
	assert.Equal(t, expected, string(buffer), "wrong JSON")
}
