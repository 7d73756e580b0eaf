// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/fixtures"
	"github.com/bitmark-inc/orderd/handler"
	"github.com/bitmark-inc/orderd/rpc/mocks"
	"github.com/bitmark-inc/orderd/rpc/order"
	"github.com/bitmark-inc/orderd/txid"
)

var (
	seller  = entity.Relationship{Type: "org.privatedata.Seller", ID: "S1"}
	buyer   = entity.Relationship{Type: "org.privatedata.Buyer", ID: "B1"}
	account = entity.Relationship{Type: "org.privatedata.Account", ID: "A1"}
	orderO1 = entity.Relationship{Type: "org.privatedata.Order", ID: "O1"}
	txId    = txid.New("test", []byte("{}"), 1)
)

func setup(t *testing.T) (*order.Order, *mocks.MockHandler, func()) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	h := mocks.NewMockHandler(ctl)
	o := order.New(logger.New(fixtures.LogCategory), h)
	return o, h, func() {
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestCreate(t *testing.T) {
	o, h, teardown := setup(t)
	defer teardown()

	h.EXPECT().CreateOrder(seller, &handler.CreateOrder{
		OrderId:    "O1",
		Seller:     seller,
		Buyer:      buyer,
		Price:      100,
		SellerInfo: "confidential",
		BuyerInfo:  "ok",
	}).Return(txId, nil).Times(1)

	arg := order.CreateArguments{
		Invoker:    seller,
		OrderId:    "O1",
		Seller:     seller,
		Buyer:      buyer,
		Price:      100,
		SellerInfo: "confidential",
		BuyerInfo:  "ok",
	}
	var reply order.TransactionReply
	err := o.Create(&arg, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, txId, reply.TxId, "wrong txId")
}

func TestCreateWhenRejected(t *testing.T) {
	o, h, teardown := setup(t)
	defer teardown()

	h.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(txid.Id{}, fault.DuplicateOrder).Times(1)

	var reply order.TransactionReply
	err := o.Create(&order.CreateArguments{OrderId: "O1"}, &reply)
	assert.Equal(t, fault.DuplicateOrder, err, "wrong error")
	assert.True(t, reply.TxId.IsZero(), "txId set on failure")
}

func TestUpdateBuyerInfo(t *testing.T) {
	o, h, teardown := setup(t)
	defer teardown()

	h.EXPECT().UpdateBuyerInfo(buyer, &handler.UpdateBuyerInfo{
		Order:   orderO1,
		NewInfo: "fast shipping",
	}).Return(txId, nil).Times(1)

	var reply order.TransactionReply
	err := o.UpdateBuyerInfo(&order.InfoArguments{
		Invoker: buyer,
		Order:   orderO1,
		NewInfo: "fast shipping",
	}, &reply)
	assert.Nil(t, err, "wrong UpdateBuyerInfo")
	assert.Equal(t, txId, reply.TxId, "wrong txId")
}

func TestUpdateSellerInfo(t *testing.T) {
	o, h, teardown := setup(t)
	defer teardown()

	h.EXPECT().UpdateSellerInfo(seller, &handler.UpdateSellerInfo{
		Order:   orderO1,
		NewInfo: "packed",
	}).Return(txId, nil).Times(1)

	var reply order.TransactionReply
	err := o.UpdateSellerInfo(&order.InfoArguments{
		Invoker: seller,
		Order:   orderO1,
		NewInfo: "packed",
	}, &reply)
	assert.Nil(t, err, "wrong UpdateSellerInfo")
	assert.Equal(t, txId, reply.TxId, "wrong txId")
}

func TestUpdatePrice(t *testing.T) {
	o, h, teardown := setup(t)
	defer teardown()

	h.EXPECT().UpdatePrice(seller, &handler.UpdatePrice{
		Order:    orderO1,
		NewPrice: 120,
	}).Return(txId, nil).Times(1)

	var reply order.TransactionReply
	err := o.UpdatePrice(&order.PriceArguments{
		Invoker:  seller,
		Order:    orderO1,
		NewPrice: 120,
	}, &reply)
	assert.Nil(t, err, "wrong UpdatePrice")
	assert.Equal(t, txId, reply.TxId, "wrong txId")
}

func TestGetInfoInvokedByAccount(t *testing.T) {
	o, h, teardown := setup(t)
	defer teardown()

	h.EXPECT().GetOrderInfo(account, &handler.GetOrderInfo{
		Account: account,
		Order:   orderO1,
	}).Return(txId, nil).Times(1)

	var reply order.TransactionReply
	err := o.GetInfo(&order.GetInfoArguments{
		Account: account,
		Order:   orderO1,
	}, &reply)
	assert.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, txId, reply.TxId, "wrong txId")
}

func TestGetInfoWhenOrderMissing(t *testing.T) {
	o, h, teardown := setup(t)
	defer teardown()

	h.EXPECT().GetOrderInfo(gomock.Any(), gomock.Any()).Return(txid.Id{}, fault.OrderNotFound).Times(1)

	var reply order.TransactionReply
	err := o.GetInfo(&order.GetInfoArguments{Account: account, Order: orderO1}, &reply)
	assert.Equal(t, fault.OrderNotFound, err, "wrong error")
}

func TestNilArguments(t *testing.T) {
	o, _, teardown := setup(t)
	defer teardown()

	var reply order.TransactionReply
	assert.Equal(t, fault.MissingParameters, o.Create(nil, &reply), "wrong Create error")
	assert.Equal(t, fault.MissingParameters, o.UpdateBuyerInfo(nil, &reply), "wrong UpdateBuyerInfo error")
	assert.Equal(t, fault.MissingParameters, o.UpdateSellerInfo(nil, &reply), "wrong UpdateSellerInfo error")
	assert.Equal(t, fault.MissingParameters, o.UpdatePrice(nil, &reply), "wrong UpdatePrice error")
	assert.Equal(t, fault.MissingParameters, o.GetInfo(nil, &reply), "wrong GetInfo error")
}
