// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/event"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/fixtures"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/rpc/mocks"
	"github.com/bitmark-inc/orderd/rpc/transaction"
	"github.com/bitmark-inc/orderd/txid"
)

func setup(t *testing.T) (*transaction.Transaction, *mocks.MockLedger, func()) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)
	return transaction.New(logger.New(fixtures.LogCategory), l), l, func() {
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestGet(t *testing.T) {
	tr, l, teardown := setup(t)
	defer teardown()

	id := txid.New("GetOrderInfo", []byte("{}"), 3)
	record := &ledger.Record{
		TxId:     id,
		Type:     "GetOrderInfo",
		Sequence: 3,
	}
	events := []*event.Event{
		event.New(event.OrderPrice, "A1", "O1", 120.0),
		event.New(event.SellerInfo, "A1", "O1", "confidential"),
		event.New(event.BuyerInfo, "A1", "O1", "ok; fast shipping"),
	}
	l.EXPECT().Transaction(id).Return(record, events, nil).Times(1)

	var reply transaction.GetReply
	err := tr.Get(&transaction.Arguments{TxId: id}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, record, reply.Record, "wrong record")
	assert.Equal(t, events, reply.Events, "wrong events")
}

func TestGetWithoutEvents(t *testing.T) {
	tr, l, teardown := setup(t)
	defer teardown()

	id := txid.New("CreateOrder", []byte("{}"), 1)
	l.EXPECT().Transaction(id).Return(&ledger.Record{TxId: id}, nil, nil).Times(1)

	var reply transaction.GetReply
	err := tr.Get(&transaction.Arguments{TxId: id}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.NotNil(t, reply.Events, "nil events")
	assert.Equal(t, 0, len(reply.Events), "wrong event count")
}

func TestStatus(t *testing.T) {
	tr, l, teardown := setup(t)
	defer teardown()

	committed := txid.New("CreateOrder", []byte("{}"), 1)
	unknown := txid.New("CreateOrder", []byte("{}"), 2)
	broken := txid.New("CreateOrder", []byte("{}"), 3)

	l.EXPECT().Transaction(committed).Return(&ledger.Record{TxId: committed}, nil, nil).Times(1)
	l.EXPECT().Transaction(unknown).Return(nil, nil, fault.TransactionNotFound).Times(1)
	l.EXPECT().Transaction(broken).Return(nil, nil, fmt.Errorf("disk failure")).Times(1)

	var reply transaction.StatusReply
	err := tr.Status(&transaction.Arguments{TxId: committed}, &reply)
	assert.Nil(t, err, "wrong Status")
	assert.Equal(t, transaction.StatusCommitted, reply.Status, "wrong status")

	err = tr.Status(&transaction.Arguments{TxId: unknown}, &reply)
	assert.Nil(t, err, "wrong Status")
	assert.Equal(t, transaction.StatusUnknown, reply.Status, "wrong status")

	err = tr.Status(&transaction.Arguments{TxId: broken}, &reply)
	assert.NotNil(t, err, "wrong Status")
}
