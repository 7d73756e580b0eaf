// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/event"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/fixtures"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/messagebus"
	"github.com/bitmark-inc/orderd/storage"
	"github.com/bitmark-inc/orderd/txid"
)

const sellerType = "org.privatedata.Seller"

type request struct {
	Id string `json:"id"`
}

func setup(t *testing.T) (*ledger.Ledger, *messagebus.BroadcastQueue, func()) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	f := entity.NewFactory(entity.DefaultNamespace)
	f.RegisterParticipant("Seller")

	bus := messagebus.New()
	l := ledger.New(logger.New(fixtures.LogCategory), db, f, bus)

	return l, bus, func() {
		db.Close()
		fixtures.TeardownTestLogger()
	}
}

func addSeller(id string) ledger.Func {
	return func(ctx ledger.Context) error {
		r, err := ctx.Registry(sellerType)
		if nil != err {
			return err
		}
		return r.Add(&entity.Participant{Class: sellerType, ParticipantId: id})
	}
}

func TestSubmitCommits(t *testing.T) {
	l, _, teardown := setup(t)
	defer teardown()

	invoker := entity.Relationship{Type: sellerType, ID: "S1"}
	id, err := l.Submit("AddSeller", invoker, request{Id: "S1"}, addSeller("S1"))
	assert.Nil(t, err, "submit error")
	assert.False(t, id.IsZero(), "zero transaction id")

	record, events, err := l.Transaction(id)
	assert.Nil(t, err, "transaction error")
	assert.Equal(t, id, record.TxId, "wrong record id")
	assert.Equal(t, "AddSeller", record.Type, "wrong record type")
	assert.Equal(t, invoker, record.Invoker, "wrong invoker")
	assert.Equal(t, uint64(1), record.Sequence, "wrong sequence")
	assert.JSONEq(t, `{"id":"S1"}`, string(record.Request), "wrong request")
	assert.Equal(t, 0, len(events), "unexpected events")

	// record is visible to the next transaction
	_, err = l.Submit("Check", entity.Relationship{}, nil, func(ctx ledger.Context) error {
		r, _ := ctx.Registry(sellerType)
		ok, err := r.Exists("S1")
		assert.True(t, ok, "seller not committed")
		return err
	})
	assert.Nil(t, err, "check error")

	n, err := l.Count()
	assert.Nil(t, err, "count error")
	assert.Equal(t, uint64(2), n, "wrong transaction count")
}

func TestSubmitSameRequestTwice(t *testing.T) {
	l, _, teardown := setup(t)
	defer teardown()

	nothing := func(ctx ledger.Context) error { return nil }

	id1, err := l.Submit("Nothing", entity.Relationship{}, request{Id: "x"}, nothing)
	assert.Nil(t, err, "first submit error")
	id2, err := l.Submit("Nothing", entity.Relationship{}, request{Id: "x"}, nothing)
	assert.Nil(t, err, "second submit error")
	assert.NotEqual(t, id1, id2, "repeated request reused transaction id")
}

func TestSubmitAbortLeavesNothing(t *testing.T) {
	l, bus, teardown := setup(t)
	defer teardown()

	queue := bus.Chan(10)
	failure := errors.New("failed after writing")

	req := request{Id: "S2"}
	buffer, _ := json.Marshal(req)
	attempted := txid.New("Failing", buffer, 1)

	_, err := l.Submit("Failing", entity.Relationship{}, req, func(ctx ledger.Context) error {
		if err := addSeller("S2")(ctx); nil != err {
			return err
		}
		ctx.Emit(event.New(event.OrderPrice, "A1", "O1", 1.0))
		return failure
	})
	assert.Equal(t, failure, err, "wrong error")

	_, _, err = l.Transaction(attempted)
	assert.Equal(t, fault.TransactionNotFound, err, "aborted transaction recorded")

	select {
	case m := <-queue:
		t.Errorf("aborted transaction delivered: %q", m.Command)
	default:
	}

	n, _ := l.Count()
	assert.Equal(t, uint64(0), n, "aborted transaction counted")

	_, err = l.Submit("Check", entity.Relationship{}, nil, func(ctx ledger.Context) error {
		r, _ := ctx.Registry(sellerType)
		ok, _ := r.Exists("S2")
		assert.False(t, ok, "aborted write persisted")
		return nil
	})
	assert.Nil(t, err, "check error")
}

func TestSubmitEvents(t *testing.T) {
	l, bus, teardown := setup(t)
	defer teardown()

	queue := bus.Chan(10)

	id, err := l.Submit("Read", entity.Relationship{}, request{Id: "O1"}, func(ctx ledger.Context) error {
		ctx.Emit(event.New(event.OrderPrice, "A1", "O1", 120.0))
		ctx.Emit(event.New(event.SellerInfo, "A1", "O1", "confidential"))
		ctx.Emit(event.New(event.BuyerInfo, "A1", "O1", "ok"))
		return nil
	})
	assert.Nil(t, err, "submit error")

	_, events, err := l.Transaction(id)
	assert.Nil(t, err, "transaction error")
	assert.Equal(t, 3, len(events), "wrong event count")

	kinds := []event.Kind{event.OrderPrice, event.SellerInfo, event.BuyerInfo}
	values := []interface{}{120.0, "confidential", "ok"}
	for i, e := range events {
		assert.Equal(t, kinds[i], e.Kind, "wrong kind: %d", i)
		assert.Equal(t, values[i], e.Value, "wrong value: %d", i)
		assert.Equal(t, "A1", e.AccountId, "wrong account: %d", i)
		assert.Equal(t, id, e.TxId, "wrong txId: %d", i)
		assert.Equal(t, uint32(i), e.Index, "wrong index: %d", i)
	}

	for i := range kinds {
		m := <-queue
		assert.Equal(t, string(kinds[i]), m.Command, "wrong bus command")
		assert.Equal(t, 2, len(m.Parameters), "wrong bus parameters")
		assert.Equal(t, id[:], m.Parameters[0], "wrong bus txId")

		var e event.Event
		assert.Nil(t, json.Unmarshal(m.Parameters[1], &e), "bus event decode")
		assert.Equal(t, kinds[i], e.Kind, "wrong bus event")
	}
}

func TestSubmitUnknownEventKind(t *testing.T) {
	l, bus, teardown := setup(t)
	defer teardown()

	queue := bus.Chan(10)

	_, err := l.Submit("Read", entity.Relationship{}, request{Id: "O1"}, func(ctx ledger.Context) error {
		ctx.Emit(event.New(event.OrderPrice, "A1", "O1", 120.0))
		ctx.Emit(event.New(event.Kind("e_GetOrderPrice"), "A1", "O1", 120.0))
		return nil
	})
	assert.Equal(t, fault.UnknownEventKind, err, "unknown event kind committed")

	select {
	case m := <-queue:
		t.Errorf("rejected transaction delivered: %q", m.Command)
	default:
	}

	n, _ := l.Count()
	assert.Equal(t, uint64(0), n, "rejected transaction counted")
}

func TestTransactionNotFound(t *testing.T) {
	l, _, teardown := setup(t)
	defer teardown()

	_, _, err := l.Transaction(txid.Id{1})
	assert.Equal(t, fault.TransactionNotFound, err, "missing transaction found")
}
