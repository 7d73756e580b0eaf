// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - RPC lookup of committed transactions
package transaction

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/event"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/rpc/ratelimit"
	"github.com/bitmark-inc/orderd/txid"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// transaction states
const (
	StatusCommitted = "Committed"
	StatusUnknown   = "Unknown"
)

// Reader - access to the committed transaction log
type Reader interface {
	Transaction(txid.Id) (*ledger.Record, []*event.Event, error)
}

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	reader  Reader
}

// New - create the transaction service
func New(log *logger.L, reader Reader) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		reader:  reader,
	}
}

// Arguments - arguments for transaction RPC requests
type Arguments struct {
	TxId txid.Id `json:"txId"`
}

// GetReply - a committed transaction and its events
type GetReply struct {
	Record *ledger.Record `json:"record"`
	Events []*event.Event `json:"events"`
}

// Get - fetch a committed transaction
func (t *Transaction) Get(arguments *Arguments, reply *GetReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	record, events, err := t.reader.Transaction(arguments.TxId)
	if nil != err {
		return err
	}

	reply.Record = record
	reply.Events = events
	if nil == reply.Events {
		reply.Events = []*event.Event{}
	}
	return nil
}

// StatusReply - results from status RPC
type StatusReply struct {
	Status string `json:"status"`
}

// Status - query transaction status
//
// rejected transactions leave no record so they report as unknown
func (t *Transaction) Status(arguments *Arguments, reply *StatusReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	_, _, err := t.reader.Transaction(arguments.TxId)
	switch err {
	case nil:
		reply.Status = StatusCommitted
	case fault.TransactionNotFound:
		reply.Status = StatusUnknown
	default:
		return err
	}
	return nil
}
