// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - notifications emitted by transactions
//
// A read transaction returns nothing to its submitter, instead it
// emits events that the submitter observes after commit.
package event

import (
	"time"

	"github.com/bitmark-inc/orderd/txid"
)

// Kind - name of an event
type Kind string

// the events of an order read
const (
	OrderPrice Kind = "OrderPrice"
	SellerInfo Kind = "SellerInfo"
	BuyerInfo  Kind = "BuyerInfo"
)

// Valid - check for a known kind
func (k Kind) Valid() bool {
	switch k {
	case OrderPrice, SellerInfo, BuyerInfo:
		return true
	default:
		return false
	}
}

// Event - one notification
//
// TxId, Index and Timestamp are filled in by the ledger on commit
type Event struct {
	Kind      Kind        `json:"eventKind"`
	AccountId string      `json:"accountId"`
	OrderId   string      `json:"orderId"`
	Value     interface{} `json:"value"`
	TxId      txid.Id     `json:"txId"`
	Index     uint32      `json:"index"`
	Timestamp time.Time   `json:"timestamp"`
}

// New - an event for an account
func New(kind Kind, accountId string, orderId string, value interface{}) *Event {
	return &Event{
		Kind:      kind,
		AccountId: accountId,
		OrderId:   orderId,
		Value:     value,
	}
}
