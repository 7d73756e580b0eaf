// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the set of RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/counter"
	"github.com/bitmark-inc/orderd/rpc/node"
	"github.com/bitmark-inc/orderd/rpc/order"
	"github.com/bitmark-inc/orderd/rpc/participant"
	"github.com/bitmark-inc/orderd/rpc/transaction"
)

// Handler - every transaction a client may submit
type Handler interface {
	order.Handler
	participant.Handler
}

// Ledger - read access to the committed transactions
type Ledger interface {
	transaction.Reader
	node.Ledger
}

// Create - register all services
func Create(log *logger.L, version string, settings node.Settings, h Handler, l Ledger, rpcCount *counter.Counter) (*rpc.Server, error) {

	start := time.Now().UTC()

	server := rpc.NewServer()

	services := []interface{}{
		order.New(log, h),
		participant.New(log, h),
		transaction.New(log, l),
		node.New(log, start, version, settings, l, rpcCount),
	}
	for _, s := range services {
		if err := server.Register(s); nil != err {
			return nil, err
		}
	}

	return server, nil
}
