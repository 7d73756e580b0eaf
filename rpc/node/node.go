// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC information about the running server
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/counter"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Ledger - the transaction count source
type Ledger interface {
	Count() (uint64, error)
}

// Settings - configuration that changes transaction behaviour
type Settings struct {
	Namespace              string `json:"namespace"`
	PrivateInfoPartitioned bool   `json:"privateInfoPartitioned"`
	AccessPolicy           string `json:"accessPolicy"`
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	settings Settings
	ledger   Ledger
	counter  *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, settings Settings, l Ledger, counter *counter.Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		settings: settings,
		ledger:   l,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version      string   `json:"version"`
	Uptime       string   `json:"uptime"`
	Settings     Settings `json:"settings"`
	RPCs         uint64   `json:"rpcs"`
	Transactions uint64   `json:"transactions"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.ledger {
		return fault.DatabaseIsNotSet
	}

	count, err := node.ledger.Count()
	if nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Settings = node.settings
	reply.RPCs = node.counter.Uint64()
	reply.Transactions = count

	return nil
}
