// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/orderd/rpc/node"
	"github.com/bitmark-inc/orderd/rpc/participant"
	"github.com/bitmark-inc/orderd/rpc/transaction"
	"github.com/bitmark-inc/orderd/txid"
)

// AddParticipant - register a seller, buyer or account
func (c *Client) AddParticipant(arguments *participant.AddArguments) (*participant.AddReply, error) {
	var reply participant.AddReply
	if err := c.call("Participant.Add", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTransaction - fetch a committed transaction and its events
func (c *Client) GetTransaction(id txid.Id) (*transaction.GetReply, error) {
	var reply transaction.GetReply
	if err := c.call("Transaction.Get", &transaction.Arguments{TxId: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTransactionStatus - perform a status request
func (c *Client) GetTransactionStatus(id txid.Id) (*transaction.StatusReply, error) {
	var reply transaction.StatusReply
	if err := c.call("Transaction.Status", &transaction.Arguments{TxId: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetNodeInfo - server version and settings
func (c *Client) GetNodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
