// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/orderd/rpc/order"
)

// CreateOrder - place a new order
func (c *Client) CreateOrder(arguments *order.CreateArguments) (*order.TransactionReply, error) {
	var reply order.TransactionReply
	if err := c.call("Order.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateBuyerInfo - append a buyer note
func (c *Client) UpdateBuyerInfo(arguments *order.InfoArguments) (*order.TransactionReply, error) {
	var reply order.TransactionReply
	if err := c.call("Order.UpdateBuyerInfo", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateSellerInfo - append a seller note
func (c *Client) UpdateSellerInfo(arguments *order.InfoArguments) (*order.TransactionReply, error) {
	var reply order.TransactionReply
	if err := c.call("Order.UpdateSellerInfo", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdatePrice - replace the price
func (c *Client) UpdatePrice(arguments *order.PriceArguments) (*order.TransactionReply, error) {
	var reply order.TransactionReply
	if err := c.call("Order.UpdatePrice", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetOrderInfo - request the order events for an account
func (c *Client) GetOrderInfo(arguments *order.GetInfoArguments) (*order.TransactionReply, error) {
	var reply order.TransactionReply
	if err := c.call("Order.GetInfo", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
