// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderd/order"
	"github.com/bitmark-inc/orderd/rpc/participant"
	rpcorder "github.com/bitmark-inc/orderd/rpc/order"
	"github.com/bitmark-inc/orderd/txid"
)

func runParticipant(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "type", "id"); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AddParticipant(&participant.AddArguments{
		Invoker:       m.invoker,
		Type:          c.String("type"),
		ParticipantId: c.String("id"),
		Name:          c.String("name"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runCreate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "order", "seller", "buyer"); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateOrder(&rpcorder.CreateArguments{
		Invoker:    m.invoker,
		OrderId:    c.String("order"),
		Seller:     reference(m.namespace, order.SellerType, c.String("seller")),
		Buyer:      reference(m.namespace, order.BuyerType, c.String("buyer")),
		Price:      c.Float64("price"),
		SellerInfo: c.String("seller-info"),
		BuyerInfo:  c.String("buyer-info"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runBuyerInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "order", "note"); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpdateBuyerInfo(&rpcorder.InfoArguments{
		Invoker: m.invoker,
		Order:   reference(m.namespace, order.OrderType, c.String("order")),
		NewInfo: c.String("note"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runSellerInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "order", "note"); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpdateSellerInfo(&rpcorder.InfoArguments{
		Invoker: m.invoker,
		Order:   reference(m.namespace, order.OrderType, c.String("order")),
		NewInfo: c.String("note"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runPrice(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "order"); nil != err {
		return err
	}
	if !c.IsSet("price") {
		return fmt.Errorf("price is required")
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpdatePrice(&rpcorder.PriceArguments{
		Invoker:  m.invoker,
		Order:    reference(m.namespace, order.OrderType, c.String("order")),
		NewPrice: c.Float64("price"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

// the values are returned as events of the transaction, fetch them
// once the transaction is committed
func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := checkRequired(c, "order", "account"); nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetOrderInfo(&rpcorder.GetInfoArguments{
		Account: reference(m.namespace, order.AccountType, c.String("account")),
		Order:   reference(m.namespace, order.OrderType, c.String("order")),
	})
	if nil != err {
		return err
	}

	tx, err := client.GetTransaction(reply.TxId)
	if nil != err {
		return err
	}

	printJson(m.w, tx)
	return nil
}

func runTransaction(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := txid.Parse(c.String("txid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetTransaction(id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runStatus(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := txid.Parse(c.String("txid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetTransactionStatus(id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runNodeInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
