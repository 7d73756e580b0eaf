// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/access"
	"github.com/bitmark-inc/orderd/command/order-cli/rpccalls"
	"github.com/bitmark-inc/orderd/counter"
	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/event"
	"github.com/bitmark-inc/orderd/fixtures"
	"github.com/bitmark-inc/orderd/handler"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/order"
	"github.com/bitmark-inc/orderd/rpc/node"
	rpcorder "github.com/bitmark-inc/orderd/rpc/order"
	"github.com/bitmark-inc/orderd/rpc/participant"
	"github.com/bitmark-inc/orderd/rpc/server"
	"github.com/bitmark-inc/orderd/rpc/transaction"
	"github.com/bitmark-inc/orderd/storage"
)

func ref(name string, id string) entity.Relationship {
	return entity.Relationship{Type: entity.DefaultNamespace.Qualify(name), ID: id}
}

func setupClient(t *testing.T, verbose *bytes.Buffer) (*rpccalls.Client, func()) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	f := entity.NewFactory(entity.DefaultNamespace)
	order.Register(f)

	log := logger.New(fixtures.LogCategory)
	l := ledger.New(log, db, f, nil)
	h := handler.New(log, l, handler.NewTransactions(true, access.SellerAuthority))

	count := counter.Counter(0)
	s, err := server.Create(log, "test", node.Settings{AccessPolicy: access.SellerAuthority.String()}, h, l, &count)
	if nil != err {
		t.Fatalf("server create error: %s", err)
	}

	clientConn, serverConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := rpccalls.NewClientFromConn(clientConn, nil != verbose, verbose)
	return client, func() {
		client.Close()
		db.Close()
		fixtures.TeardownTestLogger()
	}
}

func TestClientOrderCalls(t *testing.T) {
	client, teardown := setupClient(t, nil)
	defer teardown()

	seller := ref(order.SellerType, "S1")

	_, err := client.AddParticipant(&participant.AddArguments{
		Type:          order.SellerType,
		ParticipantId: "S1",
	})
	assert.Nil(t, err, "wrong AddParticipant")

	_, err = client.CreateOrder(&rpcorder.CreateArguments{
		Invoker:    seller,
		OrderId:    "O1",
		Seller:     seller,
		Buyer:      ref(order.BuyerType, "B1"),
		Price:      100,
		SellerInfo: "confidential",
		BuyerInfo:  "ok",
	})
	assert.Nil(t, err, "wrong CreateOrder")

	_, err = client.UpdateSellerInfo(&rpcorder.InfoArguments{
		Invoker: seller,
		Order:   ref(order.OrderType, "O1"),
		NewInfo: "packed",
	})
	assert.Nil(t, err, "wrong UpdateSellerInfo")

	_, err = client.UpdatePrice(&rpcorder.PriceArguments{
		Invoker:  ref(order.BuyerType, "B1"),
		Order:    ref(order.OrderType, "O1"),
		NewPrice: 1,
	})
	assert.NotNil(t, err, "buyer changed the price")

	reply, err := client.GetOrderInfo(&rpcorder.GetInfoArguments{
		Account: ref(order.AccountType, "A1"),
		Order:   ref(order.OrderType, "O1"),
	})
	assert.Nil(t, err, "wrong GetOrderInfo")

	tx, err := client.GetTransaction(reply.TxId)
	assert.Nil(t, err, "wrong GetTransaction")
	if assert.Equal(t, 3, len(tx.Events), "wrong event count") {
		assert.Equal(t, event.OrderPrice, tx.Events[0].Kind, "wrong event kind")
		assert.Equal(t, 100.0, tx.Events[0].Value, "price changed by buyer")
		assert.Equal(t, "confidential; packed", tx.Events[1].Value, "wrong seller info")
	}

	status, err := client.GetTransactionStatus(reply.TxId)
	assert.Nil(t, err, "wrong GetTransactionStatus")
	assert.Equal(t, transaction.StatusCommitted, status.Status, "wrong status")

	info, err := client.GetNodeInfo()
	assert.Nil(t, err, "wrong GetNodeInfo")
	assert.Equal(t, "seller-authority", info.Settings.AccessPolicy, "wrong policy")
	assert.Equal(t, uint64(4), info.Transactions, "wrong transaction count")
}

func TestClientVerbose(t *testing.T) {
	buffer := &bytes.Buffer{}
	client, teardown := setupClient(t, buffer)
	defer teardown()

	_, err := client.GetNodeInfo()
	assert.Nil(t, err, "wrong GetNodeInfo")
	assert.Contains(t, buffer.String(), "Node.Info Request", "missing request trace")
	assert.Contains(t, buffer.String(), "Node.Info Reply", "missing reply trace")
}
