// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/counter"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/fixtures"
	"github.com/bitmark-inc/orderd/rpc/mocks"
	"github.com/bitmark-inc/orderd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Count().Return(uint64(42), nil).Times(1)

	settings := node.Settings{
		Namespace:              "org.privatedata",
		PrivateInfoPartitioned: true,
		AccessPolicy:           "allow-all",
	}
	ctr := counter.Counter(3)
	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now().Add(-time.Minute),
		"1.0",
		settings,
		l,
		&ctr,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, settings, reply.Settings, "wrong settings")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, uint64(42), reply.Transactions, "wrong transaction count")
	assert.NotEqual(t, "", reply.Uptime, "wrong uptime")
}

func TestNodeInfoWhenNoLedger(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctr := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.0", node.Settings{}, nil, &ctr)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")
}
