// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/event"
)

func TestKind(t *testing.T) {
	for _, k := range []event.Kind{event.OrderPrice, event.SellerInfo, event.BuyerInfo} {
		assert.True(t, k.Valid(), "kind: %s", k)
	}
	assert.False(t, event.Kind("e_GetOrderPrice").Valid(), "unknown kind accepted")
}

func TestEventJSON(t *testing.T) {
	e := event.New(event.OrderPrice, "A1", "O1", 120.5)

	buffer, err := json.Marshal(e)
	assert.Nil(t, err, "marshal error")

	var decoded map[string]interface{}
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")

	assert.Equal(t, "OrderPrice", decoded["eventKind"], "wrong kind")
	assert.Equal(t, "A1", decoded["accountId"], "wrong account")
	assert.Equal(t, "O1", decoded["orderId"], "wrong order")
	assert.Equal(t, 120.5, decoded["value"], "wrong value")
}
