// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderd/entity"
)

func TestParseParticipant(t *testing.T) {
	ns := entity.DefaultNamespace

	r, err := parseParticipant(ns, "Seller#S1")
	assert.Nil(t, err, "wrong short form")
	assert.Equal(t, entity.Relationship{Type: "org.privatedata.Seller", ID: "S1"}, r, "wrong relationship")

	r, err = parseParticipant(ns, "resource:org.other.Buyer#B1")
	assert.Nil(t, err, "wrong full form")
	assert.Equal(t, entity.Relationship{Type: "org.other.Buyer", ID: "B1"}, r, "wrong relationship")

	r, err = parseParticipant(ns, "  ")
	assert.Nil(t, err, "wrong blank")
	assert.True(t, r.IsZero(), "blank should be zero")

	for _, s := range []string{"Seller", "#S1", "Seller#"} {
		_, err = parseParticipant(ns, s)
		assert.NotNil(t, err, "expected error for: "+s)
	}
}
