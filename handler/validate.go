// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"math"

	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/fault"
)

func validPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fault.InvalidPrice
	}
	return nil
}

func validNote(note string) error {
	if "" == note {
		return fault.EmptyNote
	}
	return nil
}

// rebuild a reference as the expected type
//
// only the identifier of the incoming reference is used, a type if
// present must match
func reference(f *entity.Factory, name string, r entity.Relationship, missing error) (entity.Relationship, error) {
	if "" == r.ID {
		return entity.Relationship{}, missing
	}
	if "" != r.Type && f.Namespace().Qualify(name) != r.Type {
		return entity.Relationship{}, fault.InvalidRelationship
	}
	return f.NewRelationship(name, r.ID)
}
