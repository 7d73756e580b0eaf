// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"strings"

	"github.com/bitmark-inc/orderd/fault"
)

const (
	relationshipScheme = "resource:"
	identifierMark     = "#"
)

// Relationship - reference to a resource by fully qualified type and identifier
type Relationship struct {
	Type string
	ID   string
}

// ParseRelationship - decode the text form "resource:<type>#<id>"
func ParseRelationship(s string) (Relationship, error) {
	r := Relationship{}
	err := r.UnmarshalText([]byte(s))
	return r, err
}

// IsZero - true for the unset relationship
func (r Relationship) IsZero() bool {
	return "" == r.Type && "" == r.ID
}

// Equal - same type and same identifier
func (r Relationship) Equal(other Relationship) bool {
	return r.Type == other.Type && r.ID == other.ID
}

// Resolve - fetch the referenced resource
func (r Relationship) Resolve(g Getter) (Resource, error) {
	if r.IsZero() {
		return nil, fault.InvalidRelationship
	}
	return g.Get(r.Type, r.ID)
}

// String - text form
func (r Relationship) String() string {
	if r.IsZero() {
		return ""
	}
	return relationshipScheme + r.Type + identifierMark + r.ID
}

// MarshalText - convert relationship to text
func (r Relationship) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText - convert text into a relationship, empty text is the zero value
func (r *Relationship) UnmarshalText(s []byte) error {
	text := string(s)
	if "" == text {
		*r = Relationship{}
		return nil
	}

	if !strings.HasPrefix(text, relationshipScheme) {
		return fault.InvalidRelationship
	}
	text = text[len(relationshipScheme):]

	n := strings.Index(text, identifierMark)
	if n <= 0 || n == len(text)-1 {
		return fault.InvalidRelationship
	}

	r.Type = text[:n]
	r.ID = text[n+1:]
	return nil
}
