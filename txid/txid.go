// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txid - transaction identifiers
package txid

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/orderd/fault"
)

// Length - number of bytes in an identifier
const Length = 32

// Id - SHA3-256 of a transaction's kind, request and sequence number
//
// represented as hex text for printing and JSON encoding
// to convert to bytes just use id[:]
type Id [Length]byte

// New - identifier of a submitted request
//
// seq makes repeated submissions of the same request distinct
func New(kind string, request []byte, seq uint64) Id {
	buffer := make([]byte, 0, len(kind)+1+len(request)+8)
	buffer = append(buffer, kind...)
	buffer = append(buffer, 0x00)
	buffer = append(buffer, request...)
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, seq)
	buffer = append(buffer, n...)
	return sha3.Sum256(buffer)
}

// FromBytes - convert and validate a binary identifier
func FromBytes(id *Id, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidTransactionId
	}
	copy(id[:], buffer)
	return nil
}

// Parse - convert hex text to an identifier
func Parse(s string) (Id, error) {
	id := Id{}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// IsZero - true for the unset identifier
func (id Id) IsZero() bool {
	return Id{} == id
}

// String - hex text for the fmt package (for %s)
func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - for the fmt package (for %#v)
func (id Id) GoString() string {
	return "<txId:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert identifier to hex text
func (id Id) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identifier
func (id *Id) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.InvalidTransactionId
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.InvalidTransactionId
	}
	copy(id[:], buffer)
	return nil
}
