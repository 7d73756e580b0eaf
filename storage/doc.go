// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.  Tables
// that hold ledger records also carry a registry tag giving the
// short type name of the record, so that a registry can be located
// from a fully qualified type name.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++     = concatenation of byte data
// 3. id     = record identifier as UTF-8 bytes
// 4. txId   = transaction id as 32 byte SHA3-256
// 5. index  = big endian uint32 (4 bytes)
// 6. json   = JSON encoded record
//
// Registries:
//
//   O ++ id                    - Order
//                                data: json
//   S ++ id                    - OrderSellerInfo (private partition of an order)
//                                data: json
//   E ++ id                    - Seller participant
//                                data: json
//   B ++ id                    - Buyer participant
//                                data: json
//   A ++ id                    - Account participant
//                                data: json
//
// Ledger:
//
//   T ++ txId                  - committed transactions
//                                data: json
//   V ++ txId ++ index         - events emitted by a transaction
//                                data: json
//   N ++ "sequence"            - next transaction sequence number
//                                data: big endian uint64 (8 bytes)
//
// Testing:
//   Z ++ key                   - testing data
package storage
