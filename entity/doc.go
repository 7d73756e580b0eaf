// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entity - typed ledger records and references between them
//
// Every record kept in a registry is a Resource identified by its
// fully qualified type name (namespace + "." + short name) and an
// identifier string.  A Relationship is the (type, identifier) pair
// of a resource; producing one never touches storage, reading the
// referenced record is an explicit Resolve against a registry.
package entity
