// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - typed access to the storage pools
//
// A Store binds the registries to one storage transaction; every
// Add and Update goes into that transaction's batch and is seen by
// later reads through the same Store, nothing is visible to any
// other reader until the ledger commits.
package registry
