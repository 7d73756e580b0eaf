// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - the order transactions
//
// Transactions holds the body of each transaction and is run inside
// a ledger.Context; Handler submits those bodies to a ledger.  Where
// seller info lives is decided once for the whole ledger: inline in
// the Order or partitioned into an OrderSellerInfo record.
package handler
