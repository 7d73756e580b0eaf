// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan out of committed ledger events
//
// every listener obtained from Chan receives its own copy of each
// message; a listener that falls behind loses messages rather than
// blocking the sender
package messagebus
