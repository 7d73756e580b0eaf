// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - serialised atomic execution of transactions
//
// Submit runs one transaction function at a time inside a single
// storage transaction.  If the function fails nothing it wrote is
// kept and none of its events are delivered.  On success the
// transaction record, every registry write and every emitted event
// are committed as one LevelDB batch and the events are then sent
// to the message bus.
package ledger
