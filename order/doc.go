// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package order - the public order asset and its private seller partition
//
// An Order is readable by every participant.  When seller info is
// partitioned it lives in a PrivateInfo record (registry type
// OrderSellerInfo) keyed by the same identifier as the order, so a
// storage policy can restrict the partition without touching the
// order.
//
// Note fields are logs: Append only ever adds "; " ++ note.
package order
