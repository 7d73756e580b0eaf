// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - ZeroMQ PUB sockets for committed events
//
// each event is sent as a three part message:
//
//   eventKind  txId (32 bytes)  event JSON
//
// subscribers filter on the event kind; when a key pair is
// configured the sockets are CURVE servers
package publish
