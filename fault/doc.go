// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Every error that can abort a ledger transaction belongs to one of
// the classes below, so callers can decide how to report it without
// knowing the individual instance:
//
//   ExistsError     - a record with the same identifier is already present
//   NotFoundError   - the addressed record does not exist
//   InvalidError    - malformed request data
//   PermissionError - rejected by the access policy
//   ProcessError    - internal or storage failure
package fault
