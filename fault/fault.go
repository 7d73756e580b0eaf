// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ConnectionLimit              = InvalidError("connection limit too small")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DuplicateOrder               = ExistsError("order already exists")
	DuplicateParticipant         = ExistsError("participant already exists")
	DuplicatePrivateInfo         = ExistsError("order seller info already exists")
	DuplicateRecord              = ExistsError("record already exists")
	EmptyNote                    = InvalidError("note text is empty")
	IncompatibleDatabase         = ProcessError("incompatible database version")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIdentifier            = InvalidError("invalid identifier")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrice                 = InvalidError("invalid price")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidRelationship          = InvalidError("invalid relationship")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidTransactionId         = InvalidError("invalid transaction id")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingBuyer                 = InvalidError("buyer relationship is required")
	MissingParameters            = InvalidError("missing parameters")
	MissingSeller                = InvalidError("seller relationship is required")
	NotInitialised               = NotFoundError("not initialised")
	NotSeller                    = PermissionError("invoker is not the seller")
	OrderNotFound                = NotFoundError("order not found")
	ParticipantNotFound          = NotFoundError("participant not found")
	PrivateInfoNotFound          = NotFoundError("order seller info not found")
	RateLimiting                 = InvalidError("rate limiting")
	RecordNotFound               = NotFoundError("record not found")
	TransactionAlreadyActive     = ProcessError("transaction already active")
	TransactionNotActive         = ProcessError("transaction not active")
	TransactionNotFound          = NotFoundError("transaction not found")
	UnknownEventKind             = InvalidError("unknown event kind")
	UnknownResourceType          = InvalidError("unknown resource type")
	WrongResourceType            = ProcessError("wrong resource type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
