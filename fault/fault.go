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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrDigestAboveTarget     = InvalidError("digest is above target")
	ErrDigestLength          = LengthError("digest length is invalid")
	ErrInternalComputation   = ProcessError("internal computation error")
	ErrInvalidAlgorithm      = InvalidError("invalid algorithm")
	ErrInvalidBits           = InvalidError("invalid difficulty bits")
	ErrInvalidCharacter      = InvalidError("invalid character")
	ErrInvalidCost           = InvalidError("invalid cost")
	ErrInvalidHex            = InvalidError("invalid hex value")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidSalt           = InvalidError("invalid salt")
	ErrInvalidSetting        = InvalidError("invalid setting")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidThreadCount    = InvalidError("invalid thread count")
	ErrInvalidVariant        = InvalidError("invalid variant")
	ErrMalformedHeader       = LengthError("malformed header")
	ErrNonceNotFound         = NotFoundError("nonce not found")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrSelfTestFailed        = ProcessError("self test failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
