// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AccessDeniedError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ProcessError("already initialised")
	AlreadySoldAtAuction     = StateError("asset already sold at auction")
	AssetLocked              = StateError("asset is locked by an active auction or listing")
	AssetNotFound            = NotFoundError("asset not found")
	AuctionAlreadyActive     = StateError("auction already active")
	AuctionNotActive         = StateError("auction not active")
	AuctionTooEarly          = StateError("auction end time not reached")
	BidTooLow                = InvalidError("bid too low")
	CannotBidOnOwnAuction    = InvalidError("cannot bid on own auction")
	CertificateAlreadyIssued = ExistsError("certificate already issued")
	CertificateFileExists    = ExistsError("certificate file already exists")
	EmptyBundle              = InvalidError("bundle needs at least one asset")
	InsufficientPayment      = InvalidError("insufficient payment")
	InvalidAccessLevel       = InvalidError("access level out of range")
	InvalidCount             = InvalidError("invalid count")
	InvalidDuration          = InvalidError("invalid duration")
	InvalidPrincipal         = InvalidError("invalid principal identifier")
	InvalidRoyaltyRate       = InvalidError("royalty rate out of range")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	KeyFileExists            = ExistsError("key file already exists")
	MissingParameters        = InvalidError("missing parameters")
	NotAssetOwner            = AccessDeniedError("not asset owner")
	NotAuthorised            = AccessDeniedError("caller is not authorised")
	NotForSale               = StateError("asset not for sale")
	NotInitialised           = ProcessError("not initialised")
	PrincipalBanned          = AccessDeniedError("principal is banned")
	RateLimiting             = ProcessError("rate limiting active")
	RegistrySuspended        = StateError("registry is suspended")
	SubscriptionNotExpired   = StateError("subscription not expired")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessDeniedError) Error() string { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e StateError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAccessDenied(e error) bool { _, ok := e.(AccessDeniedError); return ok }
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrState(e error) bool        { _, ok := e.(StateError); return ok }
