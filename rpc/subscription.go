// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/registry"
)

const (
	rateLimitSubscription = 200
	rateBurstSubscription = 100
)

// Subscription - access level, expiry and lending operations
type Subscription struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *registry.Store
}

// NewSubscription - create the service
func NewSubscription(log *logger.L, dependencies *Dependencies) *Subscription {
	return &Subscription{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSubscription, rateBurstSubscription),
		store:   dependencies.Registry,
	}
}

// ---

// AccessArguments - set a principal's access level
type AccessArguments struct {
	Caller    string `json:"caller"`
	AssetId   uint64 `json:"assetId"`
	Principal string `json:"principal"`
	Level     uint64 `json:"level"`
}

// AccessReply - empty confirmation
type AccessReply struct {
}

// SetAccessLevel - owner-only setter for any principal
func (s *Subscription) SetAccessLevel(arguments *AccessArguments, reply *AccessReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	p, err := principal.FromString(arguments.Principal)
	if nil != err {
		return err
	}
	return s.store.SetAccessLevel(caller, arguments.AssetId, p, arguments.Level)
}

// ---

// LevelArguments - set the owner's own level
type LevelArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Level   uint64 `json:"level"`
}

// LevelReply - empty confirmation
type LevelReply struct {
}

// Upgrade - raise the owner's own access level
func (s *Subscription) Upgrade(arguments *LevelArguments, reply *LevelReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return s.store.UpgradeSubscription(caller, arguments.AssetId, arguments.Level)
}

// Downgrade - lower the owner's own access level
func (s *Subscription) Downgrade(arguments *LevelArguments, reply *LevelReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return s.store.DowngradeSubscription(caller, arguments.AssetId, arguments.Level)
}

// ---

// QueryArguments - query a principal's effective level
type QueryArguments struct {
	AssetId   uint64 `json:"assetId"`
	Principal string `json:"principal"`
}

// QueryReply - the effective level
type QueryReply struct {
	Level uint64 `json:"level"`
}

// AccessLevel - the effective level, loan overlay included
func (s *Subscription) AccessLevel(arguments *QueryArguments, reply *QueryReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	p, err := principal.FromString(arguments.Principal)
	if nil != err {
		return err
	}
	level, err := s.store.AccessLevelOf(arguments.AssetId, p)
	if nil != err {
		return err
	}
	reply.Level = level
	return nil
}

// ---

// ExtendArguments - renew by whole days
type ExtendArguments struct {
	Caller     string `json:"caller"`
	AssetId    uint64 `json:"assetId"`
	ExtraDays  uint64 `json:"extraDays"`
	PaidAmount uint64 `json:"paidAmount"`
}

// ExtendReply - seconds remaining after the extension
type ExtendReply struct {
	Countdown uint64 `json:"countdown"`
}

// Extend - push the expiry out by whole days
func (s *Subscription) Extend(arguments *ExtendArguments, reply *ExtendReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	if err := s.store.ExtendSubscription(caller, arguments.AssetId, arguments.ExtraDays, arguments.PaidAmount); nil != err {
		return err
	}
	countdown, err := s.store.ExpiryCountdown(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Countdown = countdown
	return nil
}

// ---

// ExpiryArguments - owner override of the expiry
type ExpiryArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Expiry  int64  `json:"expiry"`
}

// ExpiryReply - empty confirmation
type ExpiryReply struct {
}

// SetExpiry - owner override of the expiry timestamp
func (s *Subscription) SetExpiry(arguments *ExpiryArguments, reply *ExpiryReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return s.store.SetExpiry(caller, arguments.AssetId, arguments.Expiry)
}

// ---

// StatusArguments - select one asset
type StatusArguments struct {
	AssetId uint64 `json:"assetId"`
}

// StatusReply - expiry state of an asset
type StatusReply struct {
	Expired   bool   `json:"expired"`
	Countdown uint64 `json:"countdown"`
	Notify    bool   `json:"notify"`
}

// Status - expiry, countdown and notification state in one call
func (s *Subscription) Status(arguments *StatusArguments, reply *StatusReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	expired, err := s.store.IsExpired(arguments.AssetId)
	if nil != err {
		return err
	}
	countdown, err := s.store.ExpiryCountdown(arguments.AssetId)
	if nil != err {
		return err
	}
	notify, err := s.store.CheckForExpiryNotification(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Expired = expired
	reply.Countdown = countdown
	reply.Notify = notify
	return nil
}

// ---

// CertificateArguments - issue the one-shot certificate
type CertificateArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
}

// CertificateReply - empty confirmation
type CertificateReply struct {
}

// IssueCertificate - one-shot certificate for a lapsed subscription
func (s *Subscription) IssueCertificate(arguments *CertificateArguments, reply *CertificateReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return s.store.IssueCertificate(caller, arguments.AssetId)
}

// ---

// LendArguments - lend access to a borrower
type LendArguments struct {
	Caller   string `json:"caller"`
	AssetId  uint64 `json:"assetId"`
	Borrower string `json:"borrower"`
	Days     uint64 `json:"days"`
}

// LendReply - the loan return time
type LendReply struct {
	ReturnTime int64 `json:"returnTime"`
}

// Lend - grant temporary access without transferring
func (s *Subscription) Lend(arguments *LendArguments, reply *LendReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	borrower, err := principal.FromString(arguments.Borrower)
	if nil != err {
		return err
	}
	if err := s.store.Lend(caller, arguments.AssetId, borrower, arguments.Days); nil != err {
		return err
	}
	_, returnTime, err := s.store.LendingInfo(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.ReturnTime = returnTime
	return nil
}

// ---

// LoanReply - the current loan record
type LoanReply struct {
	Borrower   string `json:"borrower"`
	ReturnTime int64  `json:"returnTime"`
}

// Loan - the current loan record, if any
func (s *Subscription) Loan(arguments *StatusArguments, reply *LoanReply) error {
	if err := rateLimit(s.Limiter); nil != err {
		return err
	}
	borrower, returnTime, err := s.store.LendingInfo(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Borrower = borrower.String()
	reply.ReturnTime = returnTime
	return nil
}
