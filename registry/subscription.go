// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/registryd/constants"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/principal"
)

const secondsPerDay = 86400

// IsExpired - a subscription is expired at and after its expiry instant
func (s *Store) IsExpired(assetId uint64) (bool, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return false, err
	}
	return s.clock.Now().Unix() >= entry.Expiry, nil
}

// SetAccessLevel - store a principal's access level for an asset
//
// a plain setter: raising and lowering are symmetric, nothing is
// monotonic about the stored value
func (s *Store) SetAccessLevel(caller principal.Principal, assetId uint64, p principal.Principal, level uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	if p.IsNobody() {
		return fault.InvalidPrincipal
	}
	if level < constants.MinimumAccessLevel || level > constants.MaximumAccessLevel {
		return fault.InvalidAccessLevel
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}

	if nil == entry.AccessLevels {
		entry.AccessLevels = make(map[principal.Principal]uint64)
	}
	entry.AccessLevels[p] = level
	s.save(assetId, entry)

	s.events.Record("access.set", assetId, caller, p, level, s.clock.Now())
	return nil
}

// UpgradeSubscription - set the owner's own access level
func (s *Store) UpgradeSubscription(caller principal.Principal, assetId uint64, level uint64) error {
	return s.SetAccessLevel(caller, assetId, caller, level)
}

// DowngradeSubscription - set the owner's own access level
//
// symmetric with upgrade; the split surface mirrors how callers
// think about the change, not a monotonicity rule
func (s *Store) DowngradeSubscription(caller principal.Principal, assetId uint64, level uint64) error {
	return s.SetAccessLevel(caller, assetId, caller, level)
}

// AccessLevelOf - the effective access level of a principal
//
// an active loan raises the borrower to at least the owner's own
// level; once the return time passes the loan is simply disregarded
func (s *Store) AccessLevelOf(assetId uint64, p principal.Principal) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return 0, err
	}

	level := entry.AccessLevels[p]
	if 0 == level && entry.Owner == p {
		level = constants.DefaultAccessLevel
	}

	if nil != entry.Loan &&
		entry.Loan.Borrower == p &&
		s.clock.Now().Unix() < entry.Loan.ReturnTime {

		ownerLevel := entry.AccessLevels[entry.Owner]
		if 0 == ownerLevel {
			ownerLevel = constants.DefaultAccessLevel
		}
		if ownerLevel > level {
			level = ownerLevel
		}
	}
	return level, nil
}

// ExtendSubscription - push the expiry out by whole days
//
// the extension is additive to the current expiry, not to now, so a
// renewal before expiry loses none of the remaining time; the payment
// goes to the asset owner
func (s *Store) ExtendSubscription(caller principal.Principal, assetId uint64, extraDays uint64, paidAmount uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	if 0 == extraDays || extraDays > constants.MaximumDurationDays {
		return fault.InvalidDuration
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if paidAmount < constants.SubscriptionRatePerDay*extraDays {
		return fault.InsufficientPayment
	}

	entry.Expiry += int64(extraDays) * secondsPerDay
	s.save(assetId, entry)
	s.payments.Credit(entry.Owner, paidAmount)

	s.events.Record("subscription.extend", assetId, caller, entry.Owner, paidAmount, s.clock.Now())
	return nil
}

// SetExpiry - owner override of the expiry timestamp
func (s *Store) SetExpiry(caller principal.Principal, assetId uint64, expiry int64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}

	entry.Expiry = expiry
	s.save(assetId, entry)

	s.events.Record("subscription.expiry", assetId, caller, principal.Nobody, uint64(expiry), s.clock.Now())
	return nil
}

// ExpiryCountdown - seconds until expiry, zero once expired
func (s *Store) ExpiryCountdown(assetId uint64) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return 0, err
	}
	remaining := entry.Expiry - s.clock.Now().Unix()
	if remaining <= 0 {
		return 0, nil
	}
	return uint64(remaining), nil
}

// CheckForExpiryNotification - true only inside the warning window
//
// never true once already expired
func (s *Store) CheckForExpiryNotification(assetId uint64) (bool, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return false, err
	}
	remaining := entry.Expiry - s.clock.Now().Unix()
	return remaining > 0 && remaining <= int64(constants.ExpiryNotificationWindow.Seconds()), nil
}

// IssueCertificate - one-shot certificate for a lapsed subscription
func (s *Store) IssueCertificate(caller principal.Principal, assetId uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}
	if s.clock.Now().Unix() < entry.Expiry {
		return fault.SubscriptionNotExpired
	}
	if entry.CertificateIssued {
		return fault.CertificateAlreadyIssued
	}

	entry.CertificateIssued = true
	s.save(assetId, entry)

	s.events.Record("certificate.issue", assetId, caller, principal.Nobody, 0, s.clock.Now())
	return nil
}
