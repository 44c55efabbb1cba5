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

// Lend - grant a borrower temporary access without transferring
//
// the loan is only an overlay consulted by access-level queries; once
// the return time passes it becomes inert with no expiry sweep, and
// a new loan simply replaces the old record
func (s *Store) Lend(caller principal.Principal, assetId uint64, borrower principal.Principal, days uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	if borrower.IsNobody() {
		return fault.InvalidPrincipal
	}
	if s.roles.IsBanned(borrower) {
		return fault.PrincipalBanned
	}
	if 0 == days || days > constants.MaximumDurationDays {
		return fault.InvalidDuration
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}

	now := s.clock.Now()
	entry.Loan = &loanState{
		Borrower:   borrower,
		ReturnTime: now.Unix() + int64(days)*secondsPerDay,
	}
	s.save(assetId, entry)

	s.events.Record("lend", assetId, caller, borrower, days, now)
	return nil
}

// LendingInfo - the current loan record, if any
//
// the record is returned even after its return time has passed; the
// caller compares against the clock just as the access query does
func (s *Store) LendingInfo(assetId uint64) (principal.Principal, int64, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return principal.Nobody, 0, err
	}
	if nil == entry.Loan {
		return principal.Nobody, 0, nil
	}
	return entry.Loan.Borrower, entry.Loan.ReturnTime, nil
}
