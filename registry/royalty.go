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

// SetRoyalty - set the split policy for future settlements
//
// only the owner at call time may set it; the policy is read again at
// settlement time, so a change made while a sale or auction is still
// open applies to that closing
func (s *Store) SetRoyalty(caller principal.Principal, assetId uint64, recipient principal.Principal, rateBps uint64) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return err
	}
	if recipient.IsNobody() {
		return fault.InvalidPrincipal
	}
	if rateBps > constants.RoyaltyRateDenominator {
		return fault.InvalidRoyaltyRate
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != caller {
		return fault.NotAssetOwner
	}

	entry.Royalty = royaltyPolicy{
		Recipient: recipient,
		RateBps:   rateBps,
	}
	s.save(assetId, entry)

	s.events.Record("royalty.set", assetId, caller, recipient, rateBps, s.clock.Now())
	return nil
}

// RoyaltyInfo - the split a sale at the given price would produce
func (s *Store) RoyaltyInfo(assetId uint64, salePrice uint64) (principal.Principal, uint64, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return principal.Nobody, 0, err
	}
	return entry.Royalty.Recipient, royaltyAmount(entry, salePrice), nil
}

// integer division floors, so recipient plus seller always sum to
// exactly the sale price; the price is split before multiplying so a
// price near the integer limit cannot wrap the product
func royaltyAmount(entry *assetEntry, salePrice uint64) uint64 {
	quotient := salePrice / constants.RoyaltyRateDenominator
	remainder := salePrice % constants.RoyaltyRateDenominator
	return quotient*entry.Royalty.RateBps + remainder*entry.Royalty.RateBps/constants.RoyaltyRateDenominator
}

// settle - split a payment and credit every party
//
// the recipient may be the seller itself when no distinct recipient
// was ever configured, a net-zero split with ordinary behaviour; any
// excess over the price goes back to the buyer
func (s *Store) settle(entry *assetEntry, seller principal.Principal, buyer principal.Principal, price uint64, paidAmount uint64) {
	royalty := royaltyAmount(entry, price)
	s.payments.Credit(entry.Royalty.Recipient, royalty)
	s.payments.Credit(seller, price-royalty)
	s.payments.Credit(buyer, paidAmount-price)
}
