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

// Bundle - mint a parent asset recording a group of assets
//
// the member list is preserved verbatim, duplicates and all; members
// are neither revoked nor locked and remain individually transferable,
// the bundle records composition only
func (s *Store) Bundle(caller principal.Principal, assetIds []uint64) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return 0, err
	}
	if 0 == len(assetIds) {
		return 0, fault.EmptyBundle
	}

	// parent expiry tracks the longest lived member
	expiry := int64(0)
	for _, memberId := range assetIds {
		member, err := s.fetch(memberId)
		if nil != err {
			return 0, err
		}
		if member.Owner != caller {
			return 0, fault.NotAssetOwner
		}
		if member.Expiry > expiry {
			expiry = member.Expiry
		}
	}

	assetId := s.nextAssetId()
	entry := &assetEntry{
		Owner:  caller,
		Expiry: expiry,
		AccessLevels: map[principal.Principal]uint64{
			caller: constants.DefaultAccessLevel,
		},
		Royalty: royaltyPolicy{
			Recipient: caller,
		},
		Members: append([]uint64(nil), assetIds...),
	}
	s.save(assetId, entry)

	s.events.Record("bundle", assetId, principal.Nobody, caller, uint64(len(assetIds)), s.clock.Now())
	return assetId, nil
}

// BundleOf - the member list of a bundle asset, in original order
//
// empty for an ordinary asset
func (s *Store) BundleOf(assetId uint64) ([]uint64, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return nil, err
	}
	return append([]uint64(nil), entry.Members...), nil
}
