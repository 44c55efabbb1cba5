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

// Info - external snapshot of one asset record
type Info struct {
	AssetId           uint64              `json:"assetId"`
	Owner             principal.Principal `json:"owner"`
	Expiry            int64               `json:"expiry"`
	SoldAtAuction     bool                `json:"soldAtAuction"`
	CertificateIssued bool                `json:"certificateIssued"`
	AuctionActive     bool                `json:"auctionActive"`
	Listed            bool                `json:"listed"`
	Price             uint64              `json:"price,omitempty"`
	HighestBid        uint64              `json:"highestBid,omitempty"`
	Members           []uint64            `json:"members,omitempty"`
	MetadataURI       string              `json:"metadataURI,omitempty"`
	DocumentURI       string              `json:"documentURI,omitempty"`
}

// Create - mint a new asset
//
// only the administrator and whitelisted minters may mint; the caller
// becomes the initial owner and the default royalty recipient
func (s *Store) Create(caller principal.Principal, expiry int64, initialAccessLevel uint64, metadataURI string, documentURI string, royaltyRate uint64) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(caller); nil != err {
		return 0, err
	}
	if !s.roles.CanMint(caller) {
		return 0, fault.NotAuthorised
	}
	if initialAccessLevel < constants.MinimumAccessLevel || initialAccessLevel > constants.MaximumAccessLevel {
		return 0, fault.InvalidAccessLevel
	}
	if royaltyRate > constants.RoyaltyRateDenominator {
		return 0, fault.InvalidRoyaltyRate
	}

	assetId := s.nextAssetId()
	entry := &assetEntry{
		Owner:  caller,
		Expiry: expiry,
		AccessLevels: map[principal.Principal]uint64{
			caller: initialAccessLevel,
		},
		Royalty: royaltyPolicy{
			Recipient: caller,
			RateBps:   royaltyRate,
		},
		MetadataURI: metadataURI,
		DocumentURI: documentURI,
	}
	s.save(assetId, entry)

	s.events.Record("create", assetId, principal.Nobody, caller, 0, s.clock.Now())
	s.log.Infof("create: asset %d owner %s", assetId, caller)
	return assetId, nil
}

// Transfer - move ownership from its current owner to another principal
//
// a listing never survives an ownership change through any path
func (s *Store) Transfer(assetId uint64, from principal.Principal, to principal.Principal) error {
	s.Lock()
	defer s.Unlock()

	if err := s.guard(from); nil != err {
		return err
	}
	if to.IsNobody() {
		return fault.InvalidPrincipal
	}
	entry, err := s.fetch(assetId)
	if nil != err {
		return err
	}
	if entry.Owner != from {
		return fault.NotAssetOwner
	}
	if nil != entry.Auction {
		return fault.AssetLocked
	}

	entry.Owner = to
	entry.Listing = nil
	s.save(assetId, entry)

	s.events.Record("transfer", assetId, from, to, 0, s.clock.Now())
	return nil
}

// Revoke - burn an asset record
//
// the identifier is never reissued and all subsequent reads fail
func (s *Store) Revoke(caller principal.Principal, assetId uint64) error {
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
	if nil != entry.Auction {
		return fault.AssetLocked
	}

	s.assets.Delete(assetKey(assetId))

	s.events.Record("revoke", assetId, caller, principal.Nobody, 0, s.clock.Now())
	return nil
}

// OwnerOf - the current owner of an asset
func (s *Store) OwnerOf(assetId uint64) (principal.Principal, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return principal.Nobody, err
	}
	return entry.Owner, nil
}

// AssetInfo - external snapshot of one asset
func (s *Store) AssetInfo(assetId uint64) (Info, error) {
	s.Lock()
	defer s.Unlock()

	entry, err := s.fetch(assetId)
	if nil != err {
		return Info{}, err
	}
	info := Info{
		AssetId:           assetId,
		Owner:             entry.Owner,
		Expiry:            entry.Expiry,
		SoldAtAuction:     entry.SoldAtAuction,
		CertificateIssued: entry.CertificateIssued,
		AuctionActive:     nil != entry.Auction,
		Listed:            nil != entry.Listing,
		Members:           append([]uint64(nil), entry.Members...),
		MetadataURI:       entry.MetadataURI,
		DocumentURI:       entry.DocumentURI,
	}
	if nil != entry.Listing {
		info.Price = entry.Listing.Price
	}
	if nil != entry.Auction {
		info.HighestBid = entry.Auction.HighestBid
	}
	return info, nil
}
