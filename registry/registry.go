// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/clock"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/governance"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/pay"
	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/storage"
)

// control pool key for the next dense asset identifier
const nextAssetKey = "next-asset-id"

// royaltyPolicy - per-asset split configuration
//
// read at settlement time, so changing it while a sale or auction is
// pending changes the split for that closing
type royaltyPolicy struct {
	Recipient principal.Principal `json:"recipient"`
	RateBps   uint64              `json:"rateBps"`
}

// auctionState - a live auction; a nil pointer means no auction
type auctionState struct {
	FloorBid      uint64              `json:"floorBid"`
	HighestBid    uint64              `json:"highestBid"`
	HighestBidder principal.Principal `json:"highestBidder,omitempty"`
	EndTime       int64               `json:"endTime"`
}

// listingState - a live fixed-price listing; nil means not for sale
type listingState struct {
	Price uint64 `json:"price"`
}

// loanState - at most one loan per asset; read-time overlay only
type loanState struct {
	Borrower   principal.Principal `json:"borrower"`
	ReturnTime int64               `json:"returnTime"`
}

// assetEntry - the full per-asset record
//
// a live auction and a live listing are mutually exclusive; the
// pointers make the combination impossible to persist by accident
// as each mutation nils the other side before saving
type assetEntry struct {
	Owner             principal.Principal            `json:"owner"`
	Expiry            int64                          `json:"expiry"`
	AccessLevels      map[principal.Principal]uint64 `json:"accessLevels"`
	SoldAtAuction     bool                           `json:"soldAtAuction,omitempty"`
	CertificateIssued bool                           `json:"certificateIssued,omitempty"`
	Royalty           royaltyPolicy                  `json:"royalty"`
	Auction           *auctionState                  `json:"auction,omitempty"`
	Listing           *listingState                  `json:"listing,omitempty"`
	Loan              *loanState                     `json:"loan,omitempty"`
	Members           []uint64                       `json:"members,omitempty"`
	MetadataURI       string                         `json:"metadataURI,omitempty"`
	DocumentURI       string                         `json:"documentURI,omitempty"`
}

// Store - the asset record store and the engines over it
//
// one mutex serialises every operation so no partially applied
// operation is ever observable; each operation samples the clock
// exactly once and runs all of its guards before its first mutation
type Store struct {
	sync.Mutex
	log      *logger.L
	assets   storage.Handle
	controls storage.Handle
	roles    *governance.Roles
	payments *pay.Ledger
	events   *event.Recorder
	clock    clock.Clock
}

// New - create the store over its explicit collaborator handles
func New(
	assets storage.Handle,
	controls storage.Handle,
	roles *governance.Roles,
	payments *pay.Ledger,
	events *event.Recorder,
	clk clock.Clock,
) *Store {
	return &Store{
		log:      logger.New("registry"),
		assets:   assets,
		controls: controls,
		roles:    roles,
		payments: payments,
		events:   events,
		clock:    clk,
	}
}

func assetKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}

// banned principals are rejected before any other guard; the pause
// switch blocks every state change in the core
func (s *Store) guard(caller principal.Principal) error {
	if s.roles.IsBanned(caller) {
		return fault.PrincipalBanned
	}
	if mode.Is(mode.Suspended) {
		return fault.RegistrySuspended
	}
	return nil
}

// read a record; revoked or never-assigned identifiers are absent
func (s *Store) fetch(assetId uint64) (*assetEntry, error) {
	data := s.assets.Get(assetKey(assetId))
	if nil == data {
		return nil, fault.AssetNotFound
	}
	entry := &assetEntry{}
	if err := json.Unmarshal(data, entry); nil != err {
		s.log.Criticalf("corrupt asset record %d: %s", assetId, err)
		return nil, fault.AssetNotFound
	}
	return entry, nil
}

func (s *Store) save(assetId uint64, entry *assetEntry) {
	data, err := json.Marshal(entry)
	if nil != err {
		logger.Panicf("registry: marshal asset %d: %s", assetId, err)
	}
	s.assets.Put(assetKey(assetId), data)
}

// assign the next dense zero-based asset identifier
//
// the counter lives in the control pool so revoking the newest asset
// can never cause an identifier to be reissued
func (s *Store) nextAssetId() uint64 {
	id, _ := s.controls.GetN([]byte(nextAssetKey))
	s.controls.PutN([]byte(nextAssetKey), id+1)
	return id
}
