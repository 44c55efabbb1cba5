// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package governance - privileged principals and the pause switch
//
// A single transferable administrator, a whitelist of minters, a set
// of banned principals and a per-asset co-owner list.  The record
// stores consult these as guards; only the administrator can change
// them.  The administrator can also suspend the whole registry, after
// which every state-changing operation is rejected until unpause.
package governance

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/clock"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/storage"
)

// store key layout
const (
	administratorKey = "administrator"
	minterPrefix     = byte('M')
	bannedPrefix     = byte('B')
	coOwnerPrefix    = byte('C')
)

// Roles - the privileged principal sets
type Roles struct {
	sync.RWMutex
	log           *logger.L
	store         storage.Handle
	events        *event.Recorder
	clock         clock.Clock
	administrator principal.Principal
	minters       map[principal.Principal]struct{}
	banned        map[principal.Principal]struct{}
}

// New - load the role sets from the store
//
// the supplied administrator is only used when the store holds none,
// i.e. on the very first start
func New(store storage.Handle, events *event.Recorder, clk clock.Clock, administrator principal.Principal) *Roles {
	r := &Roles{
		log:     logger.New("governance"),
		store:   store,
		events:  events,
		clock:   clk,
		minters: make(map[principal.Principal]struct{}),
		banned:  make(map[principal.Principal]struct{}),
	}

	if stored := store.Get([]byte(administratorKey)); nil != stored {
		r.administrator = principal.Principal(stored)
	} else {
		r.administrator = administrator
		store.Put([]byte(administratorKey), []byte(administrator))
	}

	store.Range(func(key []byte, value []byte) bool {
		if len(key) < 2 {
			return true
		}
		switch key[0] {
		case minterPrefix:
			r.minters[principal.Principal(key[1:])] = struct{}{}
		case bannedPrefix:
			r.banned[principal.Principal(key[1:])] = struct{}{}
		}
		return true
	})

	r.log.Infof("administrator: %s  minters: %d  banned: %d",
		r.administrator, len(r.minters), len(r.banned))
	return r
}

func principalKey(prefix byte, p principal.Principal) []byte {
	key := make([]byte, 1, len(p)+1)
	key[0] = prefix
	return append(key, p...)
}

func assetKey(assetId uint64) []byte {
	key := make([]byte, 9)
	key[0] = coOwnerPrefix
	binary.BigEndian.PutUint64(key[1:], assetId)
	return key
}

// all privileged operations share the same precondition
func (r *Roles) authorise(caller principal.Principal) error {
	if mode.Is(mode.Suspended) {
		return fault.RegistrySuspended
	}
	if r.administrator != caller {
		return fault.NotAuthorised
	}
	return nil
}

// Administrator - the current administrator
func (r *Roles) Administrator() principal.Principal {
	r.RLock()
	defer r.RUnlock()
	return r.administrator
}

// IsAdministrator - check the administrator role
func (r *Roles) IsAdministrator(p principal.Principal) bool {
	r.RLock()
	defer r.RUnlock()
	return r.administrator == p
}

// IsMinter - check the minter whitelist
func (r *Roles) IsMinter(p principal.Principal) bool {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.minters[p]
	return ok
}

// IsBanned - check the banned set
func (r *Roles) IsBanned(p principal.Principal) bool {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.banned[p]
	return ok
}

// CanMint - administrators and whitelisted minters may create assets
func (r *Roles) CanMint(p principal.Principal) bool {
	r.RLock()
	defer r.RUnlock()
	if _, banned := r.banned[p]; banned {
		return false
	}
	if r.administrator == p {
		return true
	}
	_, ok := r.minters[p]
	return ok
}

// TransferAdministrator - hand the administrator role to another principal
func (r *Roles) TransferAdministrator(caller principal.Principal, to principal.Principal) error {
	r.Lock()
	defer r.Unlock()

	if err := r.authorise(caller); nil != err {
		return err
	}
	if to.IsNobody() {
		return fault.InvalidPrincipal
	}

	r.administrator = to
	r.store.Put([]byte(administratorKey), []byte(to))
	r.events.Record("administrator.transfer", 0, caller, to, 0, r.clock.Now())
	return nil
}

// AddMinter - whitelist a principal for asset creation
func (r *Roles) AddMinter(caller principal.Principal, p principal.Principal) error {
	r.Lock()
	defer r.Unlock()

	if err := r.authorise(caller); nil != err {
		return err
	}
	if p.IsNobody() {
		return fault.InvalidPrincipal
	}
	if _, ok := r.minters[p]; ok {
		return nil
	}

	r.minters[p] = struct{}{}
	r.store.Put(principalKey(minterPrefix, p), []byte{})
	r.events.Record("minter.add", 0, caller, p, 0, r.clock.Now())
	return nil
}

// RemoveMinter - drop a principal from the minter whitelist
func (r *Roles) RemoveMinter(caller principal.Principal, p principal.Principal) error {
	r.Lock()
	defer r.Unlock()

	if err := r.authorise(caller); nil != err {
		return err
	}
	if _, ok := r.minters[p]; !ok {
		return nil
	}

	delete(r.minters, p)
	r.store.Delete(principalKey(minterPrefix, p))
	r.events.Record("minter.remove", 0, caller, p, 0, r.clock.Now())
	return nil
}

// Ban - exclude a principal from all interaction
func (r *Roles) Ban(caller principal.Principal, p principal.Principal) error {
	r.Lock()
	defer r.Unlock()

	if err := r.authorise(caller); nil != err {
		return err
	}
	if p.IsNobody() {
		return fault.InvalidPrincipal
	}
	if _, ok := r.banned[p]; ok {
		return nil
	}

	r.banned[p] = struct{}{}
	r.store.Put(principalKey(bannedPrefix, p), []byte{})
	r.events.Record("ban", 0, caller, p, 0, r.clock.Now())
	return nil
}

// Unban - readmit a banned principal
func (r *Roles) Unban(caller principal.Principal, p principal.Principal) error {
	r.Lock()
	defer r.Unlock()

	if err := r.authorise(caller); nil != err {
		return err
	}
	if _, ok := r.banned[p]; !ok {
		return nil
	}

	delete(r.banned, p)
	r.store.Delete(principalKey(bannedPrefix, p))
	r.events.Record("unban", 0, caller, p, 0, r.clock.Now())
	return nil
}

// AddCoOwner - append a principal to an asset's co-owner list
//
// ownership of the asset has already been checked by the caller; the
// list is append-only and co-owners gain no transfer rights
func (r *Roles) AddCoOwner(owner principal.Principal, assetId uint64, p principal.Principal) error {
	r.Lock()
	defer r.Unlock()

	if mode.Is(mode.Suspended) {
		return fault.RegistrySuspended
	}
	if p.IsNobody() {
		return fault.InvalidPrincipal
	}

	list := r.coOwners(assetId)
	for _, c := range list {
		if c == p {
			return nil
		}
	}
	list = append(list, p)

	data, err := json.Marshal(list)
	if nil != err {
		logger.Panicf("governance: marshal error: %s", err)
	}
	r.store.Put(assetKey(assetId), data)
	r.events.Record("coowner.add", assetId, owner, p, 0, r.clock.Now())
	return nil
}

// CoOwners - the co-owner list of an asset, in insertion order
func (r *Roles) CoOwners(assetId uint64) []principal.Principal {
	r.RLock()
	defer r.RUnlock()
	return r.coOwners(assetId)
}

func (r *Roles) coOwners(assetId uint64) []principal.Principal {
	data := r.store.Get(assetKey(assetId))
	if nil == data {
		return nil
	}
	var list []principal.Principal
	if err := json.Unmarshal(data, &list); nil != err {
		r.log.Errorf("corrupt co-owner record for asset %d: %s", assetId, err)
		return nil
	}
	return list
}

// IsCoOwner - check an asset's co-owner list
func (r *Roles) IsCoOwner(assetId uint64, p principal.Principal) bool {
	r.RLock()
	defer r.RUnlock()
	for _, c := range r.coOwners(assetId) {
		if c == p {
			return true
		}
	}
	return false
}

// Pause - suspend every state-changing operation
func (r *Roles) Pause(caller principal.Principal) error {
	r.Lock()
	defer r.Unlock()

	if err := r.authorise(caller); nil != err {
		return err
	}

	mode.Set(mode.Suspended)
	r.events.Record("pause", 0, caller, principal.Nobody, 0, r.clock.Now())
	return nil
}

// Unpause - resume normal operation
//
// the one state change that is allowed while suspended
func (r *Roles) Unpause(caller principal.Principal) error {
	r.Lock()
	defer r.Unlock()

	if r.administrator != caller {
		return fault.NotAuthorised
	}

	mode.Set(mode.Normal)
	r.events.Record("unpause", 0, caller, principal.Nobody, 0, r.clock.Now())
	return nil
}
