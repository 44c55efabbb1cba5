// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/governance"
	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/registry"
)

const (
	rateLimitGovernance = 100
	rateBurstGovernance = 50
)

// Governance - role management and the pause switch
type Governance struct {
	Log     *logger.L
	Limiter *rate.Limiter
	roles   *governance.Roles
	store   *registry.Store
}

// NewGovernance - create the service
func NewGovernance(log *logger.L, dependencies *Dependencies) *Governance {
	return &Governance{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitGovernance, rateBurstGovernance),
		roles:   dependencies.Roles,
		store:   dependencies.Registry,
	}
}

// ---

// RoleArguments - one principal, acted on by the caller
type RoleArguments struct {
	Caller    string `json:"caller"`
	Principal string `json:"principal"`
}

// RoleReply - empty confirmation
type RoleReply struct {
}

func (g *Governance) parse(arguments *RoleArguments) (principal.Principal, principal.Principal, error) {
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return principal.Nobody, principal.Nobody, err
	}
	p, err := principal.FromString(arguments.Principal)
	if nil != err {
		return principal.Nobody, principal.Nobody, err
	}
	return caller, p, nil
}

// AddMinter - whitelist a principal for minting
func (g *Governance) AddMinter(arguments *RoleArguments, reply *RoleReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}
	caller, p, err := g.parse(arguments)
	if nil != err {
		return err
	}
	return g.roles.AddMinter(caller, p)
}

// RemoveMinter - drop a principal from the whitelist
func (g *Governance) RemoveMinter(arguments *RoleArguments, reply *RoleReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}
	caller, p, err := g.parse(arguments)
	if nil != err {
		return err
	}
	return g.roles.RemoveMinter(caller, p)
}

// Ban - exclude a principal from all interaction
func (g *Governance) Ban(arguments *RoleArguments, reply *RoleReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}
	caller, p, err := g.parse(arguments)
	if nil != err {
		return err
	}
	return g.roles.Ban(caller, p)
}

// Unban - readmit a banned principal
func (g *Governance) Unban(arguments *RoleArguments, reply *RoleReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}
	caller, p, err := g.parse(arguments)
	if nil != err {
		return err
	}
	return g.roles.Unban(caller, p)
}

// TransferAdministrator - hand the administrator role over
func (g *Governance) TransferAdministrator(arguments *RoleArguments, reply *RoleReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}
	caller, p, err := g.parse(arguments)
	if nil != err {
		return err
	}
	return g.roles.TransferAdministrator(caller, p)
}

// ---

// CoOwnerArguments - append to an asset's co-owner list
type CoOwnerArguments struct {
	Caller    string `json:"caller"`
	AssetId   uint64 `json:"assetId"`
	Principal string `json:"principal"`
}

// CoOwnerReply - empty confirmation
type CoOwnerReply struct {
}

// AddCoOwner - owner-only append to the co-owner list
func (g *Governance) AddCoOwner(arguments *CoOwnerArguments, reply *CoOwnerReply) error {
	if err := rateLimit(g.Limiter); nil != err {
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

	// ownership guard runs against the record store
	owner, err := g.store.OwnerOf(arguments.AssetId)
	if nil != err {
		return err
	}
	if owner != caller {
		return fault.NotAssetOwner
	}
	return g.roles.AddCoOwner(caller, arguments.AssetId, p)
}

// ---

// CoOwnersArguments - select one asset
type CoOwnersArguments struct {
	AssetId uint64 `json:"assetId"`
}

// CoOwnersReply - the co-owner list
type CoOwnersReply struct {
	CoOwners []string `json:"coOwners"`
}

// CoOwners - the co-owner list of an asset
func (g *Governance) CoOwners(arguments *CoOwnersArguments, reply *CoOwnersReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}
	list := g.roles.CoOwners(arguments.AssetId)
	coOwners := make([]string, len(list))
	for i, p := range list {
		coOwners[i] = p.String()
	}
	reply.CoOwners = coOwners
	return nil
}

// ---

// PauseArguments - the acting administrator
type PauseArguments struct {
	Caller string `json:"caller"`
}

// PauseReply - empty confirmation
type PauseReply struct {
}

// Pause - suspend every state-changing operation
func (g *Governance) Pause(arguments *PauseArguments, reply *PauseReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return g.roles.Pause(caller)
}

// Unpause - resume normal operation
func (g *Governance) Unpause(arguments *PauseArguments, reply *PauseReply) error {
	if err := rateLimit(g.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return g.roles.Unpause(caller)
}
