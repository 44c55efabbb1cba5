// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/governance"
	"github.com/bitmark-inc/registryd/metadata"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/pay"
	"github.com/bitmark-inc/registryd/principal"
)

const (
	rateLimitNode = 100
	rateBurstNode = 50

	maximumEventCount = 100
)

// Node - daemon status and the event history
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	roles    *governance.Roles
	payments *pay.Ledger
	events   *event.Recorder
	views    *metadata.Store
	start    time.Time
	version  string
}

// NewNode - create the service
func NewNode(log *logger.L, dependencies *Dependencies) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		roles:    dependencies.Roles,
		payments: dependencies.Payments,
		events:   dependencies.Events,
		views:    dependencies.Metadata,
		start:    dependencies.Start,
		version:  dependencies.Version,
	}
}

// ---

// InfoArguments - empty
type InfoArguments struct {
}

// NodeInfoReply - daemon status snapshot
type NodeInfoReply struct {
	Version       string `json:"version"`
	Mode          string `json:"mode"`
	Administrator string `json:"administrator"`
	Connections   uint64 `json:"connections"`
	TotalViews    uint64 `json:"totalViews"`
	Uptime        string `json:"uptime"`
}

// Info - daemon status snapshot
func (n *Node) Info(arguments *InfoArguments, reply *NodeInfoReply) error {
	if err := rateLimit(n.Limiter); nil != err {
		return err
	}
	reply.Version = n.version
	reply.Mode = mode.String()
	reply.Administrator = n.roles.Administrator().String()
	reply.Connections = connectionCount.Uint64()
	reply.TotalViews = n.views.TotalViews()
	reply.Uptime = time.Since(n.start).String()
	return nil
}

// ---

// EventsArguments - replay a window of the event history
type EventsArguments struct {
	Since uint64 `json:"since"`
	Count int    `json:"count"`
}

// EventsReply - the replayed events
type EventsReply struct {
	Events []event.Event `json:"events"`
}

// Events - replay recorded events starting at a sequence number
func (n *Node) Events(arguments *EventsArguments, reply *EventsReply) error {
	count := arguments.Count
	if count <= 0 {
		count = maximumEventCount
	}
	if err := rateLimitN(n.Limiter, count, maximumEventCount); nil != err {
		return err
	}
	reply.Events = n.events.Replay(arguments.Since, count)
	return nil
}

// ---

// BalanceArguments - select one principal
type BalanceArguments struct {
	Principal string `json:"principal"`
}

// BalanceReply - credits awaiting settlement
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Balance - outbound credits awaiting settlement for a principal
func (n *Node) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := rateLimit(n.Limiter); nil != err {
		return err
	}
	p, err := principal.FromString(arguments.Principal)
	if nil != err {
		return err
	}
	reply.Balance = n.payments.Balance(p)
	return nil
}

// BalancesArguments - empty
type BalancesArguments struct {
}

// BalancesReply - every pending balance
type BalancesReply struct {
	Balances map[string]uint64 `json:"balances"`
}

// Balances - every pending balance in the payment ledger
func (n *Node) Balances(arguments *BalancesArguments, reply *BalancesReply) error {
	if err := rateLimit(n.Limiter); nil != err {
		return err
	}
	balances := make(map[string]uint64)
	for p, amount := range n.payments.Balances() {
		balances[p.String()] = amount
	}
	reply.Balances = balances
	return nil
}
