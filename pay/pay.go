// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pay - outbound payment ledger
//
// The registry never holds funds itself.  Every operation that moves
// money carries the paid amount with it; this ledger only accumulates
// the credits owed to each principal so sellers, creators and
// outbid bidders can be settled externally.  All amounts are in
// millionths of a currency unit.
package pay

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/storage"
)

// Ledger - accumulated credits per principal
type Ledger struct {
	sync.Mutex
	log   *logger.L
	store storage.Handle
}

// NewLedger - create a ledger over a balance pool
func NewLedger(store storage.Handle) *Ledger {
	return &Ledger{
		log:   logger.New("pay"),
		store: store,
	}
}

// Credit - add an amount owed to a principal
//
// a zero amount is dropped so the ledger only lists principals that
// are actually owed something
func (l *Ledger) Credit(p principal.Principal, amount uint64) {
	if 0 == amount || p.IsNobody() {
		return
	}

	l.Lock()
	defer l.Unlock()

	key := []byte(p)
	balance, _ := l.store.GetN(key)
	l.store.PutN(key, balance+amount)
	l.log.Infof("credit: %s += %d", p, amount)
}

// Balance - the total credit owed to a principal
func (l *Ledger) Balance(p principal.Principal) uint64 {
	l.Lock()
	defer l.Unlock()

	balance, _ := l.store.GetN([]byte(p))
	return balance
}

// Settle - clear a principal's balance, returning the amount cleared
//
// called after the owed amount has been paid out externally
func (l *Ledger) Settle(p principal.Principal) uint64 {
	l.Lock()
	defer l.Unlock()

	key := []byte(p)
	balance, found := l.store.GetN(key)
	if !found {
		return 0
	}
	l.store.Delete(key)
	l.log.Infof("settle: %s -= %d", p, balance)
	return balance
}

// Balances - snapshot of every outstanding credit
func (l *Ledger) Balances() map[principal.Principal]uint64 {
	l.Lock()
	defer l.Unlock()

	balances := make(map[principal.Principal]uint64)
	l.store.Range(func(key []byte, value []byte) bool {
		if 8 == len(value) {
			balances[principal.Principal(key)] = binary.BigEndian.Uint64(value)
		}
		return true
	})
	return balances
}
