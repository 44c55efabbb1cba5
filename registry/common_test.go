// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/governance"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/pay"
	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/storage"
)

const testingDirName = "testing"

var (
	admin = principal.Principal("admin")
	alice = principal.Principal("alice")
	bob   = principal.Principal("bob")
	carol = principal.Principal("carol")
)

// one currency unit in payment units
const unit = uint64(1000000)

// steppable clock so deadline behaviour is deterministic
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fixture struct {
	store    *registry.Store
	roles    *governance.Roles
	payments *pay.Ledger
	events   *event.Recorder
	clock    *stepClock
	teardown func()
}

func setup(t *testing.T) *fixture {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	_ = mode.Initialise()
	mode.Set(mode.Normal)

	dir, err := ioutil.TempDir("", "registry-test")
	if nil != err {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}

	clk := &stepClock{now: time.Unix(1500000000, 0)}
	events := event.NewRecorder(storage.Pool.Events)
	payments := pay.NewLedger(storage.Pool.Balances)
	roles := governance.New(storage.Pool.Roles, events, clk, admin)
	store := registry.New(storage.Pool.Assets, storage.Pool.Controls, roles, payments, events, clk)

	return &fixture{
		store:    store,
		roles:    roles,
		payments: payments,
		events:   events,
		clock:    clk,
		teardown: func() {
			storage.Finalise()
			os.RemoveAll(dir)
			os.RemoveAll(testingDirName)
		},
	}
}

// mint an asset owned by the given principal, one year of expiry
func (f *fixture) mint(t *testing.T, owner principal.Principal) uint64 {
	if !f.roles.CanMint(owner) {
		if err := f.roles.AddMinter(admin, owner); nil != err {
			t.Fatalf("add minter error: %s", err)
		}
	}
	expiry := f.clock.now.Add(365 * 24 * time.Hour).Unix()
	assetId, err := f.store.Create(owner, expiry, 1, "", "", 0)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	return assetId
}
