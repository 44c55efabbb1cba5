// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/governance"
	"github.com/bitmark-inc/registryd/mode"
	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/storage"
)

const testingDirName = "testing"

var (
	admin = principal.Principal("admin")
	alice = principal.Principal("alice")
	bob   = principal.Principal("bob")
)

// fixed clock, sufficient for role operations
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func setup(t *testing.T) (*governance.Roles, func()) {
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

	dir, err := ioutil.TempDir("", "governance-test")
	if nil != err {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}

	events := event.NewRecorder(storage.Pool.Events)
	clk := &testClock{now: time.Unix(1000000, 0)}
	roles := governance.New(storage.Pool.Roles, events, clk, admin)

	return roles, func() {
		storage.Finalise()
		os.RemoveAll(dir)
		os.RemoveAll(testingDirName)
	}
}

func TestAdministrator(t *testing.T) {
	roles, teardown := setup(t)
	defer teardown()

	assert.Equal(t, admin, roles.Administrator(), "initial administrator")
	assert.True(t, roles.IsAdministrator(admin), "administrator role")
	assert.False(t, roles.IsAdministrator(alice), "non-administrator role")

	err := roles.TransferAdministrator(alice, bob)
	assert.Equal(t, fault.NotAuthorised, err, "non-administrator transferred role")

	err = roles.TransferAdministrator(admin, alice)
	assert.Nil(t, err, "administrator transfer error")
	assert.Equal(t, alice, roles.Administrator(), "administrator after transfer")
	assert.False(t, roles.IsAdministrator(admin), "old administrator keeps role")
}

func TestMinters(t *testing.T) {
	roles, teardown := setup(t)
	defer teardown()

	assert.False(t, roles.IsMinter(alice), "unlisted minter")
	assert.True(t, roles.CanMint(admin), "administrator cannot mint")
	assert.False(t, roles.CanMint(alice), "unlisted principal can mint")

	err := roles.AddMinter(alice, bob)
	assert.Equal(t, fault.NotAuthorised, err, "non-administrator added minter")

	err = roles.AddMinter(admin, alice)
	assert.Nil(t, err, "add minter error")
	assert.True(t, roles.IsMinter(alice), "minter after add")
	assert.True(t, roles.CanMint(alice), "minter cannot mint")

	err = roles.RemoveMinter(admin, alice)
	assert.Nil(t, err, "remove minter error")
	assert.False(t, roles.IsMinter(alice), "minter after remove")
}

func TestBanned(t *testing.T) {
	roles, teardown := setup(t)
	defer teardown()

	err := roles.AddMinter(admin, alice)
	assert.Nil(t, err, "add minter error")

	err = roles.Ban(admin, alice)
	assert.Nil(t, err, "ban error")
	assert.True(t, roles.IsBanned(alice), "banned after ban")
	assert.False(t, roles.CanMint(alice), "banned minter can mint")

	err = roles.Unban(admin, alice)
	assert.Nil(t, err, "unban error")
	assert.False(t, roles.IsBanned(alice), "banned after unban")
	assert.True(t, roles.CanMint(alice), "unbanned minter cannot mint")
}

func TestCoOwners(t *testing.T) {
	roles, teardown := setup(t)
	defer teardown()

	assert.Nil(t, roles.CoOwners(1), "co-owners of fresh asset")
	assert.False(t, roles.IsCoOwner(1, bob), "co-owner before add")

	err := roles.AddCoOwner(alice, 1, bob)
	assert.Nil(t, err, "add co-owner error")
	err = roles.AddCoOwner(alice, 1, bob)
	assert.Nil(t, err, "duplicate co-owner error")

	assert.Equal(t, []principal.Principal{bob}, roles.CoOwners(1), "co-owner list")
	assert.True(t, roles.IsCoOwner(1, bob), "co-owner after add")
	assert.False(t, roles.IsCoOwner(2, bob), "co-owner of different asset")
}

func TestPause(t *testing.T) {
	roles, teardown := setup(t)
	defer teardown()

	err := roles.Pause(alice)
	assert.Equal(t, fault.NotAuthorised, err, "non-administrator paused")

	err = roles.Pause(admin)
	assert.Nil(t, err, "pause error")
	assert.True(t, mode.Is(mode.Suspended), "mode after pause")

	// every privileged change is rejected while suspended
	err = roles.AddMinter(admin, alice)
	assert.Equal(t, fault.RegistrySuspended, err, "minter added while suspended")
	err = roles.Pause(admin)
	assert.Equal(t, fault.RegistrySuspended, err, "second pause while suspended")

	// except unpause itself
	err = roles.Unpause(alice)
	assert.Equal(t, fault.NotAuthorised, err, "non-administrator unpaused")
	err = roles.Unpause(admin)
	assert.Nil(t, err, "unpause error")
	assert.True(t, mode.Is(mode.Normal), "mode after unpause")
}

func TestReload(t *testing.T) {
	roles, teardown := setup(t)
	defer teardown()

	err := roles.TransferAdministrator(admin, alice)
	assert.Nil(t, err, "administrator transfer error")
	err = roles.AddMinter(alice, bob)
	assert.Nil(t, err, "add minter error")
	err = roles.Ban(alice, admin)
	assert.Nil(t, err, "ban error")

	// a second load over the same pool sees the persisted state
	events := event.NewRecorder(storage.Pool.Events)
	clk := &testClock{now: time.Unix(2000000, 0)}
	reloaded := governance.New(storage.Pool.Roles, events, clk, admin)

	assert.Equal(t, alice, reloaded.Administrator(), "administrator after reload")
	assert.True(t, reloaded.IsMinter(bob), "minter after reload")
	assert.True(t, reloaded.IsBanned(admin), "banned after reload")
}
