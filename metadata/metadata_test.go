// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/metadata"
	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/storage"
)

const testingDirName = "testing"

var (
	alice = principal.Principal("alice")
	bob   = principal.Principal("bob")
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

// fixed ownership table standing in for the registry
type ownerTable map[uint64]principal.Principal

func (o ownerTable) OwnerOf(assetId uint64) (principal.Principal, error) {
	owner, ok := o[assetId]
	if !ok {
		return principal.Nobody, fault.AssetNotFound
	}
	return owner, nil
}

func setup(t *testing.T) (*metadata.Store, func()) {
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

	dir, err := ioutil.TempDir("", "metadata-test")
	if nil != err {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}

	owners := ownerTable{1: alice, 2: bob}
	clk := &testClock{now: time.Unix(1500000000, 0)}
	store := metadata.New(storage.Pool.Bookkeeping, owners, clk)

	return store, func() {
		storage.Finalise()
		os.RemoveAll(dir)
		os.RemoveAll(testingDirName)
	}
}

func TestURIs(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	err := m.SetMetadataURI(bob, 1, "meta://new")
	assert.Equal(t, fault.NotAssetOwner, err, "non-owner updated metadata")

	err = m.SetMetadataURI(alice, 1, "meta://new")
	assert.Nil(t, err, "setMetadataURI error")
	err = m.SetDocumentURI(alice, 1, "doc://new")
	assert.Nil(t, err, "setDocumentURI error")
	err = m.SetPreviewURI(alice, 1, "preview://new")
	assert.Nil(t, err, "setPreviewURI error")

	uri, err := m.MetadataURI(1)
	assert.Nil(t, err, "metadataURI error")
	assert.Equal(t, "meta://new", uri, "metadata pointer")

	// reads are cached; an update must not serve the stale value
	err = m.SetMetadataURI(alice, 1, "meta://newer")
	assert.Nil(t, err, "setMetadataURI error")
	uri, _ = m.MetadataURI(1)
	assert.Equal(t, "meta://newer", uri, "stale cached pointer")

	_, err = m.MetadataURI(9999)
	assert.Equal(t, fault.AssetNotFound, err, "unknown asset read")
}

func TestDocumentHash(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	ok, err := m.VerifyDocumentHash(1, "abcd")
	assert.Nil(t, err, "verify error")
	assert.False(t, ok, "verified with no stored hash")

	err = m.SetDocumentHash(alice, 1, "abcd")
	assert.Nil(t, err, "setDocumentHash error")

	ok, _ = m.VerifyDocumentHash(1, "abcd")
	assert.True(t, ok, "matching hash rejected")
	ok, _ = m.VerifyDocumentHash(1, "ffff")
	assert.False(t, ok, "mismatched hash accepted")
}

func TestTranslations(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	err := m.SetTranslation(alice, 1, "", "meta://sv")
	assert.Equal(t, fault.MissingParameters, err, "empty language accepted")

	err = m.SetTranslation(alice, 1, "sv", "meta://sv")
	assert.Nil(t, err, "setTranslation error")
	err = m.SetTranslation(alice, 1, "ja", "meta://ja")
	assert.Nil(t, err, "setTranslation error")

	uri, err := m.Translation(1, "sv")
	assert.Nil(t, err, "translation error")
	assert.Equal(t, "meta://sv", uri, "translation pointer")

	uri, _ = m.Translation(1, "de")
	assert.Equal(t, "", uri, "missing translation")
}

func TestTags(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	err := m.AddTag(bob, 1, "art")
	assert.Nil(t, err, "addTag error")
	err = m.AddTag(alice, 1, "rare")
	assert.Nil(t, err, "addTag error")
	err = m.AddTag(bob, 1, "art")
	assert.Nil(t, err, "duplicate tag error")

	tags, err := m.Tags(1)
	assert.Nil(t, err, "tags error")
	assert.Equal(t, []string{"art", "rare"}, tags, "tag list")
}

func TestComments(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	err := m.AddComment(bob, 1, "")
	assert.Equal(t, fault.MissingParameters, err, "empty comment accepted")

	err = m.AddComment(bob, 1, "nice")
	assert.Nil(t, err, "addComment error")

	comments, err := m.Comments(1)
	assert.Nil(t, err, "comments error")
	assert.Equal(t, 1, len(comments), "comment count")
	assert.Equal(t, bob, comments[0].Author, "comment author")
	assert.Equal(t, "nice", comments[0].Text, "comment text")
	assert.Equal(t, int64(1500000000), comments[0].Timestamp, "comment timestamp")
}

func TestFeedback(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	err := m.AddFeedback(bob, 1, 0, "")
	assert.Equal(t, fault.InvalidCount, err, "zero rating accepted")
	err = m.AddFeedback(bob, 1, 6, "")
	assert.Equal(t, fault.InvalidCount, err, "rating above maximum accepted")

	rating, err := m.AverageRating(1)
	assert.Nil(t, err, "averageRating error")
	assert.Equal(t, uint64(0), rating, "rating with no feedback")

	err = m.AddFeedback(bob, 1, 4, "good")
	assert.Nil(t, err, "addFeedback error")
	err = m.AddFeedback(alice, 1, 5, "")
	assert.Nil(t, err, "addFeedback error")

	// (4+5)/2 = 4.5 stars = 450 hundredths
	rating, _ = m.AverageRating(1)
	assert.Equal(t, uint64(450), rating, "average rating")

	feedback, err := m.Feedbacks(1)
	assert.Nil(t, err, "feedbacks error")
	assert.Equal(t, 2, len(feedback), "feedback count")
}

func TestViews(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	views, err := m.Views(1)
	assert.Nil(t, err, "views error")
	assert.Equal(t, uint64(0), views, "views before any")

	views, err = m.RecordView(1)
	assert.Nil(t, err, "recordView error")
	assert.Equal(t, uint64(1), views, "views after first")

	_, err = m.RecordView(2)
	assert.Nil(t, err, "recordView error")
	views, _ = m.RecordView(1)
	assert.Equal(t, uint64(2), views, "views after second")

	assert.Equal(t, uint64(3), m.TotalViews(), "process total views")
}

func TestUpdateLog(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	err := m.SetMetadataURI(alice, 1, "meta://new")
	assert.Nil(t, err, "setMetadataURI error")
	err = m.SetTranslation(alice, 1, "sv", "meta://sv")
	assert.Nil(t, err, "setTranslation error")

	data, err := m.UpdateLog(1)
	assert.Nil(t, err, "updateLog error")

	var entries []map[string]interface{}
	err = json.Unmarshal(data, &entries)
	assert.Nil(t, err, "log decode error")
	assert.Equal(t, 2, len(entries), "log entry count")
	assert.Equal(t, "metadata updated", entries[0]["action"], "first log action")
}

func TestExport(t *testing.T) {
	m, teardown := setup(t)
	defer teardown()

	err := m.SetMetadataURI(alice, 1, "meta://1")
	assert.Nil(t, err, "setMetadataURI error")
	err = m.AddTag(bob, 1, "art")
	assert.Nil(t, err, "addTag error")
	err = m.AddFeedback(bob, 1, 5, "")
	assert.Nil(t, err, "addFeedback error")
	_, err = m.RecordView(1)
	assert.Nil(t, err, "recordView error")

	data, err := m.Export(1)
	assert.Nil(t, err, "export error")

	var record map[string]interface{}
	err = json.Unmarshal(data, &record)
	assert.Nil(t, err, "export decode error")
	assert.Equal(t, "meta://1", record["metadataURI"], "exported pointer")
	assert.Equal(t, float64(1), record["views"], "exported views")
	assert.Equal(t, float64(500), record["averageRating"], "exported rating")
}
