// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadata - descriptive bookkeeping around the asset records
//
// Plain key-value storage with no interesting invariants: descriptive
// and document pointers, translations, tags, comments, feedback,
// view counters, update logs and a JSON export of the lot.  Reads go
// through a small expiring cache; every write invalidates the cached
// view of its asset.
package metadata

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/registryd/clock"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/storage"
)

// record tags, appended to the 8 byte asset identifier
const (
	tagMetadataURI = "m"
	tagDocumentURI = "d"
	tagPreviewURI  = "p"
	tagHash        = "h"
	tagTags        = "t"
	tagComments    = "c"
	tagFeedback    = "f"
	tagLogs        = "l"
	tagViews       = "v"
	tagTranslation = "x"
)

const (
	cacheExpiry  = time.Minute
	cacheCleanup = 5 * time.Minute
)

// OwnerQuery - how the bookkeeping finds an asset's current owner
type OwnerQuery interface {
	OwnerOf(assetId uint64) (principal.Principal, error)
}

// Store - the bookkeeping store
type Store struct {
	sync.Mutex
	log       *logger.L
	store     storage.Handle
	cache     *gocache.Cache
	registry  OwnerQuery
	clock     clock.Clock
	viewCount counter.Counter
}

// New - create the bookkeeping store over its pool
func New(store storage.Handle, registry OwnerQuery, clk clock.Clock) *Store {
	return &Store{
		log:      logger.New("metadata"),
		store:    store,
		cache:    gocache.New(cacheExpiry, cacheCleanup),
		registry: registry,
		clock:    clk,
	}
}

func recordKey(assetId uint64, tag string) []byte {
	key := make([]byte, 8, 8+len(tag))
	binary.BigEndian.PutUint64(key, assetId)
	return append(key, tag...)
}

func cacheKey(assetId uint64, tag string) string {
	return fmt.Sprintf("%d/%s", assetId, tag)
}

// the owner-only writes all start here
func (s *Store) checkOwner(caller principal.Principal, assetId uint64) error {
	owner, err := s.registry.OwnerOf(assetId)
	if nil != err {
		return err
	}
	if owner != caller {
		return fault.NotAssetOwner
	}
	return nil
}

func (s *Store) getString(assetId uint64, tag string) string {
	if cached, ok := s.cache.Get(cacheKey(assetId, tag)); ok {
		return cached.(string)
	}
	value := string(s.store.Get(recordKey(assetId, tag)))
	s.cache.Set(cacheKey(assetId, tag), value, gocache.DefaultExpiration)
	return value
}

func (s *Store) putString(assetId uint64, tag string, value string) {
	s.store.Put(recordKey(assetId, tag), []byte(value))
	s.cache.Delete(cacheKey(assetId, tag))
}

// SetMetadataURI - owner-only update of the descriptive pointer
func (s *Store) SetMetadataURI(caller principal.Principal, assetId uint64, uri string) error {
	s.Lock()
	defer s.Unlock()

	if err := s.checkOwner(caller, assetId); nil != err {
		return err
	}
	s.putString(assetId, tagMetadataURI, uri)
	s.appendLog(assetId, caller, "metadata updated")
	return nil
}

// MetadataURI - the current descriptive pointer
func (s *Store) MetadataURI(assetId uint64) (string, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return "", err
	}
	return s.getString(assetId, tagMetadataURI), nil
}

// SetDocumentURI - owner-only update of the document pointer
func (s *Store) SetDocumentURI(caller principal.Principal, assetId uint64, uri string) error {
	s.Lock()
	defer s.Unlock()

	if err := s.checkOwner(caller, assetId); nil != err {
		return err
	}
	s.putString(assetId, tagDocumentURI, uri)
	s.appendLog(assetId, caller, "document updated")
	return nil
}

// DocumentURI - the current document pointer
func (s *Store) DocumentURI(assetId uint64) (string, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return "", err
	}
	return s.getString(assetId, tagDocumentURI), nil
}

// SetPreviewURI - owner-only update of the preview pointer
func (s *Store) SetPreviewURI(caller principal.Principal, assetId uint64, uri string) error {
	s.Lock()
	defer s.Unlock()

	if err := s.checkOwner(caller, assetId); nil != err {
		return err
	}
	s.putString(assetId, tagPreviewURI, uri)
	return nil
}

// PreviewURI - the preview pointer
func (s *Store) PreviewURI(assetId uint64) (string, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return "", err
	}
	return s.getString(assetId, tagPreviewURI), nil
}

// SetDocumentHash - owner-only record of the expected document digest
func (s *Store) SetDocumentHash(caller principal.Principal, assetId uint64, hash string) error {
	s.Lock()
	defer s.Unlock()

	if err := s.checkOwner(caller, assetId); nil != err {
		return err
	}
	s.putString(assetId, tagHash, hash)
	return nil
}

// VerifyDocumentHash - compare a digest against the recorded one
func (s *Store) VerifyDocumentHash(assetId uint64, hash string) (bool, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return false, err
	}
	stored := s.getString(assetId, tagHash)
	return "" != stored && stored == hash, nil
}

// SetTranslation - owner-only pointer to a translated rendition
func (s *Store) SetTranslation(caller principal.Principal, assetId uint64, language string, uri string) error {
	s.Lock()
	defer s.Unlock()

	if "" == language {
		return fault.MissingParameters
	}
	if err := s.checkOwner(caller, assetId); nil != err {
		return err
	}
	s.putString(assetId, tagTranslation+language, uri)
	s.appendLog(assetId, caller, "translation updated: "+language)
	return nil
}

// Translation - the translated rendition for a language, if any
func (s *Store) Translation(assetId uint64, language string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return "", err
	}
	return s.getString(assetId, tagTranslation+language), nil
}

// read a JSON list record, decoded into out (a pointer to a slice)
func (s *Store) getList(assetId uint64, tag string, out interface{}) {
	data := s.store.Get(recordKey(assetId, tag))
	if nil == data {
		return
	}
	if err := json.Unmarshal(data, out); nil != err {
		s.log.Errorf("corrupt %q record for asset %d: %s", tag, assetId, err)
	}
}

func (s *Store) putList(assetId uint64, tag string, list interface{}) {
	data, err := json.Marshal(list)
	if nil != err {
		logger.Panicf("metadata: marshal %q for asset %d: %s", tag, assetId, err)
	}
	s.store.Put(recordKey(assetId, tag), data)
	s.cache.Delete(cacheKey(assetId, tag))
}
