// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/principal"
)

// Comment - one free-text comment on an asset
type Comment struct {
	Author    principal.Principal `json:"author"`
	Text      string              `json:"text"`
	Timestamp int64               `json:"timestamp"`
}

// Feedback - one rating with an optional comment
type Feedback struct {
	Author    principal.Principal `json:"author"`
	Rating    uint64              `json:"rating"`
	Comment   string              `json:"comment,omitempty"`
	Timestamp int64               `json:"timestamp"`
}

// logEntry - one line of the per-asset update history
type logEntry struct {
	Actor     principal.Principal `json:"actor"`
	Action    string              `json:"action"`
	Timestamp int64               `json:"timestamp"`
}

// ratings run 1 to 5
const maximumRating = 5

// AddTag - attach a free-text tag; anyone may tag
func (s *Store) AddTag(caller principal.Principal, assetId uint64, tag string) error {
	s.Lock()
	defer s.Unlock()

	if "" == tag {
		return fault.MissingParameters
	}
	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return err
	}

	var tags []string
	s.getList(assetId, tagTags, &tags)
	for _, existing := range tags {
		if existing == tag {
			return nil
		}
	}
	tags = append(tags, tag)
	s.putList(assetId, tagTags, tags)
	return nil
}

// Tags - all tags on an asset, in insertion order
func (s *Store) Tags(assetId uint64) ([]string, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return nil, err
	}
	var tags []string
	s.getList(assetId, tagTags, &tags)
	return tags, nil
}

// AddComment - append a comment; anyone may comment
func (s *Store) AddComment(caller principal.Principal, assetId uint64, text string) error {
	s.Lock()
	defer s.Unlock()

	if "" == text {
		return fault.MissingParameters
	}
	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return err
	}

	var comments []Comment
	s.getList(assetId, tagComments, &comments)
	comments = append(comments, Comment{
		Author:    caller,
		Text:      text,
		Timestamp: s.clock.Now().Unix(),
	})
	s.putList(assetId, tagComments, comments)
	return nil
}

// Comments - all comments, oldest first
func (s *Store) Comments(assetId uint64) ([]Comment, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return nil, err
	}
	var comments []Comment
	s.getList(assetId, tagComments, &comments)
	return comments, nil
}

// AddFeedback - append a rating (1 to 5) with an optional comment
func (s *Store) AddFeedback(caller principal.Principal, assetId uint64, rating uint64, comment string) error {
	s.Lock()
	defer s.Unlock()

	if 0 == rating || rating > maximumRating {
		return fault.InvalidCount
	}
	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return err
	}

	var feedback []Feedback
	s.getList(assetId, tagFeedback, &feedback)
	feedback = append(feedback, Feedback{
		Author:    caller,
		Rating:    rating,
		Comment:   comment,
		Timestamp: s.clock.Now().Unix(),
	})
	s.putList(assetId, tagFeedback, feedback)
	return nil
}

// Feedbacks - all feedback entries, oldest first
func (s *Store) Feedbacks(assetId uint64) ([]Feedback, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return nil, err
	}
	var feedback []Feedback
	s.getList(assetId, tagFeedback, &feedback)
	return feedback, nil
}

// AverageRating - mean of all ratings in hundredths, zero if none
//
// integer hundredths avoid a float on the wire: 450 means 4.5 stars
func (s *Store) AverageRating(assetId uint64) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return 0, err
	}
	var feedback []Feedback
	s.getList(assetId, tagFeedback, &feedback)
	if 0 == len(feedback) {
		return 0, nil
	}
	total := uint64(0)
	for _, entry := range feedback {
		total += entry.Rating
	}
	return total * 100 / uint64(len(feedback)), nil
}

// RecordView - bump the per-asset readership counter
func (s *Store) RecordView(assetId uint64) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return 0, err
	}
	views, _ := s.store.GetN(recordKey(assetId, tagViews))
	views += 1
	s.store.PutN(recordKey(assetId, tagViews), views)
	s.viewCount.Increment()
	return views, nil
}

// Views - the per-asset readership count
func (s *Store) Views(assetId uint64) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return 0, err
	}
	views, _ := s.store.GetN(recordKey(assetId, tagViews))
	return views, nil
}

// TotalViews - views served since process start
func (s *Store) TotalViews() uint64 {
	return s.viewCount.Uint64()
}

// internal: append one line to the per-asset update history
//
// callers hold the store lock
func (s *Store) appendLog(assetId uint64, actor principal.Principal, action string) {
	var entries []logEntry
	s.getList(assetId, tagLogs, &entries)
	entries = append(entries, logEntry{
		Actor:     actor,
		Action:    action,
		Timestamp: s.clock.Now().Unix(),
	})
	s.putList(assetId, tagLogs, entries)
}

// UpdateLog - the per-asset update history as JSON
func (s *Store) UpdateLog(assetId uint64) ([]byte, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return nil, err
	}
	var entries []logEntry
	s.getList(assetId, tagLogs, &entries)
	data, err := json.Marshal(entries)
	if nil != err {
		logger.Panicf("metadata: marshal log for asset %d: %s", assetId, err)
	}
	return data, nil
}

// exportRecord - everything the bookkeeping knows about one asset
type exportRecord struct {
	AssetId     uint64     `json:"assetId"`
	MetadataURI string     `json:"metadataURI,omitempty"`
	DocumentURI string     `json:"documentURI,omitempty"`
	PreviewURI  string     `json:"previewURI,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Comments    []Comment  `json:"comments,omitempty"`
	Feedback    []Feedback `json:"feedback,omitempty"`
	Views       uint64     `json:"views"`
	Rating      uint64     `json:"averageRating"`
}

// Export - one JSON document with the full bookkeeping view
func (s *Store) Export(assetId uint64) ([]byte, error) {
	s.Lock()
	defer s.Unlock()

	if _, err := s.registry.OwnerOf(assetId); nil != err {
		return nil, err
	}

	record := exportRecord{
		AssetId:     assetId,
		MetadataURI: s.getString(assetId, tagMetadataURI),
		DocumentURI: s.getString(assetId, tagDocumentURI),
		PreviewURI:  s.getString(assetId, tagPreviewURI),
	}
	s.getList(assetId, tagTags, &record.Tags)
	s.getList(assetId, tagComments, &record.Comments)
	s.getList(assetId, tagFeedback, &record.Feedback)
	record.Views, _ = s.store.GetN(recordKey(assetId, tagViews))
	for _, entry := range record.Feedback {
		record.Rating += entry.Rating
	}
	if 0 != len(record.Feedback) {
		record.Rating = record.Rating * 100 / uint64(len(record.Feedback))
	}

	data, err := json.Marshal(record)
	if nil != err {
		logger.Panicf("metadata: marshal export for asset %d: %s", assetId, err)
	}
	return data, nil
}
