// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/metadata"
	"github.com/bitmark-inc/registryd/principal"
)

const (
	rateLimitMetadata = 200
	rateBurstMetadata = 100
)

// Metadata - descriptive data, social records and view counts
type Metadata struct {
	Log     *logger.L
	Limiter *rate.Limiter
	store   *metadata.Store
}

// NewMetadata - create the service
func NewMetadata(log *logger.L, dependencies *Dependencies) *Metadata {
	return &Metadata{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMetadata, rateBurstMetadata),
		store:   dependencies.Metadata,
	}
}

// ---

// URIArguments - owner-only setter of one URI field
type URIArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	URI     string `json:"uri"`
}

// URIReply - empty confirmation
type URIReply struct {
}

// SetMetadataURI - point the asset at its off-registry metadata
func (m *Metadata) SetMetadataURI(arguments *URIArguments, reply *URIReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.SetMetadataURI(caller, arguments.AssetId, arguments.URI)
}

// SetDocumentURI - point the asset at its document
func (m *Metadata) SetDocumentURI(arguments *URIArguments, reply *URIReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.SetDocumentURI(caller, arguments.AssetId, arguments.URI)
}

// SetPreviewURI - point the asset at a preview rendition
func (m *Metadata) SetPreviewURI(arguments *URIArguments, reply *URIReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.SetPreviewURI(caller, arguments.AssetId, arguments.URI)
}

// ---

// MetadataArguments - select one asset
type MetadataArguments struct {
	AssetId uint64 `json:"assetId"`
}

// URIsReply - all stored URI fields
type URIsReply struct {
	MetadataURI string `json:"metadataURI"`
	DocumentURI string `json:"documentURI"`
	PreviewURI  string `json:"previewURI"`
}

// URIs - all stored URI fields in one call
func (m *Metadata) URIs(arguments *MetadataArguments, reply *URIsReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	metadataURI, err := m.store.MetadataURI(arguments.AssetId)
	if nil != err {
		return err
	}
	documentURI, err := m.store.DocumentURI(arguments.AssetId)
	if nil != err {
		return err
	}
	previewURI, err := m.store.PreviewURI(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.MetadataURI = metadataURI
	reply.DocumentURI = documentURI
	reply.PreviewURI = previewURI
	return nil
}

// ---

// HashArguments - record or check the document digest
type HashArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Hash    string `json:"hash"`
}

// HashReply - verification result
type HashReply struct {
	Matches bool `json:"matches"`
}

// SetDocumentHash - record the document digest
func (m *Metadata) SetDocumentHash(arguments *HashArguments, reply *HashReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.SetDocumentHash(caller, arguments.AssetId, arguments.Hash)
}

// VerifyDocumentHash - check a digest against the recorded one
func (m *Metadata) VerifyDocumentHash(arguments *HashArguments, reply *HashReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	matches, err := m.store.VerifyDocumentHash(arguments.AssetId, arguments.Hash)
	if nil != err {
		return err
	}
	reply.Matches = matches
	return nil
}

// ---

// TranslationArguments - per-language metadata URI
type TranslationArguments struct {
	Caller   string `json:"caller"`
	AssetId  uint64 `json:"assetId"`
	Language string `json:"language"`
	URI      string `json:"uri"`
}

// TranslationReply - the stored URI for a language
type TranslationReply struct {
	URI string `json:"uri"`
}

// SetTranslation - store a per-language metadata URI
func (m *Metadata) SetTranslation(arguments *TranslationArguments, reply *TranslationReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.SetTranslation(caller, arguments.AssetId, arguments.Language, arguments.URI)
}

// Translation - the stored URI for a language
func (m *Metadata) Translation(arguments *TranslationArguments, reply *TranslationReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	uri, err := m.store.Translation(arguments.AssetId, arguments.Language)
	if nil != err {
		return err
	}
	reply.URI = uri
	return nil
}

// ---

// TagArguments - append a search tag
type TagArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Tag     string `json:"tag"`
}

// TagReply - empty confirmation
type TagReply struct {
}

// AddTag - append a search tag
func (m *Metadata) AddTag(arguments *TagArguments, reply *TagReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.AddTag(caller, arguments.AssetId, arguments.Tag)
}

// TagsReply - all tags of an asset
type TagsReply struct {
	Tags []string `json:"tags"`
}

// Tags - all tags of an asset
func (m *Metadata) Tags(arguments *MetadataArguments, reply *TagsReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	tags, err := m.store.Tags(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Tags = tags
	return nil
}

// ---

// CommentArguments - append a comment
type CommentArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Text    string `json:"text"`
}

// CommentReply - empty confirmation
type CommentReply struct {
}

// AddComment - append a comment
func (m *Metadata) AddComment(arguments *CommentArguments, reply *CommentReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.AddComment(caller, arguments.AssetId, arguments.Text)
}

// CommentsReply - all comments on an asset
type CommentsReply struct {
	Comments []metadata.Comment `json:"comments"`
}

// Comments - all comments on an asset
func (m *Metadata) Comments(arguments *MetadataArguments, reply *CommentsReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	comments, err := m.store.Comments(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Comments = comments
	return nil
}

// ---

// FeedbackArguments - append a rating with optional comment
type FeedbackArguments struct {
	Caller  string `json:"caller"`
	AssetId uint64 `json:"assetId"`
	Rating  uint64 `json:"rating"`
	Comment string `json:"comment"`
}

// FeedbackReply - empty confirmation
type FeedbackReply struct {
}

// AddFeedback - append a 1 to 5 star rating
func (m *Metadata) AddFeedback(arguments *FeedbackArguments, reply *FeedbackReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	caller, err := principal.FromString(arguments.Caller)
	if nil != err {
		return err
	}
	return m.store.AddFeedback(caller, arguments.AssetId, arguments.Rating, arguments.Comment)
}

// RatingReply - feedback summary
type RatingReply struct {
	Feedbacks []metadata.Feedback `json:"feedbacks"`
	Average   uint64              `json:"average"`
}

// Rating - all feedback entries and the average in hundredths of a star
func (m *Metadata) Rating(arguments *MetadataArguments, reply *RatingReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	feedbacks, err := m.store.Feedbacks(arguments.AssetId)
	if nil != err {
		return err
	}
	average, err := m.store.AverageRating(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Feedbacks = feedbacks
	reply.Average = average
	return nil
}

// ---

// ViewReply - the view count after recording
type ViewReply struct {
	Views uint64 `json:"views"`
}

// RecordView - bump and return the view count
func (m *Metadata) RecordView(arguments *MetadataArguments, reply *ViewReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	views, err := m.store.RecordView(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Views = views
	return nil
}

// Views - the current view count
func (m *Metadata) Views(arguments *MetadataArguments, reply *ViewReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	views, err := m.store.Views(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Views = views
	return nil
}

// ---

// LogReply - the update log entries
type LogReply struct {
	Log json.RawMessage `json:"log"`
}

// UpdateLog - who changed what, in order
func (m *Metadata) UpdateLog(arguments *MetadataArguments, reply *LogReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	data, err := m.store.UpdateLog(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Log = data
	return nil
}

// ExportReply - the full metadata document
type ExportReply struct {
	Record json.RawMessage `json:"record"`
}

// Export - the full metadata document as one JSON record
func (m *Metadata) Export(arguments *MetadataArguments, reply *ExportReply) error {
	if err := rateLimit(m.Limiter); nil != err {
		return err
	}
	data, err := m.store.Export(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Record = data
	return nil
}
