// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// A single LevelDB database split into logical tables by prepending
// a single byte prefix to every key.  Each table is exposed as a
// pool handle; all of the record stores receive the handles they
// need explicitly and never open the database themselves.
package storage
