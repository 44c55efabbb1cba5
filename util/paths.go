// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a configured path against a base directory
//
// relative entries in the configuration file are taken relative to
// the data directory; absolute entries pass through untouched
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if the path names an existing file
//
// used to refuse overwriting generated certificates and keys
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
