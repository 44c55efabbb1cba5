// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/configuration"
)

type testDatabase struct {
	Name string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	Administrator string       `gluamapper:"administrator"`
	Database      testDatabase `gluamapper:"database"`
	Listen        []string     `gluamapper:"listen"`
}

const luaFile = `
local M = {}

M.data_directory = "."
M.administrator = "7C5PtzWLyBrGyHaPww2nSPxTKxBZeUWB"

M.database = {
    name = "registry.leveldb",
}

M.listen = {
    "127.0.0.1:2130",
    "[::1]:2130",
}

return M
`

func TestParseConfigurationFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "registryd.conf")
	err = ioutil.WriteFile(fileName, []byte(luaFile), 0600)
	assert.NoError(t, err)

	options := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, options)
	assert.NoError(t, err)

	assert.Equal(t, ".", options.DataDirectory)
	assert.Equal(t, "7C5PtzWLyBrGyHaPww2nSPxTKxBZeUWB", options.Administrator)
	assert.Equal(t, "registry.leveldb", options.Database.Name)
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.Listen)
}

func TestParseConfigurationFileMissing(t *testing.T) {
	options := &testConfiguration{}
	err := configuration.ParseConfigurationFile("/nonexistent/registryd.conf", options)
	assert.Error(t, err)
}
