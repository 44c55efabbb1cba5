// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Handle - the interface as seen by the record stores
type Handle interface {
	Put(key []byte, value []byte)
	PutN(key []byte, value uint64)
	Delete(key []byte)
	Get(key []byte) []byte
	GetN(key []byte) (uint64, bool)
	Has(key []byte) bool
	Range(func(key []byte, value []byte) bool)
	LastElement() (key []byte, value []byte, found bool)
}

// PoolHandle - handle for a database table
type PoolHandle struct {
	prefix byte
	limit  []byte
	db     *leveldb.DB
}

// prefixKey - prepend the tag for the pool
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	err := p.db.Put(p.prefixKey(key), value, nil)
	logPanicIfError("pool: put", err)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	err := p.db.Delete(p.prefixKey(key), nil)
	logPanicIfError("pool: delete", err)
}

// Get - read a value for a given key
//
// this returns the actual element - or nil if the key does not exist
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logPanicIfError("pool: get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer || len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// PutN - write an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	value, err := p.db.Has(p.prefixKey(key), nil)
	logPanicIfError("pool: has", err)
	return value
}

// Range - iterate over all records in the pool, in key order
//
// the callback returns false to stop the scan early; the key passed
// to the callback has the pool prefix removed
func (p *PoolHandle) Range(f func(key []byte, value []byte) bool) {
	searchRange := &ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
	iter := p.db.NewIterator(searchRange, nil)
	defer iter.Release()

	for iter.Next() {
		key := make([]byte, len(iter.Key())-1)
		copy(key, iter.Key()[1:])
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		if !f(key, value) {
			break
		}
	}
	logPanicIfError("pool: range", iter.Error())
}

// LastElement - read the last element of the pool, e.g. the highest
// sequence number in use
func (p *PoolHandle) LastElement() (key []byte, value []byte, found bool) {
	searchRange := &ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
	iter := p.db.NewIterator(searchRange, nil)
	defer iter.Release()

	if !iter.Last() {
		return nil, nil, false
	}
	key = make([]byte, len(iter.Key())-1)
	copy(key, iter.Key()[1:])
	value = make([]byte, len(iter.Value()))
	copy(value, iter.Value())
	return key, value, true
}

// database is unusable after a read or write failure
func logPanicIfError(message string, err error) {
	if nil != err {
		panic(fmt.Sprintf("%s error: %s", message, err))
	}
}

func logPanic(format string, arguments ...interface{}) {
	panic(fmt.Sprintf(format, arguments...))
}
