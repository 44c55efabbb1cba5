// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - durable operation log
//
// Every successful state-changing operation appends one event record
// to the store.  Records carry a monotonic sequence number so an
// external observer can reconstruct ownership and payment history by
// replaying the log in order.  Recorded events are also offered to a
// buffered channel for live broadcast; a slow or absent consumer
// never blocks the operation that produced the event.
package event

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/principal"
	"github.com/bitmark-inc/registryd/storage"
)

// queuedEvents - size of the live broadcast buffer
const queuedEvents = 100

// Event - one durable operation record
type Event struct {
	Sequence  uint64              `json:"sequence"`
	Operation string              `json:"operation"`
	Asset     uint64              `json:"asset,omitempty"`
	From      principal.Principal `json:"from,omitempty"`
	To        principal.Principal `json:"to,omitempty"`
	Amount    uint64              `json:"amount,omitempty"`
	Timestamp int64               `json:"timestamp"`
}

// Recorder - appends events to the store and feeds the broadcaster
type Recorder struct {
	sync.Mutex
	log      *logger.L
	store    storage.Handle
	sequence uint64
	queue    chan Event
}

// NewRecorder - create a recorder over an event pool
//
// the next sequence number continues from the highest one on disk
func NewRecorder(store storage.Handle) *Recorder {
	r := &Recorder{
		log:   logger.New("event"),
		store: store,
		queue: make(chan Event, queuedEvents),
	}
	if key, _, found := store.LastElement(); found && 8 == len(key) {
		r.sequence = binary.BigEndian.Uint64(key)
	}
	return r
}

// Record - assign the next sequence number and persist the event
func (r *Recorder) Record(operation string, asset uint64, from principal.Principal, to principal.Principal, amount uint64, now time.Time) Event {
	r.Lock()
	defer r.Unlock()

	r.sequence += 1
	e := Event{
		Sequence:  r.sequence,
		Operation: operation,
		Asset:     asset,
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: now.Unix(),
	}

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, e.Sequence)
	data, err := json.Marshal(e)
	if nil != err {
		logger.Panicf("event: marshal error: %s", err)
	}
	r.store.Put(key, data)

	r.log.Infof("recorded: %s", data)

	// drop the event from the live feed if nobody is draining it
	select {
	case r.queue <- e:
	default:
		r.log.Warnf("queue full, event %d not broadcast", e.Sequence)
	}

	return e
}

// Queue - the live feed of recorded events
func (r *Recorder) Queue() <-chan Event {
	return r.queue
}

// Replay - read back stored events starting at a sequence number
//
// at most count events are returned; count of zero means no limit
func (r *Recorder) Replay(since uint64, count int) []Event {
	events := []Event{}
	r.store.Range(func(key []byte, value []byte) bool {
		if 8 != len(key) || binary.BigEndian.Uint64(key) < since {
			return true
		}
		var e Event
		if err := json.Unmarshal(value, &e); nil != err {
			r.log.Errorf("corrupt event record: %x: %s", key, err)
			return true
		}
		events = append(events, e)
		return count <= 0 || len(events) < count
	})
	return events
}
