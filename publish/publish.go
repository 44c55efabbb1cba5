// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - live event broadcast
//
// Every recorded event goes out on a ZeroMQ PUB socket as a two part
// message: the operation name as the subscription topic, then the
// JSON event record.  Subscribers filter by operation name.
package publish

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/registryd/background"
	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

type publishData struct {
	sync.RWMutex

	log    *logger.L
	socket *zmq.Socket
	queue  <-chan event.Event

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

var globalData publishData

// Initialise - bind the broadcast socket and start the publisher
//
// with no broadcast addresses configured the publisher is disabled
func Initialise(configuration *Configuration, queue <-chan event.Event) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses, publisher disabled")
		globalData.initialised = true
		return nil
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return err
	}
	_ = socket.SetLinger(0)
	for _, address := range configuration.Broadcast {
		globalData.log.Infof("bind: %s", address)
		if err := socket.Bind(address); nil != err {
			globalData.log.Errorf("bind: %s  error: %s", address, err)
			socket.Close()
			return err
		}
	}
	globalData.socket = socket
	globalData.queue = queue

	globalData.initialised = true

	globalData.log.Info("start background…")
	processes := background.Processes{
		&publisher{},
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop the publisher and close the socket
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	if nil != globalData.socket {
		globalData.socket.Close()
		globalData.socket = nil
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// the background broadcaster
type publisher struct{}

func (p *publisher) Run(args interface{}, shutdown <-chan struct{}) {
	log := globalData.log

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case e := <-globalData.queue:
			data, err := json.Marshal(e)
			if nil != err {
				log.Errorf("marshal event %d: %s", e.Sequence, err)
				continue loop
			}
			log.Debugf("broadcast: %s %s", e.Operation, data)
			if _, err := globalData.socket.SendMessage(e.Operation, data); nil != err {
				log.Errorf("broadcast: %s  error: %s", e.Operation, err)
			}
		}
	}
	log.Info("publisher stopped")
}
