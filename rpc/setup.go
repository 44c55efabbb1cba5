// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/event"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/governance"
	"github.com/bitmark-inc/registryd/metadata"
	"github.com/bitmark-inc/registryd/pay"
	"github.com/bitmark-inc/registryd/registry"
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Dependencies - the handles every service works through
type Dependencies struct {
	Registry *registry.Store
	Roles    *governance.Roles
	Metadata *metadata.Store
	Payments *pay.Ledger
	Events   *event.Recorder
	Start    time.Time
	Version  string
}

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener *listener.MultiListener

	// set once during initialise
	initialised bool
}

var globalData rpcData

// Initialise - start the client RPC server
func Initialise(configuration *Configuration, dependencies *Dependencies) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Listen) {
		log.Error("missing listen addresses")
		return fault.MissingParameters
	}
	if configuration.MaximumConnections <= 0 {
		log.Errorf("invalid maximum connections: %d", configuration.MaximumConnections)
		return fault.MissingParameters
	}

	tlsConfiguration, fingerprint, err := getCertificate(log, "client_rpc", configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("SHA3-256 fingerprint: %x", fingerprint)

	limiter := listener.NewLimiter(configuration.MaximumConnections)
	ml, err := listener.NewMultiListener("rpc", configuration.Listen, tlsConfiguration, limiter, Callback)
	if nil != err {
		log.Errorf("listener error: %s", err)
		return err
	}
	globalData.listener = ml

	argument := &serverArgument{
		Log:    log,
		Server: createServer(log, dependencies),
	}
	ml.Start(argument)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the RPC server
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
