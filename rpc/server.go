// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/counter"
)

// the argument passed to the callback
type serverArgument struct {
	Log    *logger.L
	Server *rpc.Server
}

var connectionCount counter.Counter

// Callback - handle one client connection
func Callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*serverArgument)

	log := serverArgument.Log
	log.Debug("connection opened")

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.Server.ServeCodec(codec)

	log.Debug("connection closed")
}

// build the service table
func createServer(log *logger.L, dependencies *Dependencies) *rpc.Server {
	server := rpc.NewServer()

	_ = server.Register(NewRegistry(log, dependencies))
	_ = server.Register(NewAuction(log, dependencies))
	_ = server.Register(NewMarket(log, dependencies))
	_ = server.Register(NewSubscription(log, dependencies))
	_ = server.Register(NewGovernance(log, dependencies))
	_ = server.Register(NewMetadata(log, dependencies))
	_ = server.Register(NewNode(log, dependencies))

	return server
}
