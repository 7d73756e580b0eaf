// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept JSON RPC client connections
package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/counter"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a set of bound client sockets
type Listener interface {
	Serve() error
	Addresses() []string
	Close() error
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex

	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	listen         []util.Listen
	listeners      []net.Listener
	wg             sync.WaitGroup
}

// NewRPC - validate the configuration and create a listener
//
// a nil tlsConfig serves plain TCP
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ConnectionLimit
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		listen:         make([]util.Listen, 0, len(configuration.Listen)),
	}

	for _, address := range configuration.Listen {
		l, err := util.ParseListen(address)
		if nil != err {
			log.Errorf("invalid %s listen: %q  error: %s", logName, address, err)
			return nil, err
		}
		r.listen = append(r.listen, l)
	}

	if nil == tlsConfig {
		log.Warnf("%s: TLS is disabled", logName)
	}

	return r, nil
}

// Serve - bind all addresses and start accepting
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listen {
		r.log.Infof("starting RPC server: %s", l)

		var listener net.Listener
		var err error
		if nil == r.tlsConfig {
			listener, err = net.Listen(l.Network, l.Address)
		} else {
			listener, err = tls.Listen(l.Network, l.Address, r.tlsConfig)
		}
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, listener)

		r.wg.Add(1)
		go r.accept(listener)
	}
	return nil
}

// Addresses - the bound addresses
func (r *rpcListener) Addresses() []string {
	r.Lock()
	defer r.Unlock()

	addresses := make([]string, 0, len(r.listeners))
	for _, l := range r.listeners {
		addresses = append(addresses, l.Addr().String())
	}
	return addresses
}

// Close - stop accepting, open connections finish their current call
func (r *rpcListener) Close() error {
	r.Lock()
	r.closeAll()
	r.Unlock()

	r.wg.Wait()
	return nil
}

func (r *rpcListener) closeAll() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listener net.Listener) {
	defer r.wg.Done()

	for {
		conn, err := listener.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}

		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("connection limit reached, rejecting: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			r.count.Decrement()
		}()
	}
}
