// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/counter"
	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/rpc/certificate"
	"github.com/bitmark-inc/orderd/rpc/listeners"
	"github.com/bitmark-inc/orderd/rpc/node"
	"github.com/bitmark-inc/orderd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener
	count    counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC listeners
//
// an empty certificate file name serves without TLS
func Initialise(configuration *listeners.RPCConfiguration, version string, settings node.Settings, h server.Handler, l server.Ledger) error {

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
		log.Infof("disable: %s", tlsName)
		globalData.initialised = true
		return nil
	}

	var tlsConfig *tls.Config
	if "" != configuration.Certificate {
		cer, key, err := certificate.ReadFiles(configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			log.Errorf("%s: certificate: %q  key: %q  error: %s", tlsName, configuration.Certificate, configuration.PrivateKey, err)
			return err
		}
		var fingerprint [32]byte
		tlsConfig, fingerprint, err = certificate.Get(log, tlsName, cer, key)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)
	}

	s, err := server.Create(log, version, settings, h, l, &globalData.count)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&globalData.count,
		s,
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Addresses - the bound listen addresses
func Addresses() []string {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.listener {
		return nil
	}
	return globalData.listener.Addresses()
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	if nil != globalData.listener {
		globalData.listener.Close()
		globalData.listener = nil
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
