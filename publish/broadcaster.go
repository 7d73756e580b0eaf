// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderd/fault"
	"github.com/bitmark-inc/orderd/messagebus"
	"github.com/bitmark-inc/orderd/util"
)

const (
	broadcasterZapDomain = "broadcaster"
	listenerQueueSize    = 1000
)

// Configuration - publishing section of the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// Broadcaster - sends bus messages to PUB sockets
type Broadcaster struct {
	log     *logger.L
	bus     *messagebus.BroadcastQueue
	queue   <-chan messagebus.Message
	sockets []*zmq.Socket
}

// New - bind the PUB sockets and start listening to the bus
func New(log *logger.L, configuration *Configuration, bus *messagebus.BroadcastQueue) (*Broadcaster, error) {
	if 0 == len(configuration.Broadcast) {
		log.Error("missing broadcast addresses")
		return nil, fault.MissingParameters
	}

	privateKey := []byte(nil)
	publicKey := []byte(nil)
	if "" != configuration.PrivateKey || "" != configuration.PublicKey {
		var err error
		privateKey, err = ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return nil, err
		}
		publicKey, err = ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return nil, err
		}
		log.Tracef("public key:  %x", publicKey)
	}

	brdc := &Broadcaster{
		log: log,
		bus: bus,
	}

	for i, address := range configuration.Broadcast {
		l, err := util.ParseListen(address)
		if nil != err {
			log.Errorf("broadcast[%d]: %q  error: %s", i, address, err)
			brdc.close()
			return nil, err
		}

		socket, err := newSocket(privateKey, publicKey, l.IPv6)
		if nil != err {
			brdc.close()
			return nil, err
		}
		brdc.sockets = append(brdc.sockets, socket)

		err = socket.Bind(l.ZMQ())
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, l.ZMQ(), err)
			brdc.close()
			return nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, l.ZMQ(), l.IPv6)
	}

	brdc.queue = bus.Chan(listenerQueueSize)
	return brdc, nil
}

func newSocket(privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	if nil != privateKey {
		// allow any client to connect
		zmq.AuthCurveAdd(broadcasterZapDomain, zmq.CURVE_ALLOW_ANY)
		socket.SetCurveServer(1)
		socket.SetCurveSecretkey(string(privateKey))
		socket.SetZapDomain(broadcasterZapDomain)
		socket.SetIdentity(string(publicKey))
	}

	socket.SetIpv6(v6)
	socket.SetLinger(0)
	return socket, nil
}

// Run - forward bus messages until shutdown
func (brdc *Broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s  parts: %d", item.Command, len(item.Parameters))
			for _, socket := range brdc.sockets {
				brdc.send(socket, &item)
			}
		}
	}

	brdc.bus.Release(brdc.queue)
	brdc.close()
	log.Info("stopped")
}

// a failed send loses only that message
func (brdc *Broadcaster) send(socket *zmq.Socket, item *messagebus.Message) {
	flags := zmq.DONTWAIT
	if len(item.Parameters) > 0 {
		flags |= zmq.SNDMORE
	}
	_, err := socket.Send(item.Command, flags)
	if nil != err {
		brdc.log.Errorf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags = zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		_, err = socket.SendBytes(p, flags)
		if nil != err {
			brdc.log.Errorf("send: %s  part: %d  error: %s", item.Command, i, err)
			return
		}
	}
}

func (brdc *Broadcaster) close() {
	for _, socket := range brdc.sockets {
		socket.Close()
	}
	brdc.sockets = nil
}
