// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/orderd/fault"
)

// Listen - a validated listen address
type Listen struct {
	Network  string // "tcp", "tcp4" or "tcp6"
	Address  string // host:port for net.Listen
	Wildcard bool   // "*:PORT" form, all interfaces
	IPv6     bool
	host     string
	port     int
}

// ParseListen - check a listen address of the forms:
//   *:PORT  IPv4:PORT  [IPv6]:PORT
func ParseListen(s string) (Listen, error) {
	l := Listen{}

	host, portText, err := net.SplitHostPort(s)
	if nil != err {
		return l, fault.InvalidIpAddress
	}

	port, err := strconv.Atoi(portText)
	if nil != err || port < 1 || port > 65535 {
		return l, fault.InvalidPortNumber
	}
	l.port = port

	if "*" == host {
		// on the assumption that this will listen on tcp4 and tcp6
		l.Network = "tcp"
		l.Address = net.JoinHostPort("::", portText)
		l.Wildcard = true
		l.IPv6 = true
		l.host = "*"
		return l, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return l, fault.InvalidIpAddress
	}

	if nil == ip.To4() || strings.HasPrefix(s, "[") {
		l.Network = "tcp6"
		l.IPv6 = true
	} else {
		l.Network = "tcp4"
	}
	l.host = ip.String()
	l.Address = net.JoinHostPort(l.host, portText)
	return l, nil
}

// ZMQ - address in ZeroMQ endpoint form
func (l Listen) ZMQ() string {
	if l.Wildcard {
		return "tcp://*:" + strconv.Itoa(l.port)
	}
	return "tcp://" + l.Address
}

// String - the listen address
func (l Listen) String() string {
	return l.Address
}
