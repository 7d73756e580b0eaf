// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the orderd JSON RPC services
package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to an orderd
func NewClient(connect string, useTLS bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.Dial("tcp", connect, tlsConfig)
	} else {
		conn, err = net.Dial("tcp", connect)
	}
	if nil != err {
		return nil, err
	}

	return NewClientFromConn(conn, verbose, handle), nil
}

// NewClientFromConn - wrap an existing connection
func NewClientFromConn(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the orderd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" Request", arguments)

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}

	c.printJson(method+" Reply", reply)
	return nil
}
