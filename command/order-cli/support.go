// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderd/command/order-cli/rpccalls"
	"github.com/bitmark-inc/orderd/entity"
)

// parse "TYPE#ID" or a full "resource:..." text, blank is no participant
func parseParticipant(namespace entity.Namespace, s string) (entity.Relationship, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return entity.Relationship{}, nil
	}
	if strings.HasPrefix(s, "resource:") {
		return entity.ParseRelationship(s)
	}

	n := strings.Index(s, "#")
	if n <= 0 || n == len(s)-1 {
		return entity.Relationship{}, fmt.Errorf("participant: %q is not TYPE#ID", s)
	}
	return reference(namespace, s[:n], s[n+1:]), nil
}

func reference(namespace entity.Namespace, name string, id string) entity.Relationship {
	return entity.Relationship{
		Type: namespace.Qualify(name),
		ID:   id,
	}
}

func checkRequired(c *cli.Context, names ...string) error {
	for _, name := range names {
		if "" == strings.TrimSpace(c.String(name)) {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
