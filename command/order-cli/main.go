// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderd/entity"
)

type metadata struct {
	connect   string
	useTLS    bool
	namespace entity.Namespace
	invoker   entity.Relationship
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "order-cli"
	app.Usage = "submit order transactions to orderd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " orderd host/IP and port, `HOST:PORT`",
			EnvVar: "ORDERD_CONNECT",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS",
		},
		cli.StringFlag{
			Name:  "namespace, n",
			Value: string(entity.DefaultNamespace),
			Usage: " resource type `NAMESPACE`",
		},
		cli.StringFlag{
			Name:   "invoker, i",
			Value:  "",
			Usage:  " participant submitting the transaction `TYPE#ID`",
			EnvVar: "ORDERD_INVOKER",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "participant",
			Usage:     "register a seller, buyer or account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, T",
					Value: "",
					Usage: "*participant `TYPE` [Seller|Buyer|Account]",
				},
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*participant `ID`",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: " display `NAME`",
				},
			},
			Action: runParticipant,
		},
		{
			Name:      "create",
			Usage:     "place a new order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "",
					Usage: "*order `ID`",
				},
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: "*seller `ID`",
				},
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*buyer `ID`",
				},
				cli.Float64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*order `PRICE`",
				},
				cli.StringFlag{
					Name:  "seller-info, S",
					Value: "",
					Usage: " private seller `TEXT`",
				},
				cli.StringFlag{
					Name:  "buyer-info, B",
					Value: "",
					Usage: " buyer `TEXT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "buyer-info",
			Usage:     "append a note to the buyer info",
			ArgsUsage: "\n   (* = required)",
			Flags:     noteFlags(),
			Action:    runBuyerInfo,
		},
		{
			Name:      "seller-info",
			Usage:     "append a note to the private seller info",
			ArgsUsage: "\n   (* = required)",
			Flags:     noteFlags(),
			Action:    runSellerInfo,
		},
		{
			Name:      "price",
			Usage:     "replace the order price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "",
					Usage: "*order `ID`",
				},
				cli.Float64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*new `PRICE`",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "info",
			Usage:     "emit price, seller info and buyer info events to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "",
					Usage: "*order `ID`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*account `ID`",
				},
			},
			Action: runInfo,
		},
		{
			Name:      "transaction",
			Usage:     "display a committed transaction and its events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `TXID`",
				},
			},
			Action: runTransaction,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `TXID`",
				},
			},
			Action: runStatus,
		},
		{
			Name:   "node-info",
			Usage:  "display orderd version and settings",
			Action: runNodeInfo,
		},
		{
			Name:   "version",
			Usage:  "display order-cli version",
			Action: runVersion,
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		namespace := entity.Namespace(c.GlobalString("namespace"))
		if "" == namespace {
			return fmt.Errorf("namespace cannot be blank")
		}

		invoker, err := parseParticipant(namespace, c.GlobalString("invoker"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "connect: %q  invoker: %q\n", c.GlobalString("connect"), invoker)
		}

		c.App.Metadata["config"] = &metadata{
			connect:   c.GlobalString("connect"),
			useTLS:    c.GlobalBool("tls"),
			namespace: namespace,
			invoker:   invoker,
			verbose:   verbose,
			e:         e,
			w:         w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func noteFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "order, o",
			Value: "",
			Usage: "*order `ID`",
		},
		cli.StringFlag{
			Name:  "note, N",
			Value: "",
			Usage: "*note `TEXT` to append",
		},
	}
}
