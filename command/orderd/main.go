// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/orderd/access"
	"github.com/bitmark-inc/orderd/background"
	"github.com/bitmark-inc/orderd/entity"
	"github.com/bitmark-inc/orderd/handler"
	"github.com/bitmark-inc/orderd/ledger"
	"github.com/bitmark-inc/orderd/messagebus"
	"github.com/bitmark-inc/orderd/order"
	"github.com/bitmark-inc/orderd/publish"
	"github.com/bitmark-inc/orderd/rpc"
	"github.com/bitmark-inc/orderd/rpc/node"
	"github.com/bitmark-inc/orderd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, nil)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("namespace: %q", theConfiguration.Namespace)
	log.Infof("private info partitioned: %t", theConfiguration.PrivateInfoPartitioned)
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	db, err := storage.Open(theConfiguration.Database.Name, false)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	factory := entity.NewFactory(entity.Namespace(theConfiguration.Namespace))
	order.Register(factory)

	bus := messagebus.New()
	theLedger := ledger.New(logger.New("ledger"), db, factory, bus)

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theLedger) {
		return
	}

	policy := access.New(theConfiguration.EnforceSellerAuthority)
	log.Infof("access policy: %s", policy)

	transactions := handler.NewTransactions(theConfiguration.PrivateInfoPartitioned, policy)
	theHandler := handler.New(logger.New("handler"), theLedger, transactions)

	// start up the publishing background processes
	if len(theConfiguration.Publishing.Broadcast) > 0 {
		if "" != theConfiguration.Publishing.PrivateKey {
			err = zmq.AuthStart()
			if nil != err {
				log.Criticalf("zmq.AuthStart: error: %s", err)
				exitwithstatus.Message("zmq.AuthStart: error: %s", err)
			}
			defer zmq.AuthStop()
		}

		broadcaster, err := publish.New(logger.New("publish"), &theConfiguration.Publishing, bus)
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		processes := background.Start(background.Processes{broadcaster}, nil)
		defer processes.Stop()
	}

	// start up the rpc background processes
	settings := node.Settings{
		Namespace:              theConfiguration.Namespace,
		PrivateInfoPartitioned: theConfiguration.PrivateInfoPartitioned,
		AccessPolicy:           policy.String(),
	}
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, settings, theHandler, theLedger)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
