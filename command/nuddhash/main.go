// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/nuddcoin/nuddhash/configuration"
	"github.com/nuddcoin/nuddhash/fault"
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
		{Long: "threads", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "algorithm", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'a'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--threads=N] [--algorithm=NAME] [command|help] arguments...", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// without a file the defaults apply and logs go to the temporary directory
	var masterConfiguration *configuration.Configuration
	if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		masterConfiguration, err = configuration.GetConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	} else {
		masterConfiguration = configuration.Default()
		if err := masterConfiguration.Resolve(os.TempDir()); nil != err {
			exitwithstatus.Message("%s: default configuration error: %s", program, err)
		}
	}

	// command line overrides
	if n := len(options["threads"]); n > 0 {
		threads, err := strconv.Atoi(options["threads"][n-1])
		if nil != err || threads < 1 {
			exitwithstatus.Message("%s: invalid thread count: %q", program, options["threads"][n-1])
		}
		masterConfiguration.Threads = threads
	}
	if n := len(options["algorithm"]); n > 0 {
		masterConfiguration.Algorithm = options["algorithm"][n-1]
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last chance log channel for panics
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// turn Signals into context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		log.Infof("received signal: %v", sig)
		cancel()
	}()

	env := &environment{
		program: program,
		config:  masterConfiguration,
		quiet:   len(options["quiet"]) > 0,
		log:     log,
	}

	if !processCommand(ctx, env, arguments) {
		exitwithstatus.Exit(1)
	}
}
