// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/nuddcoin/nuddhash/background"
)

type announcer struct {
	started chan struct{}
}

func (state *announcer) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("start: %s\n", args)
	close(state.started)
	<-shutdown
	fmt.Printf("stop: %s\n", args)
}

func Example() {

	proc := &announcer{
		started: make(chan struct{}),
	}

	p := background.Start(background.Processes{proc}, "reporter")
	<-proc.started
	p.Stop()

	// Output:
	// start: reporter
	// stop: reporter
}
