// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofer

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/nuddcoin/nuddhash/counter"
)

const defaultReportInterval = 10 * time.Second

// Reporter - background process logging the hash rate of a meter
type Reporter struct {
	meter    *counter.Meter
	interval time.Duration
	log      *logger.L
}

// NewReporter - create a reporter for background.Start
func NewReporter(meter *counter.Meter, interval time.Duration, log *logger.L) *Reporter {
	if interval <= 0 {
		interval = defaultReportInterval
	}
	return &Reporter{
		meter:    meter,
		interval: interval,
		log:      log,
	}
}

// Run - log until shutdown, then log the totals
func (r *Reporter) Run(args interface{}, shutdown <-chan struct{}) {

	r.log.Info("starting…")

	t := time.NewTicker(r.interval)
	defer t.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-t.C:
			r.log.Infof("hashes: %d  rate: %.3f H/s", r.meter.Count(), r.meter.Rate())
		}
	}

	r.log.Infof("total hashes: %d  elapsed: %s  rate: %.3f H/s", r.meter.Count(), r.meter.Elapsed(), r.meter.Rate())
	r.log.Info("stopped")
}
