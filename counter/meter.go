// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"time"
)

// Meter - counts events and reports their rate since it was started
type Meter struct {
	count Counter
	start time.Time
}

// NewMeter - a meter starting now
func NewMeter() *Meter {
	return &Meter{
		start: time.Now(),
	}
}

// Mark - record n events
func (m *Meter) Mark(n uint64) {
	m.count.Add(n)
}

// Count - events so far
func (m *Meter) Count() uint64 {
	return m.count.Uint64()
}

// Elapsed - time since the start
func (m *Meter) Elapsed() time.Duration {
	return time.Since(m.start)
}

// Rate - events per second since the start
func (m *Meter) Rate() float64 {
	elapsed := m.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.Count()) / elapsed
}
