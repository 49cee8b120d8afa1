// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofer

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/nuddcoin/nuddhash/blockrecord"
	"github.com/nuddcoin/nuddhash/counter"
	"github.com/nuddcoin/nuddhash/difficulty"
	"github.com/nuddcoin/nuddhash/fault"
	"github.com/nuddcoin/nuddhash/powhash"
)

// one past the largest nonce
const nonceLimit = uint64(1) << 32

// Result - a successful search
type Result struct {
	Nonce  blockrecord.NonceType `json:"nonce"`
	Digest powhash.Digest        `json:"digest"`
	Hashes uint64                `json:"hashes"`
}

// Proofer - multi-threaded nonce search
type Proofer struct {
	hasher   Hasher
	threads  int
	meter    *counter.Meter
	progress *rate.Limiter
	log      *logger.L
}

// New - create a proofer, progress lines are logged at most once per
// interval (zero disables them)
func New(hasher Hasher, threads int, interval time.Duration, log *logger.L) (*Proofer, error) {
	if threads < 1 {
		return nil, fault.ErrInvalidThreadCount
	}

	var progress *rate.Limiter
	if interval > 0 {
		progress = rate.NewLimiter(rate.Every(interval), 1)
	}

	return &Proofer{
		hasher:   hasher,
		threads:  threads,
		meter:    counter.NewMeter(),
		progress: progress,
		log:      log,
	}, nil
}

// Meter - hashes computed over the lifetime of this proofer
func (p *Proofer) Meter() *counter.Meter {
	return p.meter
}

// Search - try count nonces starting at first, count of zero means up
// to the end of the nonce space
//
// the first winning digest cancels the other threads, so with several
// threads the result is the lowest nonce among those found before the
// cancellation took effect, not necessarily the lowest in the range
//
// returns fault.ErrNonceNotFound if the range is exhausted and the
// context error if cancelled first
func (p *Proofer) Search(ctx context.Context, header blockrecord.PackedHeader, first blockrecord.NonceType, count uint64) (*Result, error) {

	target, err := difficulty.NewFromBits(header.Bits())
	if nil != err {
		return nil, err
	}

	// clamp before adding so that a huge count cannot wrap
	limit := nonceLimit
	if 0 != count && count < nonceLimit-uint64(first) {
		limit = uint64(first) + count
	}

	p.log.Infof("search: nonce: 0x%08x to 0x%08x  difficulty: %s  threads: %d", uint64(first), limit-1, target, p.threads)

	found, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan Result, p.threads)
	start := p.meter.Count()

	g, gctx := errgroup.WithContext(found)
	for t := 0; t < p.threads; t += 1 {
		offset := uint64(t)
		g.Go(func() error {
			local := header
			for n := uint64(first) + offset; n < limit; n += uint64(p.threads) {
				if nil != gctx.Err() {
					return nil
				}

				nonce := blockrecord.NonceType(n)
				local.SetNonce(nonce)
				digest, err := p.hasher.Sum(local[:])
				if nil != err {
					p.log.Errorf("nonce: 0x%08x  hash error: %s", n, err)
					return err
				}
				p.meter.Mark(1)

				if nil != p.progress && p.progress.Allow() {
					p.log.Infof("nonce: 0x%08x  hashes: %d  rate: %.3f H/s", n, p.meter.Count(), p.meter.Rate())
				}

				if target.Meets(digest) {
					p.log.Debugf("nonce: 0x%08x  digest: %s", n, digest)
					results <- Result{
						Nonce:  nonce,
						Digest: digest,
					}
					cancel()
					return nil
				}
			}
			return nil
		})
	}

	if err := g.Wait(); nil != err {
		return nil, err
	}
	close(results)

	var best *Result
	for r := range results {
		if nil == best || r.Nonce < best.Nonce {
			r := r
			best = &r
		}
	}

	if nil == best {
		if err := ctx.Err(); nil != err {
			p.log.Warnf("search cancelled: %s", err)
			return nil, err
		}
		p.log.Warn("search range exhausted")
		return nil, fault.ErrNonceNotFound
	}

	best.Hashes = p.meter.Count() - start
	p.log.Infof("found: nonce: 0x%08x  digest: %s  hashes: %d", uint64(best.Nonce), best.Digest, best.Hashes)
	return best, nil
}
