// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nuddcoin/nuddhash/fault"
)

// SumAll - hash independent headers on a number of threads
//
// digests are returned in the order of the headers; the first error
// stops the remaining work
func SumAll(ctx context.Context, hash HashFunc, headers [][]byte, threads int) ([]Digest, error) {
	if threads < 1 {
		return nil, fault.ErrInvalidThreadCount
	}

	digests := make([]Digest, len(headers))
	indexes := make(chan int)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(indexes)
		for i := range headers {
			if err := ctx.Err(); nil != err {
				return err
			}
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for t := 0; t < threads; t += 1 {
		g.Go(func() error {
			for i := range indexes {
				d, err := hash(headers[i])
				if nil != err {
					return err
				}
				digests[i] = d
			}
			return nil
		})
	}

	if err := g.Wait(); nil != err {
		return nil, err
	}
	return digests, nil
}
