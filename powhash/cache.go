// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/nuddcoin/nuddhash/counter"
)

// Cache - memoises a header hash, for validators that see the same
// header more than once
type Cache struct {
	hash   HashFunc
	items  *cache.Cache
	hits   counter.Counter
	misses counter.Counter
}

// NewCache - entries live for expiry and are purged every cleanup
func NewCache(hash HashFunc, expiry time.Duration, cleanup time.Duration) *Cache {
	return &Cache{
		hash:  hash,
		items: cache.New(expiry, cleanup),
	}
}

// Sum - cached digest of a header, errors are not cached
func (c *Cache) Sum(header []byte) (Digest, error) {
	key := string(header)
	if obj, found := c.items.Get(key); found {
		c.hits.Increment()
		return obj.(Digest), nil
	}
	c.misses.Increment()

	digest, err := c.hash(header)
	if nil != err {
		return digest, err
	}
	c.items.Set(key, digest, cache.DefaultExpiration)
	return digest, nil
}

// Stats - hit and miss counts
func (c *Cache) Stats() (hits uint64, misses uint64) {
	return c.hits.Uint64(), c.misses.Uint64()
}

// Len - number of cached digests
func (c *Cache) Len() int {
	return c.items.ItemCount()
}

// Flush - remove every entry
func (c *Cache) Flush() {
	c.items.Flush()
}
