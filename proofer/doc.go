// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proofer - search the nonce space of a block header for a
// digest that meets the header's own difficulty
//
// the nonce space is interleaved across threads, thread t trying
// first+t, first+t+threads and so on; the first success stops the
// search and when several threads succeed before stopping the lowest
// of their nonces is returned
package proofer
