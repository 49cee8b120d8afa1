// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - conversion between the compact "bits" form,
// the 256 bit target and the pool difficulty
package difficulty
