// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofer

import (
	"github.com/nuddcoin/nuddhash/powhash"
)

//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks

// Hasher - digest of an 80 byte header
//
// powhash.HashFunc and *powhash.Cache both satisfy this
type Hasher interface {
	Sum(header []byte) (powhash.Digest, error)
}
