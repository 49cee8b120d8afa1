// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"encoding/hex"

	"github.com/nuddcoin/nuddhash/bcrypt"
	"github.com/nuddcoin/nuddhash/fault"
)

// little endian digest of the all zero header
const zeroHeaderDigest = "032edc531cdf4727a3ae1c1d655dd93744aa777718b53b9cd7eaaa6bba682df0"

// SelfTest - check the bcrypt engine then the digest of a fixed header
func SelfTest() error {
	if err := bcrypt.SelfTest(); nil != err {
		return err
	}

	d, err := Sum(make([]byte, HeaderSize))
	if nil != err {
		return err
	}
	if zeroHeaderDigest != hex.EncodeToString(d[:]) {
		return fault.ErrSelfTestFailed
	}
	return nil
}
