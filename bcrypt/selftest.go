// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcrypt

import (
	"github.com/nuddcoin/nuddhash/fault"
)

// known answers at cost zero
const (
	testKey     = "8b \xd0\xc1\xd2\xcf\xcc\xd8"
	testSalt    = "abcdefghijklmnopqrstuu"
	testHashX   = "VUrPmXD6q/nVSSp7pNDhCR9071IfIRe"
	testHashAY  = "i1D709vfamulimlGcq0qq3UvuUasvEa"
	testSignKey = "\xff\xa3" + "34" + "\xff\xff\xff\xa3" + "345"
)

var testHashes = map[Variant]string{
	VariantA: testHashAY,
	VariantX: testHashX,
	VariantY: testHashAY,
}

// SelfTest - check the engine against known answers for every
// variant and check the variant key setups against each other
//
// a failure means the build computes incompatible hashes
func SelfTest() error {
	for variant, expected := range testHashes {
		setting := "$2" + variant.String() + "$00$" + testSalt
		h, err := crypt([]byte(testKey), setting, 0)
		if nil != err {
			return err
		}
		if setting+expected != h {
			return fault.ErrSelfTestFailed
		}
	}

	ae, ai := setKey([]byte(testSignKey), flagSafety)
	ye, yi := setKey([]byte(testSignKey), flagPlain)

	// undo the countermeasure to compare
	ai[0] ^= 0x10000

	if 0xdb9c59bc != ai[0] || 0x33343500 != ye[17] || ae != ye || ai != yi {
		return fault.ErrSelfTestFailed
	}
	return nil
}
