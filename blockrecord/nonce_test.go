// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/nuddcoin/nuddhash/blockrecord"
)

// test JSON conversion
func TestNonceJSON(t *testing.T) {

	nonces := []blockrecord.NonceType{
		0x00000000,
		0x90abcdef,
		0xffffffff,
	}

	for i, expected := range nonces {

		buffer, err := json.Marshal(expected)
		if nil != err {
			t.Fatalf("%d: JSON encode error: %s", i, err)
		}

		var actual blockrecord.NonceType
		err = json.Unmarshal(buffer, &actual)
		if nil != err {
			t.Fatalf("%d: JSON decode error: %s", i, err)
		}

		if actual != expected {
			t.Errorf("%d: JSON actual: %08x  expected: %08x", i, actual, expected)
		}
	}

	buffer, _ := json.Marshal(blockrecord.NonceType(0x01020304))
	if `"04030201"` != string(buffer) {
		t.Errorf("JSON is not little endian: %s", buffer)
	}

	var n blockrecord.NonceType
	for _, s := range []string{`"0102"`, `01020304`, `"010203040506"`} {
		if err := n.UnmarshalJSON([]byte(s)); nil == err {
			t.Errorf("JSON: %s was accepted", s)
		}
	}
}
