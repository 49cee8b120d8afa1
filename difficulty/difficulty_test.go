// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuddcoin/nuddhash/difficulty"
	"github.com/nuddcoin/nuddhash/fault"
	"github.com/nuddcoin/nuddhash/powhash"
)

// test difficulty one
func TestPdiffOne(t *testing.T) {

	expected := 1.0

	d := difficulty.New()
	actual := d.Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}

	if difficulty.DefaultUint32 != d.Bits() {
		t.Errorf("bits: actual: 0x%08x  expected: 0x%08x", d.Bits(), difficulty.DefaultUint32)
	}

	expectedTarget := "00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	if s := fmt.Sprintf("%#v", d); s != expectedTarget {
		t.Errorf("target: actual: %s  expected: %s", s, expectedTarget)
	}
}

// test 32 bit word
func TestUint32(t *testing.T) {

	d := difficulty.New()

	value := uint32(0x1b0404cb)
	expected := 16307.669773817162

	err := d.SetBits(value)
	require.NoError(t, err, "set bits")
	actual := d.Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}

	hexActual := d.String()
	hexExpected := fmt.Sprintf("%08x", value)

	if hexActual != hexExpected {
		t.Errorf("hex: actual: %q  expected: %q", hexActual, hexExpected)
	}

	expectedTarget := new(big.Int).Lsh(big.NewInt(0x0404cb), 8*(0x1b-3))
	assert.Equal(t, 0, expectedTarget.Cmp(d.BigInt()), "target: %x", d.BigInt())

	// a second test

	value = uint32(0x1c2ac4af)
	expected = 5.985742435503

	err = d.SetBits(value)
	require.NoError(t, err, "set bits")
	actual = d.Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}

	hexActual = d.String()
	hexExpected = fmt.Sprintf("%08x", value)

	if hexActual != hexExpected {
		t.Errorf("hex: actual: %q  expected: %q", hexActual, hexExpected)
	}
}

// test bytes
func TestBytes(t *testing.T) {

	d := difficulty.New()

	value := []byte{0xcb, 0x04, 0x04, 0x1b} // little endian bytes
	expected := 16307.669773817162

	err := d.SetBytes(value)
	require.NoError(t, err, "set bytes")
	actual := d.Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}

	err = d.SetBytes(value[:3])
	assert.Equal(t, fault.ErrInvalidBits, err, "short bytes")
}

func TestInvalidBits(t *testing.T) {
	d := difficulty.New()

	for _, u := range []uint32{0x1b800000, 0x1b007fff, 0x02008000, 0x00000000} {
		err := d.SetBits(u)
		assert.Equal(t, fault.ErrInvalidBits, err, "bits: 0x%08x", u)
		assert.Equal(t, uint32(difficulty.DefaultUint32), d.Bits(), "bits: 0x%08x  value changed", u)
	}

	_, err := difficulty.NewFromBits(0x1b800000)
	assert.Equal(t, fault.ErrInvalidBits, err, "new from bits")
}

func TestPdiffToBits(t *testing.T) {
	items := []struct {
		pdiff float64
		bits  uint32
	}{
		{16307.669773817162, 0x1b0404cb},
		{2.0, 0x1d008000},
		{256.0, 0x1c010000},
		{1.5, 0x1d00aaaa},
		{0.5, difficulty.DefaultUint32},
	}
	for _, item := range items {
		d := difficulty.New()
		d.SetPdiff(item.pdiff)
		assert.Equal(t, item.bits, d.Bits(), "pdiff: %f", item.pdiff)
	}
}

func TestParseBits(t *testing.T) {
	u, err := difficulty.ParseBits("1d00ffff")
	require.NoError(t, err, "parse")
	assert.Equal(t, uint32(0x1d00ffff), u, "value")

	for _, s := range []string{"", "1d00fff", "1d00ffff0", "1d00fffg"} {
		_, err := difficulty.ParseBits(s)
		assert.Equal(t, fault.ErrInvalidBits, err, "string: %q", s)
	}
}

func TestMeets(t *testing.T) {
	d, err := difficulty.NewFromBits(0x1c2ac4af)
	require.NoError(t, err, "new")

	// little endian: the most significant bytes are last
	var low powhash.Digest
	low[27] = 0x2a

	var high powhash.Digest
	high[27] = 0x2b

	assert.True(t, d.Meets(low), "low digest")
	assert.False(t, d.Meets(high), "high digest")
}
