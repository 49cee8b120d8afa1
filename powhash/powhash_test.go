// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuddcoin/nuddhash/fault"
	"github.com/nuddcoin/nuddhash/powhash"
)

// headers with digests computed by an independent implementation
// digests are the raw little endian byte sequence
var vectors = []struct {
	name   string
	header []byte
	digest string
}{
	{"zero", make([]byte, powhash.HeaderSize), "032edc531cdf4727a3ae1c1d655dd93744aa777718b53b9cd7eaaa6bba682df0"},
	{"sequence", sequence(powhash.HeaderSize), "02d84589efbf639f85a816c84e9229eb0dd36ef42359b557886a3305648120e5"},
	{"ones", bytes.Repeat([]byte{0xff}, powhash.HeaderSize), "769ac2953327534af8eecde61fc647457e610e9ce8b5c7259c8c2547ecbe040f"},
	{"text", fox(), "e6ab5e41a9fc00f96a22faebaaeb69abff56a70297d2a152c2006ad87faeb15e"},
}

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func fox() []byte {
	b := bytes.Repeat([]byte{'!'}, powhash.HeaderSize)
	copy(b, "The quick brown fox jumps over the lazy dog. NUDD proof-of-work header")
	return b
}

func TestSumVectors(t *testing.T) {
	for _, v := range vectors {
		d, err := powhash.Sum(v.header)
		require.NoError(t, err, "%s: sum", v.name)
		assert.Equal(t, v.digest, hex.EncodeToString(d[:]), "%s: wrong digest", v.name)
	}
}

func TestSumDeterministic(t *testing.T) {
	h := sequence(powhash.HeaderSize)
	d1, err := powhash.Sum(h)
	require.NoError(t, err, "first sum")
	d2, err := powhash.Sum(h)
	require.NoError(t, err, "second sum")
	assert.Equal(t, d1, d2, "digest changed between calls")
	assert.Equal(t, sequence(powhash.HeaderSize), h, "header was modified")
}

func TestSumSensitivity(t *testing.T) {
	h := sequence(powhash.HeaderSize)
	h[powhash.HeaderSize-1] ^= 0x01

	d, err := powhash.Sum(h)
	require.NoError(t, err, "sum")

	// the first 23 bytes come from the unchanged first 60 header bytes
	assert.Equal(t, "02d84589efbf639f85a816c84e9229eb0dd36ef42359b5bdddf6751e807c9ffc", hex.EncodeToString(d[:]), "wrong digest")
	assert.NotEqual(t, vectors[1].digest, hex.EncodeToString(d[:]), "bit flip did not change digest")

	// a change in the first part changes the start of the digest
	h = sequence(powhash.HeaderSize)
	h[0] ^= 0x80
	d, err = powhash.Sum(h)
	require.NoError(t, err, "sum")
	assert.NotEqual(t, vectors[1].digest[:2*powhash.ChunkSize], hex.EncodeToString(d[:powhash.ChunkSize]), "bit flip did not change digest")
}

func TestSumMalformed(t *testing.T) {
	for _, n := range []int{0, 1, powhash.HeaderSize - 1, powhash.HeaderSize + 1, 2 * powhash.HeaderSize} {
		d, err := powhash.Sum(make([]byte, n))
		assert.Equal(t, fault.ErrMalformedHeader, err, "length: %d", n)
		assert.True(t, fault.IsErrLength(err), "length: %d  error class", n)
		assert.Equal(t, powhash.Digest{}, d, "length: %d  digest returned on error", n)
	}
	_, err := powhash.Sum(nil)
	assert.Equal(t, fault.ErrMalformedHeader, err, "nil header")
}

func TestIterated(t *testing.T) {
	seq := sequence(powhash.HeaderSize)
	stepped := make([]byte, 144)
	for i := range stepped {
		stepped[i] = byte(i*7 + 3)
	}

	items := []struct {
		name   string
		input  []byte
		result string
	}{
		{"empty", []byte{}, "29f5d16434fd492f9494d408de402783e2cf51391fddd1"},
		{"first part", seq[:60], "02d84589efbf639f85a816c84e9229eb0dd36ef42359b5"},
		{"second part", seq[60:], "57886a3305648120e5cd08282da804aeaa670111ce9214"},
		{"whole header", seq, "43867d39ab7e8a625bd3a33cdbb82db8b73a5e9195777a"},
		{"two blocks", stepped, "ce30be4d0c06140d08bee1f259372c5c0f38f2b5623d84"},
		{"one block", bytes.Repeat([]byte{'a'}, 72), "3cfc557915821ed97c5bbe505977a1d5687f1ea3c5f8ea"},
		{"block and one", bytes.Repeat([]byte{'a'}, 73), "fc03b9bc471e489ea887a43cbf00e3e0afc9ef121ea2e3"},
		{"one chunk", bytes.Repeat([]byte{'b'}, 23), "94bbd07577cfa2a6e18a5de099a21ccbf75da53876237f"},
		{"chunk and one", bytes.Repeat([]byte{'b'}, 24), "54909dd3ba558fcf4faabbdf799d61b6863fad8fe73a19"},
	}
	for _, item := range items {
		r, err := powhash.Iterated(item.input)
		require.NoError(t, err, "%s: iterated", item.name)
		assert.Equal(t, item.result, hex.EncodeToString(r[:]), "%s: wrong result", item.name)
	}
}

func TestExtend(t *testing.T) {
	descending := make([]byte, 100)
	for i := range descending {
		descending[i] = byte(255 - i)
	}

	d, err := powhash.Extend(descending)
	require.NoError(t, err, "extend 100")
	assert.Equal(t, "dd4f08abb685ad02f24b530311d3ef04da22cdc5c367b7e0212c086eeeb8c86c", hex.EncodeToString(d[:]), "100 bytes")

	d, err = powhash.Extend(bytes.Repeat([]byte{'z'}, 8))
	require.NoError(t, err, "extend 8")
	assert.Equal(t, "0b486ec7902d8230a7da6b1dbc8bd15c04d1751354a7582378b6020912592d99", hex.EncodeToString(d[:]), "8 bytes")
}

func TestSumAllMatchesSequential(t *testing.T) {
	headers := make([][]byte, 12)
	for i := range headers {
		h := sequence(powhash.HeaderSize)
		h[powhash.HeaderSize-4] = byte(i)
		h[7] = byte(i * 3)
		headers[i] = h
	}

	expected := make([]powhash.Digest, len(headers))
	for i, h := range headers {
		d, err := powhash.Sum(h)
		require.NoError(t, err, "%d: sum", i)
		expected[i] = d
	}

	for _, threads := range []int{1, 3, 8} {
		actual, err := powhash.SumAll(context.Background(), powhash.Sum, headers, threads)
		require.NoError(t, err, "threads: %d", threads)
		assert.Equal(t, expected, actual, "threads: %d", threads)
	}
}

func TestSumAllErrors(t *testing.T) {
	headers := [][]byte{
		sequence(powhash.HeaderSize),
		sequence(powhash.HeaderSize - 1),
		sequence(powhash.HeaderSize),
	}
	d, err := powhash.SumAll(context.Background(), powhash.Sum, headers, 2)
	assert.Equal(t, fault.ErrMalformedHeader, err, "malformed header in batch")
	assert.Nil(t, d, "digests returned on error")

	_, err = powhash.SumAll(context.Background(), powhash.Sum, headers, 0)
	assert.Equal(t, fault.ErrInvalidThreadCount, err, "zero threads")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = powhash.SumAll(ctx, powhash.Sum, [][]byte{sequence(powhash.HeaderSize)}, 1)
	assert.Equal(t, context.Canceled, err, "cancelled")
}

func TestSelfTest(t *testing.T) {
	assert.NoError(t, powhash.SelfTest(), "self test")
}
