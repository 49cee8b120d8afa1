// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuddcoin/nuddhash/configuration"
	"github.com/nuddcoin/nuddhash/fault"
	"github.com/nuddcoin/nuddhash/powhash"
)

func TestParseHeader(t *testing.T) {
	zero := strings.Repeat("00", powhash.HeaderSize)

	packed, err := parseHeader(zero)
	require.NoError(t, err, "zero header")
	assert.Equal(t, make([]byte, powhash.HeaderSize), packed[:], "zero header bytes")

	_, err = parseHeader(zero[2:])
	assert.Equal(t, fault.ErrMalformedHeader, err, "short header")

	_, err = parseHeader("zz" + zero[2:])
	assert.Equal(t, fault.ErrInvalidHex, err, "bad hex")
}

func TestHasher(t *testing.T) {
	header := make([]byte, powhash.HeaderSize)

	for _, cached := range []bool{false, true} {
		env := &environment{
			config: configuration.Default(),
		}
		env.config.Cache.Enable = cached

		hash, err := env.hasher()
		require.NoError(t, err, "cached: %v", cached)

		d, err := hash(header)
		require.NoError(t, err, "cached: %v", cached)
		assert.Equal(t, "032edc531cdf4727a3ae1c1d655dd93744aa777718b53b9cd7eaaa6bba682df0", hex.EncodeToString(d[:]), "cached: %v", cached)
	}

	env := &environment{
		config: configuration.Default(),
	}
	env.config.Algorithm = "md5"
	_, err := env.hasher()
	assert.Equal(t, fault.ErrInvalidAlgorithm, err, "unknown algorithm")
}

// version 1, zero previous block, merkle root 00..1f, time 1600000000,
// bits 0x207fffff, then the nonce
const headerPrefix = "01000000" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
	"00105e5f" +
	"ffff7f20"

const (
	missHeader = headerPrefix + "00000000" // nonce 0, above target
	meetHeader = headerPrefix + "02000000" // nonce 2, meets target
)

const (
	missDigest = "03668c241e61247469970c58b564e680c8bf4687fe2fc5d59a5d08ae5aed4d85"
	meetDigest = "03668c241e61247469970c58b564e680c8bf4687fe2fc55358553cff03d18d78"
)

func TestRunHash(t *testing.T) {
	env := testEnvironment(false)

	out, ok := captureStdout(t, func() bool {
		return runHash(context.Background(), env, []string{missHeader, meetHeader})
	})
	assert.True(t, ok, "hash failed")
	assert.Equal(t, missDigest+"\n"+meetDigest+"\n", out, "little endian digests in argument order")

	out, ok = captureStdout(t, func() bool {
		return runHash(context.Background(), env, []string{meetHeader[2:]})
	})
	assert.False(t, ok, "short header accepted")
	assert.True(t, strings.HasPrefix(out, "error: "), "no error message: %q", out)

	_, ok = captureStdout(t, func() bool {
		return runHash(context.Background(), env, nil)
	})
	assert.False(t, ok, "missing header accepted")
}

type verifyOutput struct {
	Bits   string `json:"bits"`
	Digest string `json:"digest"`
	Valid  bool   `json:"valid"`
}

func TestRunVerify(t *testing.T) {
	env := testEnvironment(false)

	tests := []struct {
		name   string
		args   []string
		valid  bool
		bits   string
		digest string
	}{
		{"meets own bits", []string{meetHeader}, true, "207fffff", meetDigest},
		{"misses own bits", []string{missHeader}, false, "207fffff", missDigest},
		{"misses explicit bits", []string{meetHeader, "1d00ffff"}, false, "1d00ffff", meetDigest},
	}

	for _, item := range tests {
		out, ok := captureStdout(t, func() bool {
			return runVerify(env, item.args)
		})
		assert.Equal(t, item.valid, ok, "%s: exit status", item.name)

		var v verifyOutput
		err := json.Unmarshal([]byte(out), &v)
		require.NoError(t, err, "%s: output: %q", item.name, out)
		assert.Equal(t, item.valid, v.Valid, "%s: valid", item.name)
		assert.Equal(t, item.bits, v.Bits, "%s: bits", item.name)
		assert.Equal(t, item.digest, v.Digest, "%s: digest", item.name)
	}
}

func TestRunVerifyErrors(t *testing.T) {
	env := testEnvironment(false)

	for _, args := range [][]string{
		nil,
		{meetHeader, "1d00ffff", "extra"},
		{meetHeader[2:]},
		{meetHeader, "xyz"},
	} {
		out, ok := captureStdout(t, func() bool {
			return runVerify(env, args)
		})
		assert.False(t, ok, "args: %q", args)
		assert.True(t, strings.HasPrefix(out, "error: "), "args: %q  output: %q", args, out)
	}
}

func TestRunVerifyQuiet(t *testing.T) {
	env := testEnvironment(true)

	out, ok := captureStdout(t, func() bool {
		return runVerify(env, []string{missHeader})
	})
	assert.False(t, ok, "above target accepted")
	assert.Equal(t, "", out, "quiet printed output")
}
