// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/nuddcoin/nuddhash/fault"
)

// DigestSize - number of bytes in the digest
const DigestSize = 32

// Digest - type for a digest
// stored as little endian byte array
// represented as big endian hex value for print
// represented as little endian hex text for JSON encoding
type Digest [DigestSize]byte

// Cmp - compare the digest, as a little endian integer, with a big.Int
func (digest Digest) Cmp(target *big.Int) int {
	return digest.BigInt().Cmp(target)
}

// BigInt - the digest as an unsigned integer
func (digest Digest) BigInt() *big.Int {
	return new(big.Int).SetBytes(reversed(digest))
}

// internal function to return a reversed byte order copy of a digest
func reversed(d Digest) []byte {
	result := make([]byte, DigestSize)
	for i := 0; i < DigestSize; i += 1 {
		result[i] = d[DigestSize-1-i]
	}
	return result
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (digest Digest) String() string {
	return hex.EncodeToString(reversed(digest))
}

// GoString - convert a binary digest to big endian hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<NUDD:" + hex.EncodeToString(reversed(digest)) + ">"
}

// Scan - convert a big endian hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	buffer := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	if DigestSize != byteCount {
		return fault.ErrDigestLength
	}

	for i, v := range buffer[:byteCount] {
		digest[DigestSize-1-i] = v
	}
	return nil
}

// MarshalText - convert digest to little endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert little endian hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DigestSize) != len(s) {
		return fault.ErrDigestLength
	}
	_, err := hex.Decode(digest[:], s)
	return err
}

// DigestFromBytes - convert and validate little endian binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestSize != len(buffer) {
		return fault.ErrDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

// MeetsTarget - true if the digest, read as a little endian 256 bit
// unsigned integer, is not greater than the target
//
// a missing or negative target is never met
func MeetsTarget(digest Digest, target *big.Int) bool {
	if nil == target || target.Sign() < 0 {
		return false
	}
	return digest.Cmp(target) <= 0
}
