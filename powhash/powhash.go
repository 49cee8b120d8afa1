// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"github.com/nuddcoin/nuddhash/bcrypt"
	"github.com/nuddcoin/nuddhash/fault"
)

// consensus parameters, changing any of these forks the chain
const (
	// bytes in a block header
	HeaderSize = 80

	// key bytes per engine call and bytes kept from each call
	BlockSize = bcrypt.MaxKeySize
	ChunkSize = bcrypt.PublishedSize

	// fixed variant, cost and salt of every engine call
	Cost    = bcrypt.MinCost
	Setting = "$2a$04$abcdefghijklmnopqrstuu"
)

// fills every engine block beyond the end of its input
var initialiser = [BlockSize]byte{
	0x03, 0xd5, 0xef, 0xf1, 0x34, 0xac, 0x9c, 0xda,
	0x1f, 0xa3, 0x93, 0x38, 0x2e, 0x44, 0x93, 0x23,
	0x81, 0xb9, 0x2a, 0xf1, 0xc1, 0x38, 0x4f, 0xd1,
	0x75, 0xae, 0x58, 0x52, 0xfa, 0xd2, 0x90, 0xf1,
	0xb6, 0x77, 0x24, 0xc2, 0x78, 0xbf, 0xa1, 0xe6,
	0x3f, 0x14, 0x1b, 0xa3, 0x90, 0x55, 0xad, 0xa9,
	0x71, 0x10, 0xa6, 0x1a, 0x9d, 0x15, 0x38, 0xe0,
	0x00, 0xc1, 0x6d, 0x9c, 0x1f, 0x3c, 0x89, 0xac,
	0x13, 0x5a, 0x56, 0x7d, 0x8d, 0x11, 0x85, 0x0b,
}

var setting *bcrypt.Setting

func init() {
	s, err := bcrypt.ParseSetting(Setting)
	fault.PanicIfError("powhash: pinned setting", err)
	if Cost != s.Cost {
		fault.Panicf("powhash: pinned setting cost: %d expected: %d", s.Cost, Cost)
	}
	setting = s
}

// Sum - the proof of work digest of a block header
//
// the header must be exactly HeaderSize bytes
func Sum(header []byte) (Digest, error) {
	if HeaderSize != len(header) {
		return Digest{}, fault.ErrMalformedHeader
	}
	return Extend(header)
}

// Extend - the 32 byte digest of an input of any length
//
// the first three quarters and the rest are compressed separately and
// the concatenation is truncated
func Extend(input []byte) (Digest, error) {
	var digest Digest

	split := len(input) * 3 / 4
	left, err := Iterated(input[:split])
	if nil != err {
		return digest, err
	}
	right, err := Iterated(input[split:])
	if nil != err {
		return digest, err
	}

	n := copy(digest[:], left[:])
	copy(digest[n:], right[:])
	return digest, nil
}

// Iterated - compress an input of any length to ChunkSize bytes
//
// the input is cut into BlockSize pieces, the last one completed from
// the padding; an input that is empty or a whole number of blocks gets
// an extra block of padding alone.  Each block is hashed and the
// published bytes are concatenated, repeating until the result is no
// longer than ChunkSize.
func Iterated(input []byte) ([ChunkSize]byte, error) {
	var result [ChunkSize]byte

	current := input
	for {
		output := make([]byte, 0, (len(current)/BlockSize+1)*ChunkSize)
		block := make([]byte, 0, BlockSize)

		for begin := 0; begin <= len(current); begin += BlockSize {
			initialised := begin + BlockSize
			if initialised > len(current) {
				initialised = len(current)
			}

			block = append(block[:0], current[begin:initialised]...)
			block = append(block, initialiser[initialised-begin:]...)
			if BlockSize != len(block) {
				return result, fault.ErrInternalComputation
			}

			chunk, err := bcrypt.Sum(block, setting)
			if nil != err {
				return result, fault.ErrInternalComputation
			}
			output = append(output, chunk[:]...)
		}

		current = output
		if len(current) <= ChunkSize {
			break
		}
	}

	if ChunkSize != len(current) {
		return result, fault.ErrInternalComputation
	}
	copy(result[:], current)
	return result, nil
}
