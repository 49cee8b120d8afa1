// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/nuddcoin/nuddhash/difficulty"
	"github.com/nuddcoin/nuddhash/fault"
	"github.com/nuddcoin/nuddhash/powhash"
)

// PackedHeader - use fix size array to simplify validation
type PackedHeader [totalBlockSize]byte

// byte sizes for various fields
const (
	VersionSize       = 4                  // Block version number
	PreviousBlockSize = powhash.DigestSize // proof of work digest of the previous block header
	MerkleRootSize    = 32                 // root of the transaction tree
	TimestampSize     = 4                  // Current timestamp as seconds since 1970-01-01T00:00 UTC
	DifficultySize    = 4                  // Current target difficulty in compact format
	NonceSize         = 4                  // 32-bit number (starts at 0)
)

// offsets of the fields
const (
	versionOffset       = 0
	previousBlockOffset = versionOffset + VersionSize
	merkleRootOffset    = previousBlockOffset + PreviousBlockSize
	timestampOffset     = merkleRootOffset + MerkleRootSize
	difficultyOffset    = timestampOffset + TimestampSize
	nonceOffset         = difficultyOffset + DifficultySize

	// to set size of header array
	totalBlockSize = nonceOffset + NonceSize // total bytes in the header
)

// Header - the unpacked header structure
// all integers are little endian when packed
type Header struct {
	Version       uint32         `json:"version"`
	PreviousBlock powhash.Digest `json:"previousBlock"`
	MerkleRoot    powhash.Digest `json:"merkleRoot"`
	Timestamp     uint32         `json:"timestamp"`
	Bits          uint32         `json:"bits"`
	Nonce         NonceType      `json:"nonce"`
}

// PackedHeaderFromBytes - validate length and copy
func PackedHeaderFromBytes(buffer []byte) (PackedHeader, error) {
	packed := PackedHeader{}
	if totalBlockSize != len(buffer) {
		return packed, fault.ErrMalformedHeader
	}
	copy(packed[:], buffer)
	return packed, nil
}

// Unpack - turn a byte array into a record
func (record PackedHeader) Unpack() *Header {
	header := &Header{
		Version:   binary.LittleEndian.Uint32(record[versionOffset:]),
		Timestamp: binary.LittleEndian.Uint32(record[timestampOffset:]),
		Bits:      binary.LittleEndian.Uint32(record[difficultyOffset:]),
		Nonce:     NonceType(binary.LittleEndian.Uint32(record[nonceOffset:])),
	}

	// these are in little endian order so can just copy them
	copy(header.PreviousBlock[:], record[previousBlockOffset:merkleRootOffset])
	copy(header.MerkleRoot[:], record[merkleRootOffset:timestampOffset])

	return header
}

// Digest - proof of work digest for a packed header
func (record PackedHeader) Digest() (powhash.Digest, error) {
	return powhash.Sum(record[:])
}

// Nonce - the packed nonce
func (record PackedHeader) Nonce() NonceType {
	return NonceType(binary.LittleEndian.Uint32(record[nonceOffset:]))
}

// SetNonce - replace the packed nonce in place
func (record *PackedHeader) SetNonce(nonce NonceType) {
	binary.LittleEndian.PutUint32(record[nonceOffset:], uint32(nonce))
}

// Bits - the packed difficulty
func (record PackedHeader) Bits() uint32 {
	return binary.LittleEndian.Uint32(record[difficultyOffset:])
}

// Check - verify that the header's digest meets its own difficulty
func (record PackedHeader) Check() (powhash.Digest, error) {
	d, err := difficulty.NewFromBits(record.Bits())
	if nil != err {
		return powhash.Digest{}, err
	}
	digest, err := record.Digest()
	if nil != err {
		return digest, err
	}
	if !d.Meets(digest) {
		return digest, fault.ErrDigestAboveTarget
	}
	return digest, nil
}

// Pack - turn a record into an array of bytes
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint32(buffer[versionOffset:], header.Version)

	// these are in little endian order so can just copy them
	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])

	binary.LittleEndian.PutUint32(buffer[timestampOffset:], header.Timestamp)
	binary.LittleEndian.PutUint32(buffer[difficultyOffset:], header.Bits)
	binary.LittleEndian.PutUint32(buffer[nonceOffset:], uint32(header.Nonce))

	return buffer
}
