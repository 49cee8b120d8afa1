// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"strings"

	"golang.org/x/crypto/scrypt"

	"github.com/nuddcoin/nuddhash/fault"
)

// Algorithm - selects a header hash
type Algorithm int

// Bcrypt is the proof of work; Scrypt is a standard scrypt header hash
// kept for comparison tooling only
const (
	Bcrypt Algorithm = iota
	Scrypt
)

// HashFunc - signature of a header hash
type HashFunc func(header []byte) (Digest, error)

// Sum - call the function, so that a bare HashFunc can stand in
// where a Cache is accepted
func (f HashFunc) Sum(header []byte) (Digest, error) {
	return f(header)
}

// legacy scrypt parameters
const (
	scryptN = 1024
	scryptR = 1
	scryptP = 1
)

// ParseAlgorithm - algorithm from its name
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "", "bcrypt":
		return Bcrypt, nil
	case "scrypt":
		return Scrypt, nil
	default:
		return Bcrypt, fault.ErrInvalidAlgorithm
	}
}

func (a Algorithm) String() string {
	switch a {
	case Bcrypt:
		return "bcrypt"
	case Scrypt:
		return "scrypt"
	default:
		return "unknown"
	}
}

// Hasher - the hash function for an algorithm
func Hasher(a Algorithm) (HashFunc, error) {
	switch a {
	case Bcrypt:
		return Sum, nil
	case Scrypt:
		return ScryptSum, nil
	default:
		return nil, fault.ErrInvalidAlgorithm
	}
}

// ScryptSum - standard scrypt (RFC 7914) of a header using the header
// as its own salt
//
// the parameters match the old scrypt_1024_1_1_256 header hash but
// its output does not, that routine was built with an empty HMAC and
// its digests cannot be reproduced
func ScryptSum(header []byte) (Digest, error) {
	var digest Digest
	if HeaderSize != len(header) {
		return digest, fault.ErrMalformedHeader
	}
	hash, err := scrypt.Key(header, header, scryptN, scryptR, scryptP, DigestSize)
	if nil != err {
		return digest, fault.ErrInternalComputation
	}
	copy(digest[:], hash)
	return digest, nil
}
