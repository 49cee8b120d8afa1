// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcrypt

import (
	"encoding/binary"

	"github.com/nuddcoin/nuddhash/fault"
)

// cost limits, the schedule runs 2^cost times
const (
	MinCost = 4
	MaxCost = 31
)

// output sizes
//
// the encoded hash only carries the first 23 of the 24 raw bytes
const (
	RawSize       = 24
	PublishedSize = RawSize - 1
)

// bytes of key material the schedule can consume
const MaxKeySize = 4 * pSize

// "OrpheanBeholderScryDoubt"
var magic = [6]uint32{
	0x4f727068, 0x65616e42,
	0x65686f6c, 0x64657253,
	0x63727944, 0x6f756274,
}

const magicRounds = 64

// Raw - run the expensive key schedule for key under setting and
// return all 24 bytes of the encrypted magic text
//
// the key is read cyclically with a terminating zero byte appended,
// so any length is accepted and only the first 72 bytes take effect
func Raw(key []byte, setting *Setting) ([RawSize]byte, error) {
	return raw(key, setting, MinCost)
}

// Sum - the published 23 byte hash of key under setting
func Sum(key []byte, setting *Setting) ([PublishedSize]byte, error) {
	var digest [PublishedSize]byte
	r, err := raw(key, setting, MinCost)
	if nil != err {
		return digest, err
	}
	copy(digest[:], r[:])
	return digest, nil
}

// Crypt - the standard 60 character hash string of key under setting
func Crypt(key []byte, setting string) (string, error) {
	return crypt(key, setting, MinCost)
}

// Verify - check a key against a hash string produced by Crypt
func Verify(key []byte, hash string) bool {
	if HashSize != len(hash) {
		return false
	}
	h, err := Crypt(key, hash)
	if nil != err {
		return false
	}
	return h == hash
}

func crypt(key []byte, setting string, minCost int) (string, error) {
	s, err := ParseSetting(setting)
	if nil != err {
		return "", err
	}
	r, err := raw(key, s, minCost)
	if nil != err {
		return "", err
	}
	return s.String() + radix64.EncodeToString(r[:PublishedSize]), nil
}

func raw(key []byte, setting *Setting, minCost int) ([RawSize]byte, error) {
	var result [RawSize]byte

	if nil == setting {
		return result, fault.ErrInvalidSetting
	}
	if setting.Cost < minCost || setting.Cost > MaxCost {
		return result, fault.ErrInvalidCost
	}
	flags, ok := variantFlags[setting.Variant]
	if !ok {
		return result, fault.ErrInvalidVariant
	}

	salt := setting.words()
	expanded, initial := setKey(key, flags)

	st := initialState
	st.p = initial
	st.rekeySalted(&salt)

	for count := uint64(1) << uint(setting.Cost); count > 0; count -= 1 {
		st.xorKey(&expanded)
		st.rekey()
		st.xorSalt(&salt)
		st.rekey()
	}

	for i := 0; i < len(magic); i += 2 {
		l, r := magic[i], magic[i+1]
		for j := 0; j < magicRounds; j += 1 {
			l, r = st.encrypt(l, r)
		}
		binary.BigEndian.PutUint32(result[4*i:], l)
		binary.BigEndian.PutUint32(result[4*i+4:], r)
	}
	return result, nil
}

// setKey - turn the key into the expanded schedule used in the main
// loop and the initial subkeys
//
// both the correct and the sign extending readings of the key are
// computed; flagBug selects the latter, flagSafety flips bit 16 of
// the first initial subkey when the two readings agree even though
// sign extension occurred
func setKey(key []byte, flags byte) (expanded [pSize]uint32, initial [pSize]uint32) {
	bug := flags&flagBug != 0
	safety := uint32(flags&flagSafety) << 15

	sign := uint32(0)
	diff := uint32(0)

	n := 0
	for i := 0; i < pSize; i += 1 {
		correct := uint32(0)
		buggy := uint32(0)
		for j := 0; j < 4; j += 1 {
			c := byte(0)
			if n < len(key) {
				c = key[n]
			}
			correct = correct<<8 | uint32(c)
			buggy = buggy<<8 | uint32(int32(int8(c)))
			if 0 != j {
				sign |= buggy & 0x80
			}
			if n >= len(key) {
				n = 0
			} else {
				n += 1
			}
		}
		diff |= correct ^ buggy

		word := correct
		if bug {
			word = buggy
		}
		expanded[i] = word
		initial[i] = initialState.p[i] ^ word
	}

	diff |= diff >> 16
	diff &= 0xffff
	diff += 0xffff // bit 16 set iff diff was non-zero
	sign <<= 9
	sign &= ^diff & safety

	initial[0] ^= sign
	return expanded, initial
}
