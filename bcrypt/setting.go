// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcrypt

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/nuddcoin/nuddhash/fault"
)

// Variant - the letter after "$2" in a setting
type Variant byte

// supported variants
//
// VariantA is correct except for a countermeasure against keys that
// collide with VariantX, VariantX reproduces the historical sign
// extension bug and VariantY is the plain correct algorithm
const (
	VariantA Variant = 'a'
	VariantX Variant = 'x'
	VariantY Variant = 'y'
)

// key setup flags
const (
	flagBug    = 1
	flagSafety = 2
	flagPlain  = 4
)

var variantFlags = map[Variant]byte{
	VariantA: flagSafety,
	VariantX: flagBug,
	VariantY: flagPlain,
}

// String - the variant letter
func (v Variant) String() string {
	return string(v)
}

// sizes of the encoded fields
const (
	SaltSize        = 16
	EncodedSaltSize = 22
	SettingSize     = 7 + EncodedSaltSize
	EncodedHashSize = 31
	HashSize        = SettingSize + EncodedHashSize
)

const alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// bcrypt's radix-64: base64 bit order with its own alphabet and no padding
var radix64 = base64.NewEncoding(alphabet).WithPadding(base64.NoPadding)

// Setting - the parameters of a hash: "$2<variant>$<cost>$<salt>"
type Setting struct {
	Variant Variant
	Cost    int
	Salt    [SaltSize]byte
}

// NewSetting - build a setting from its parts
func NewSetting(variant Variant, cost int, salt []byte) (*Setting, error) {
	if _, ok := variantFlags[variant]; !ok {
		return nil, fault.ErrInvalidVariant
	}
	if cost < MinCost || cost > MaxCost {
		return nil, fault.ErrInvalidCost
	}
	if SaltSize != len(salt) {
		return nil, fault.ErrInvalidSalt
	}
	s := &Setting{
		Variant: variant,
		Cost:    cost,
	}
	copy(s.Salt[:], salt)
	return s, nil
}

// ParseSetting - decode the first 29 characters of a setting or of a
// complete hash string, anything after them is ignored
//
// any two digit cost up to MaxCost is accepted here, the lower bound
// is checked when hashing
func ParseSetting(setting string) (*Setting, error) {
	if len(setting) < SettingSize {
		return nil, fault.ErrInvalidSetting
	}
	if '$' != setting[0] || '2' != setting[1] || '$' != setting[3] || '$' != setting[6] {
		return nil, fault.ErrInvalidSetting
	}

	variant := Variant(setting[2])
	if _, ok := variantFlags[variant]; !ok {
		return nil, fault.ErrInvalidVariant
	}

	c1, c2 := setting[4], setting[5]
	if c1 < '0' || c1 > '9' || c2 < '0' || c2 > '9' {
		return nil, fault.ErrInvalidSetting
	}
	cost := int(c1-'0')*10 + int(c2-'0')
	if cost > MaxCost {
		return nil, fault.ErrInvalidCost
	}

	encoded := setting[7:SettingSize]
	for i := 0; i < len(encoded); i += 1 {
		if strings.IndexByte(alphabet, encoded[i]) < 0 {
			return nil, fault.ErrInvalidSalt
		}
	}
	salt, err := radix64.DecodeString(encoded)
	if nil != err || SaltSize != len(salt) {
		return nil, fault.ErrInvalidSalt
	}

	s := &Setting{
		Variant: variant,
		Cost:    cost,
	}
	copy(s.Salt[:], salt)
	return s, nil
}

// String - canonical text form, unused bits of the final salt
// character are always zero
func (s *Setting) String() string {
	return fmt.Sprintf("$2%c$%02d$%s", s.Variant, s.Cost, radix64.EncodeToString(s.Salt[:]))
}

// salt as big endian words
func (s *Setting) words() [4]uint32 {
	var w [4]uint32
	for i := range w {
		w[i] = binary.BigEndian.Uint32(s.Salt[4*i:])
	}
	return w
}
