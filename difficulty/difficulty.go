// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"sync"

	"github.com/nuddcoin/nuddhash/fault"
	"github.com/nuddcoin/nuddhash/powhash"
)

// DefaultUint32 - the bits value of difficulty one
const DefaultUint32 = 0x1d00ffff

// Difficulty - a proof of work target with its compact and pool
// difficulty forms
type Difficulty struct {
	sync.RWMutex

	big   big.Int // master value 256 bit integer in pool difficulty form
	pdiff float64 // cache: pool difficulty
	bits  uint32  // cache: bitcoin difficulty
}

// constOne is for "pdiff" calculation as defined by:
//   https://en.bitcoin.it/wiki/Difficulty#How_is_difficulty_calculated.3F_What_is_the_difference_between_bdiff_and_pdiff.3F
//
// pool difficulty of 1
var constOne = []byte{
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// number of decimal places
const constScale = 1000000000000

var scale big.Int // 10 times bigger for rounding
var one big.Int   // for reciprocal calculation

func init() {
	one.SetBytes(constOne)
	scale.SetUint64(10 * constScale)
}

// New - create a difficulty with the default value
func New() *Difficulty {
	d := new(Difficulty)
	d.internalSetToUnity()
	return d
}

// NewFromBits - create a difficulty from a compact value
func NewFromBits(u uint32) (*Difficulty, error) {
	d := new(Difficulty)
	if err := d.SetBits(u); nil != err {
		return nil, err
	}
	return d, nil
}

// ParseBits - compact value from its 8 digit big endian hex form
func ParseBits(s string) (uint32, error) {
	if 8 != len(s) {
		return 0, fault.ErrInvalidBits
	}
	u, err := strconv.ParseUint(s, 16, 32)
	if nil != err {
		return 0, fault.ErrInvalidBits
	}
	return uint32(u), nil
}

// Pdiff - get 1/difficulty as normal floating-point value
// this is the Pdiff value
func (difficulty *Difficulty) Pdiff() float64 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.pdiff
}

// Bits - get difficulty as short packed value
func (difficulty *Difficulty) Bits() uint32 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.bits
}

// String - get difficulty as the big endian hex encodes short packed value
func (difficulty *Difficulty) String() string {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return fmt.Sprintf("%08x", difficulty.bits)
}

// GoString - for the %#v format use 256 bit value
func (difficulty *Difficulty) GoString() string {
	return fmt.Sprintf("%064x", difficulty.BigInt())
}

// BigInt - the target as a new big.Int
func (difficulty *Difficulty) BigInt() *big.Int {
	difficulty.RLock()
	defer difficulty.RUnlock()
	d := new(big.Int)
	return d.Set(&difficulty.big)
}

// Meets - true if a digest is on or below the target
func (difficulty *Difficulty) Meets(digest powhash.Digest) bool {
	return powhash.MeetsTarget(digest, difficulty.BigInt())
}

// reset difficulty to 1.0
// ensure write locked before calling this
func (difficulty *Difficulty) internalSetToUnity() {
	difficulty.big.Set(&one)
	difficulty.pdiff = 1.0
	difficulty.bits = DefaultUint32
}

// SetBits - set from a 32 bit word (bits)
//
// the value is unchanged on error
func (difficulty *Difficulty) SetBits(u uint32) error {

	// quick setup for default
	if DefaultUint32 == u {
		difficulty.Lock()
		defer difficulty.Unlock()
		difficulty.internalSetToUnity()
		return nil
	}

	exponent := 8 * (int(u>>24)&0xff - 3)
	mantissa := int64(u & 0x00ffffff)

	if mantissa > 0x7fffff || mantissa < 0x008000 || exponent < 0 {
		return fault.ErrInvalidBits
	}
	d := big.NewInt(mantissa)
	d.Lsh(d, uint(exponent))

	// compute 1/d
	q := new(big.Int)
	r := new(big.Int)
	q.DivMod(&one, d, r)
	r.Mul(r, &scale) // note: big scale == 10 * constScale
	r.Div(r, d)

	result := float64(q.Uint64())
	result += float64((r.Uint64()+5)/10) / constScale

	// modify cache
	difficulty.Lock()
	defer difficulty.Unlock()

	difficulty.big.Set(d)
	difficulty.pdiff = result
	difficulty.bits = u

	return nil
}

// SetBytes - set from four little endian bytes
func (difficulty *Difficulty) SetBytes(b []byte) error {
	if len(b) < 4 {
		return fault.ErrInvalidBits
	}
	return difficulty.SetBits(binary.LittleEndian.Uint32(b))
}

// SetPdiff - set from a pool difficulty, values below one give unity
func (difficulty *Difficulty) SetPdiff(f float64) float64 {
	difficulty.Lock()
	defer difficulty.Unlock()
	return difficulty.internalSetPdiff(f)
}

// ensure write locked before calling this
func (difficulty *Difficulty) internalSetPdiff(f float64) float64 {
	if f <= 1.0 || math.IsNaN(f) || math.IsInf(f, 0) {
		difficulty.internalSetToUnity()
		return 1.0
	}
	difficulty.pdiff = f

	intPart := math.Trunc(f)
	fracPart := math.Trunc((f - intPart) * 10 * constScale)

	q := new(big.Int)
	r := new(big.Int)

	q.SetUint64(uint64(intPart))
	r.SetUint64(uint64(fracPart))
	q.Mul(&scale, q)
	q.Add(q, r)

	q.DivMod(&one, q, r)

	q.Mul(&scale, q)
	q.Add(q, r)
	difficulty.big.Set(q)

	difficulty.bits = compact(q.Bytes())
	return difficulty.pdiff
}

// pack a big endian target into the short form, rounding the three
// byte mantissa and keeping its sign bit clear
func compact(buffer []byte) uint32 {
	for i, b := range buffer {
		if 0 != 0x80&b {
			e := uint32(len(buffer) - i + 1)
			u := e<<24 | uint32(b)<<8
			if i+1 < len(buffer) {
				u |= uint32(buffer[i+1])
			}
			if i+2 < len(buffer) && 0 != 0x80&buffer[i+2] {
				if 0 == 0x00ff000&(u+1) {
					u += 1
				}
			}
			return u
		} else if 0 != b {
			e := uint32(len(buffer) - i)
			u := e<<24 | uint32(b)<<16
			if i+1 < len(buffer) {
				u |= uint32(buffer[i+1]) << 8
			}
			if i+2 < len(buffer) {
				u |= uint32(buffer[i+2])
			}
			if i+3 < len(buffer) && 0 != 0x80&buffer[i+3] {
				if 0 == 0x00800000&(u+1) {
					u += 1
				}
			}
			return u
		}
	}
	return 0
}
