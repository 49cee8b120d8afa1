// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcrypt

// Blowfish parameters
const (
	rounds = 16
	pSize  = rounds + 2
)

// cipher state: subkeys and S-boxes
//
// every hash computation owns a private copy
type state struct {
	p [pSize]uint32
	s [4][256]uint32
}

func (st *state) f(x uint32) uint32 {
	return ((st.s[0][x>>24] + st.s[1][(x>>16)&0xff]) ^ st.s[2][(x>>8)&0xff]) + st.s[3][x&0xff]
}

// encrypt a single 64 bit block held as two big endian words
func (st *state) encrypt(l uint32, r uint32) (uint32, uint32) {
	l ^= st.p[0]
	for i := 1; i < rounds; i += 2 {
		r ^= st.f(l) ^ st.p[i]
		l ^= st.f(r) ^ st.p[i+1]
	}
	r ^= st.p[rounds+1]
	return r, l
}

// replace all subkeys and S-box entries by chained encryption of a
// zero block
func (st *state) rekey() {
	l, r := uint32(0), uint32(0)
	for i := 0; i < pSize; i += 2 {
		l, r = st.encrypt(l, r)
		st.p[i] = l
		st.p[i+1] = r
	}
	for b := range st.s {
		for i := 0; i < len(st.s[b]); i += 2 {
			l, r = st.encrypt(l, r)
			st.s[b][i] = l
			st.s[b][i+1] = r
		}
	}
}

// the salted variant of rekey: before each encryption the chained
// block is mixed with alternate halves of the salt
func (st *state) rekeySalted(salt *[4]uint32) {
	l, r := uint32(0), uint32(0)
	half := 0
	for i := 0; i < pSize; i += 2 {
		l ^= salt[half]
		r ^= salt[half+1]
		half ^= 2
		l, r = st.encrypt(l, r)
		st.p[i] = l
		st.p[i+1] = r
	}
	for b := range st.s {
		for i := 0; i < len(st.s[b]); i += 2 {
			l ^= salt[half]
			r ^= salt[half+1]
			half ^= 2
			l, r = st.encrypt(l, r)
			st.s[b][i] = l
			st.s[b][i+1] = r
		}
	}
}

// mix a key schedule into the subkeys
func (st *state) xorKey(key *[pSize]uint32) {
	for i := range st.p {
		st.p[i] ^= key[i]
	}
}

// mix the salt into the subkeys, the four salt words repeat
func (st *state) xorSalt(salt *[4]uint32) {
	for i := range st.p {
		st.p[i] ^= salt[i&3]
	}
}
