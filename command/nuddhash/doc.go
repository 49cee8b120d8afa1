// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Proof-of-work tool for NUDD block headers
//
// This program computes and checks the bcrypt based proof-of-work
// digest of 80 byte block headers, searches for nonces that meet a
// header's difficulty and measures the hash rate.
//
// headers are given as 160 hexadecimal characters in their packed
// (little endian field) order and digests are printed as the
// hexadecimal of their little endian byte sequence.
package main
