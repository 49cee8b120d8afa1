// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package powhash - the NUDD proof of work header hash
//
// An 80 byte header is split at byte 60.  Each part is padded to 72
// byte blocks with a fixed constant and hashed by bcrypt under the
// fixed setting "$2a$04$abcdefghijklmnopqrstuu", keeping 23 raw bytes
// per block and repeating until 23 bytes remain.  The two 23 byte
// results are concatenated and truncated to 32 bytes.
//
// The digest is compared with a target as a little endian integer: it
// meets the target when it is less than or equal to it.
package powhash
