// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bcrypt - the Blowfish based bcrypt engine
//
// Implements the "$2a$", "$2x$" and "$2y$" revisions of the
// eksblowfish key schedule.  Besides the usual 60 character hash
// string the raw cipher output is available, which is what the proof
// of work adapter consumes.
//
// All tables are read only and each call works on its own copy of the
// cipher state, so calls may run concurrently.
package bcrypt
