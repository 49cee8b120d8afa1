// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  The hash
// errors are classified so that a caller can tell a rejected header
// (length) from a bad parameter (invalid) from an engine bug
// (process).
package fault
