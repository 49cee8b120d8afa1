// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proofer_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/nuddcoin/nuddhash/blockrecord"
)

const (
	testCategory = "proofer-test"
	testBits     = 0x207fffff
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "proofer-test")
	if nil != err {
		fmt.Fprintf(os.Stderr, "temp dir error: %s\n", err)
		os.Exit(1)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		fmt.Fprintf(os.Stderr, "logger error: %s\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func testHeader() blockrecord.PackedHeader {
	h := &blockrecord.Header{
		Version:   1,
		Timestamp: 1600000000,
		Bits:      testBits,
	}
	for i := range h.MerkleRoot {
		h.MerkleRoot[i] = byte(i)
	}
	return h.Pack()
}
