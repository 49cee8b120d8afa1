// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuddcoin/nuddhash/fault"
)

func TestLogChannel(t *testing.T) {
	dir, err := ioutil.TempDir("", "fault-test")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	require.NoError(t, err, "logger")
	defer logger.Finalise()

	assert.Equal(t, fault.ErrNotInitialised, fault.Finalise(), "finalise before initialise")
	require.NoError(t, fault.Initialise(), "initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")

	assert.NotPanics(t, func() { fault.PanicIfError("no error", nil) }, "nil error")
	assert.Panics(t, func() { fault.PanicIfError("some error", errors.New("failed")) }, "error")
	assert.Panics(t, func() { fault.Panicf("value: %d", 42) }, "panicf")

	assert.NoError(t, fault.Finalise(), "finalise")
}
