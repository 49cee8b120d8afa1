// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/nuddcoin/nuddhash/background"
	"github.com/nuddcoin/nuddhash/bcrypt"
	"github.com/nuddcoin/nuddhash/blockrecord"
	"github.com/nuddcoin/nuddhash/configuration"
	"github.com/nuddcoin/nuddhash/counter"
	"github.com/nuddcoin/nuddhash/difficulty"
	"github.com/nuddcoin/nuddhash/fault"
	"github.com/nuddcoin/nuddhash/powhash"
	"github.com/nuddcoin/nuddhash/proofer"
)

const defaultBenchCount = 64

// shared state for commands
type environment struct {
	program string
	config  *configuration.Configuration
	quiet   bool
	log     *logger.L
}

// command handler, returns false on any failure
func processCommand(ctx context.Context, env *environment, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "hash", "h":
		return runHash(ctx, env, arguments)

	case "verify", "check":
		return runVerify(env, arguments)

	case "crypt":
		return runCrypt(env, arguments)

	case "selftest", "test":
		return runSelfTest(env)

	case "grind", "mine":
		return runGrind(ctx, env, arguments)

	case "bench", "b":
		return runBench(ctx, env, arguments)

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--threads=N] [--algorithm=NAME] [command|help] arguments...\n", env.program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (?)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  hash HEADER...             (h)      - digest of each 160 hex character header\n")
		fmt.Printf("  verify HEADER [BITS]       (check)  - check header digest against BITS or its own bits\n")
		fmt.Printf("  crypt KEY SETTING                   - bcrypt hash string of KEY under SETTING\n")
		fmt.Printf("  selftest                   (test)   - verify the bcrypt engine and the digest\n")
		fmt.Printf("\n")

		fmt.Printf("  grind HEADER [FIRST [COUNT]] (mine) - search for a nonce meeting the header bits\n")
		fmt.Printf("  bench [COUNT]              (b)      - hash COUNT headers and display the rate\n")
		fmt.Printf("\n")

		return "help" == command || "?" == command
	}
}

// the configured header hash, optionally memoised
func (env *environment) hasher() (powhash.HashFunc, error) {
	algorithm, err := powhash.ParseAlgorithm(env.config.Algorithm)
	if nil != err {
		return nil, err
	}
	hash, err := powhash.Hasher(algorithm)
	if nil != err {
		return nil, err
	}
	if env.config.Cache.Enable {
		expiry, cleanup := env.config.CacheTimes()
		c := powhash.NewCache(hash, expiry, cleanup)
		return c.Sum, nil
	}
	return hash, nil
}

func parseHeader(s string) (blockrecord.PackedHeader, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return blockrecord.PackedHeader{}, fault.ErrInvalidHex
	}
	return blockrecord.PackedHeaderFromBytes(buffer)
}

func runHash(ctx context.Context, env *environment, arguments []string) bool {
	if 0 == len(arguments) {
		fmt.Printf("error: missing header\n")
		return false
	}

	headers := make([][]byte, len(arguments))
	for i, s := range arguments {
		packed, err := parseHeader(s)
		if nil != err {
			fmt.Printf("error: header[%d]: %s\n", i, err)
			return false
		}
		headers[i] = packed[:]
	}

	hash, err := env.hasher()
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	digests, err := powhash.SumAll(ctx, hash, headers, env.config.ThreadCount())
	if nil != err {
		env.log.Errorf("hash error: %s", err)
		fmt.Printf("error: %s\n", err)
		return false
	}

	for _, d := range digests {
		fmt.Printf("%s\n", hex.EncodeToString(d[:]))
	}
	return true
}

func runVerify(env *environment, arguments []string) bool {
	if len(arguments) < 1 || len(arguments) > 2 {
		fmt.Printf("error: verify requires HEADER [BITS]\n")
		return false
	}
	packed, err := parseHeader(arguments[0])
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	// an explicit target replaces the header's own bits
	bits := packed.Bits()
	if 2 == len(arguments) {
		bits, err = difficulty.ParseBits(arguments[1])
		if nil != err {
			fmt.Printf("error: %s\n", err)
			return false
		}
	}
	target, err := difficulty.NewFromBits(bits)
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	hash, err := env.hasher()
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}
	digest, err := hash(packed[:])
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}
	valid := target.Meets(digest)

	if !env.quiet {
		printJson("", struct {
			Header *blockrecord.Header `json:"header"`
			Bits   string              `json:"bits"`
			Digest powhash.Digest      `json:"digest"`
			Valid  bool                `json:"valid"`
		}{
			Header: packed.Unpack(),
			Bits:   target.String(),
			Digest: digest,
			Valid:  valid,
		})
	}
	if !valid {
		env.log.Infof("verify: nonce: 0x%08x  digest: %s  above target: %s", uint32(packed.Nonce()), digest, target)
	}
	return valid
}

func runCrypt(env *environment, arguments []string) bool {
	if 2 != len(arguments) {
		fmt.Printf("error: crypt requires KEY and SETTING\n")
		return false
	}
	s, err := bcrypt.Crypt([]byte(arguments[0]), arguments[1])
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}
	fmt.Printf("%s\n", s)
	return true
}

func runSelfTest(env *environment) bool {
	if err := powhash.SelfTest(); nil != err {
		env.log.Criticalf("self test: %s", err)
		fmt.Printf("self test: FAIL: %s\n", err)
		return false
	}
	if !env.quiet {
		fmt.Printf("self test: PASS\n")
	}
	return true
}

func runGrind(ctx context.Context, env *environment, arguments []string) bool {
	if len(arguments) < 1 || len(arguments) > 3 {
		fmt.Printf("error: grind requires HEADER [FIRST [COUNT]]\n")
		return false
	}

	packed, err := parseHeader(arguments[0])
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	first := uint64(0)
	count := uint64(0)
	if len(arguments) > 1 {
		first, err = strconv.ParseUint(arguments[1], 0, 32)
		if nil != err {
			fmt.Printf("error: invalid first nonce: %q\n", arguments[1])
			return false
		}
	}
	if len(arguments) > 2 {
		count, err = strconv.ParseUint(arguments[2], 0, 64)
		if nil != err {
			fmt.Printf("error: invalid nonce count: %q\n", arguments[2])
			return false
		}
	}

	hash, err := env.hasher()
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	p, err := proofer.New(hash, env.config.ThreadCount(), env.config.Progress(), logger.New("proofer"))
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	reporter := proofer.NewReporter(p.Meter(), env.config.Progress(), logger.New("reporter"))
	processes := background.Start(background.Processes{reporter}, nil)
	defer processes.Stop()

	result, err := p.Search(ctx, packed, blockrecord.NonceType(first), count)
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	printJson("", result)
	return true
}

func runBench(ctx context.Context, env *environment, arguments []string) bool {
	n := defaultBenchCount
	if len(arguments) > 0 {
		i, err := strconv.Atoi(arguments[0])
		if nil != err || i < 1 {
			fmt.Printf("error: invalid count: %q\n", arguments[0])
			return false
		}
		n = i
	}

	hash, err := env.hasher()
	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	// distinct headers so a cache cannot help
	headers := make([][]byte, n)
	for i := range headers {
		h := make([]byte, powhash.HeaderSize)
		binary.LittleEndian.PutUint64(h[powhash.HeaderSize-8:], uint64(i))
		headers[i] = h
	}

	meter := counter.NewMeter()
	counted := func(header []byte) (powhash.Digest, error) {
		d, err := hash(header)
		if nil == err {
			meter.Mark(1)
		}
		return d, err
	}

	reporter := proofer.NewReporter(meter, env.config.Progress(), logger.New("reporter"))
	processes := background.Start(background.Processes{reporter}, nil)

	threads := env.config.ThreadCount()
	_, err = powhash.SumAll(ctx, counted, headers, threads)
	processes.Stop()

	if nil != err {
		fmt.Printf("error: %s\n", err)
		return false
	}

	printJson("", struct {
		Algorithm string  `json:"algorithm"`
		Threads   int     `json:"threads"`
		Hashes    uint64  `json:"hashes"`
		Seconds   float64 `json:"seconds"`
		Rate      float64 `json:"rate"`
	}{
		Algorithm: env.config.Algorithm,
		Threads:   threads,
		Hashes:    meter.Count(),
		Seconds:   meter.Elapsed().Seconds(),
		Rate:      meter.Rate(),
	})
	return true
}
