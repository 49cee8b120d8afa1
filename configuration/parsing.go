// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/nuddcoin/nuddhash/powhash"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultAlgorithm        = "bcrypt"
	defaultMaxCPUUsage      = 50
	defaultProgressInterval = "10s"
	defaultCacheExpiry      = "10m"
	defaultCacheCleanup     = "20m"

	defaultLogDirectory = "log"
	defaultLogFile      = "nuddhash.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"proofer":         "info",
		logger.DefaultTag: "critical",
	}
)

// CacheType - optional digest memoisation
type CacheType struct {
	Enable  bool   `gluamapper:"enable" json:"enable"`
	Expiry  string `gluamapper:"expiry" json:"expiry"`
	Cleanup string `gluamapper:"cleanup" json:"cleanup"`
}

// Configuration - everything a config file may set
type Configuration struct {
	DataDirectory    string               `gluamapper:"data_directory" json:"data_directory"`
	Threads          int                  `gluamapper:"threads" json:"threads"`
	MaxCPUUsage      int                  `gluamapper:"max_cpu_usage" json:"max_cpu_usage"`
	Algorithm        string               `gluamapper:"algorithm" json:"algorithm"`
	ProgressInterval string               `gluamapper:"progress_interval" json:"progress_interval"`
	Cache            CacheType            `gluamapper:"cache" json:"cache"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given, logging goes
// to the working directory
func Default() *Configuration {

	// the mapper writes into an existing map so never share the defaults
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Configuration{
		DataDirectory:    defaultDataDirectory,
		Threads:          0, // derive from MaxCPUUsage
		MaxCPUUsage:      defaultMaxCPUUsage,
		Algorithm:        defaultAlgorithm,
		ProgressInterval: defaultProgressInterval,

		Cache: CacheType{
			Enable:  false,
			Expiry:  defaultCacheExpiry,
			Cleanup: defaultCacheCleanup,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Resolve(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// Resolve - validate values and turn all paths absolute relative to
// baseDirectory, creating the log directory
func (options *Configuration) Resolve(baseDirectory string) error {

	options.Algorithm = strings.ToLower(options.Algorithm)
	if _, err := powhash.ParseAlgorithm(options.Algorithm); nil != err {
		return fmt.Errorf("Algorithm: %q is not supported", options.Algorithm)
	}

	if options.MaxCPUUsage <= 0 || options.MaxCPUUsage > 100 {
		options.MaxCPUUsage = defaultMaxCPUUsage
	}
	if options.Threads < 0 {
		return fmt.Errorf("Threads: %d is negative", options.Threads)
	}

	for _, d := range []string{options.ProgressInterval, options.Cache.Expiry, options.Cache.Cleanup} {
		if _, err := time.ParseDuration(d); nil != err {
			return fmt.Errorf("Duration: %q is invalid: %s", d, err)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = baseDirectory // same directory as the configuration file
	}
	options.DataDirectory = EnsureAbsolute(baseDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// the log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}

// ThreadCount - configured threads, or a share of the CPUs given by
// MaxCPUUsage, never less than one
func (options *Configuration) ThreadCount() int {
	return threadCount(options.Threads, options.MaxCPUUsage, runtime.NumCPU())
}

func threadCount(threads int, usage int, cpus int) int {
	if threads > 0 {
		return threads
	}
	n := cpus * usage / 100
	if n < 1 {
		return 1
	}
	if n > cpus {
		return cpus
	}
	return n
}

// Progress - interval between progress log lines
func (options *Configuration) Progress() time.Duration {
	d, _ := time.ParseDuration(options.ProgressInterval)
	return d
}

// CacheTimes - expiry and cleanup of the digest cache
func (options *Configuration) CacheTimes() (time.Duration, time.Duration) {
	expiry, _ := time.ParseDuration(options.Cache.Expiry)
	cleanup, _ := time.ParseDuration(options.Cache.Cleanup)
	return expiry, cleanup
}

// EnsureAbsolute - ensure the path is absolute
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
