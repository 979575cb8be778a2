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

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/arenatree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "arenatree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultDebounce = 2 // seconds
	maximumWorkers  = 256
)

// Configuration - settings for the arenatree command
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Workers       int                  `gluamapper:"workers" json:"workers"`
	Debounce      int                  `gluamapper:"debounce" json:"debounce"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
//
// an empty file name gives the defaults, with the data directory
// in the system temporary directory
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Workers:       runtime.NumCPU(),
		Debounce:      defaultDebounce,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}

	// absolute path to the main directory
	baseDirectory := filepath.Join(os.TempDir(), "arenatree")

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	} else if options.Workers > maximumWorkers {
		options.Workers = maximumWorkers
	}

	if options.Debounce <= 0 {
		options.Debounce = defaultDebounce
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = baseDirectory
	}
	options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)

	// fail if the log file is not a simple file name i.e. must
	// not contain path separator
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
