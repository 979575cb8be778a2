// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/arenatree/configuration"
	"github.com/bitmark-inc/arenatree/fault"
)

type metadata struct {
	config  *configuration.Configuration
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "arenatree"
	app.Usage = "build, print and snapshot arena trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}

	treeFlag := cli.StringFlag{
		Name:  "tree, t",
		Value: "",
		Usage: "*Lua tree description `FILE`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "draw every tree of a tree file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{treeFlag},
			Action:    runPrint,
		},
		{
			Name:      "stats",
			Usage:     "count nodes, roots and leaves of a tree file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{treeFlag},
			Action:    runStats,
		},
		{
			Name:      "encode",
			Usage:     "save a tree file as a snapshot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				treeFlag,
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*snapshot `FILE` to write",
				},
			},
			Action: runEncode,
		},
		{
			Name:      "decode",
			Usage:     "verify and draw a snapshot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "input, i",
					Value: "",
					Usage: "*snapshot `FILE` to read",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "watch",
			Usage:     "redraw a tree file whenever it changes",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{treeFlag},
			Action:    runWatch,
		},
		{
			Name:  "version",
			Usage: "display arenatree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		// to suppress reading config file if certain commands
		switch c.Args().Get(0) {
		case "", "help", "h", "version":
			return nil
		}

		verbose := c.GlobalBool("verbose")
		file := c.GlobalString("config")
		if verbose && "" != file {
			fmt.Fprintf(c.App.ErrWriter, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		log := logger.New("main")
		log.Infof("starting: %s version: %s", c.Args().Get(0), version)
		log.Debugf("configuration: %+v", config)

		c.App.Metadata["config"] = &metadata{
			config:  config,
			log:     log,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	// stop logging
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
