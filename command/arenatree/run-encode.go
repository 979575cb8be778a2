// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/arenatree/serial"
)

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("tree"), ErrRequiredTreeFile)
	if nil != err {
		return err
	}
	output, err := checkFileName(c.String("output"), ErrRequiredOutputFile)
	if nil != err {
		return err
	}

	a, _, err := loadTree(logger.New("tree"), fileName)
	if nil != err {
		return err
	}

	if err := serial.WriteFile(output, a, serial.StringCodec{}); nil != err {
		m.log.Errorf("write snapshot: %q  error: %s", output, err)
		return err
	}
	m.log.Infof("wrote snapshot: %q  nodes: %d", output, a.Count())

	if m.verbose {
		fmt.Fprintf(m.e, "wrote: %d nodes to: %s\n", a.Count(), output)
	}
	return nil
}
