// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/arenatree/serial"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	input, err := checkFileName(c.String("input"), ErrRequiredInputFile)
	if nil != err {
		return err
	}

	a, err := serial.ReadFile(input, serial.StringCodec{})
	if nil != err {
		m.log.Errorf("read snapshot: %q  error: %s", input, err)
		return err
	}
	m.log.Infof("read snapshot: %q  nodes: %d  slots: %d", input, a.Count(), a.Len())

	if m.verbose {
		fmt.Fprintf(m.e, "read: %d nodes in %d slots from: %s\n", a.Count(), a.Len(), input)
	}
	return printRoots(m.w, a, a.Roots())
}
