// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"slices"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("tree"), ErrRequiredTreeFile)
	if nil != err {
		return err
	}

	a, roots, err := loadTree(logger.New("tree"), fileName)
	if nil != err {
		return err
	}
	return printRoots(m.w, a, slices.Values(roots))
}
