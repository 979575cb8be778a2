// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/arenatree/fault"
)

// common errors - keep in alphabetic order
var (
	ErrRequiredInputFile  = fault.InvalidError("input file is required")
	ErrRequiredOutputFile = fault.InvalidError("output file is required")
	ErrRequiredTreeFile   = fault.InvalidError("tree file is required")
)

// check for non-blank file names
func checkFileName(fileName string, missing error) (string, error) {
	if "" == fileName {
		return "", missing
	}
	return fileName, nil
}
