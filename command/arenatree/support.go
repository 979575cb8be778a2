// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/arenatree/arena"
	"github.com/bitmark-inc/arenatree/builder"
	"github.com/bitmark-inc/arenatree/configuration"
)

// build all the trees of a Lua tree file in a new arena
func loadTree(log *logger.L, fileName string) (*arena.Arena[string], []arena.NodeID, error) {
	items, err := configuration.LoadTreeFile(fileName)
	if nil != err {
		log.Errorf("load: %q  error: %s", fileName, err)
		return nil, nil, err
	}

	a := arena.New[string]()
	roots, err := builder.Roots(a, items...)
	if nil != err {
		log.Errorf("build: %q  error: %s", fileName, err)
		return nil, nil, err
	}
	log.Debugf("loaded: %q  roots: %d  nodes: %d", fileName, len(roots), a.Count())
	return a, roots, nil
}

// draw each tree, separated by blank lines
func printRoots(w io.Writer, a *arena.Arena[string], roots iter.Seq[arena.NodeID]) error {
	first := true
	for id := range roots {
		if !first {
			if _, err := fmt.Fprintln(w); nil != err {
				return err
			}
		}
		first = false
		if err := a.Fprint(w, id, func(s string) string { return s }); nil != err {
			return err
		}
	}
	return nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
