// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/arenatree/arena"
	"github.com/bitmark-inc/arenatree/bulk"
)

type treeStats struct {
	Nodes    uint64 `json:"nodes"`
	Roots    uint64 `json:"roots"`
	Leaves   uint64 `json:"leaves"`
	MaxDepth int    `json:"max_depth"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("tree"), ErrRequiredTreeFile)
	if nil != err {
		return err
	}

	a, _, err := loadTree(logger.New("tree"), fileName)
	if nil != err {
		return err
	}

	stats, err := collectStats(context.Background(), a, m.config.Workers)
	if nil != err {
		return err
	}
	return printJson(m.w, stats)
}

// gather the statistics of every live node in parallel
func collectStats(ctx context.Context, a *arena.Arena[string], workers int) (treeStats, error) {
	stats := treeStats{}

	nodes, err := bulk.Count(ctx, a, workers, bulk.Live[string])
	if nil != err {
		return stats, err
	}
	stats.Nodes = nodes

	roots, err := bulk.Count(ctx, a, workers, func(_ arena.NodeID, n *arena.Node[string]) bool {
		return n.IsRoot()
	})
	if nil != err {
		return stats, err
	}
	stats.Roots = roots

	leaves, err := bulk.Count(ctx, a, workers, func(_ arena.NodeID, n *arena.Node[string]) bool {
		return !n.IsRemoved() && n.IsLeaf()
	})
	if nil != err {
		return stats, err
	}
	stats.Leaves = leaves

	depth, err := bulk.Reduce(ctx, a, workers,
		func(id arena.NodeID, n *arena.Node[string]) int {
			if n.IsRemoved() {
				return 0
			}
			return a.Depth(id)
		},
		func(x int, y int) int {
			return max(x, y)
		},
	)
	if nil != err {
		return stats, err
	}
	stats.MaxDepth = depth

	return stats, nil
}
