// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bulk runs read only work over every slot of an arena in
// parallel
//
// the slot sequence is cut into one contiguous span per worker; the
// arena must not be modified until the call returns and the payloads
// must be safe to read from several goroutines
package bulk

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/arenatree/arena"
)

// how often a worker looks for cancellation
const cancelCheckInterval = 1024

// span - slots [start, finish)
type span struct {
	start  int
	finish int
}

// internal: split n slots into at most workers spans of nearly equal size
func split(n int, workers int) []span {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	spans := make([]span, 0, workers)
	start := 0
	for w := 0; w < workers; w += 1 {
		size := (n - start) / (workers - w)
		spans = append(spans, span{start: start, finish: start + size})
		start += size
	}
	return spans
}

// internal: visit each slot of a span in order, stopping on the first
// error or when ctx is done
func visit[T any](ctx context.Context, a *arena.Arena[T], s span, fn func(arena.NodeID, *arena.Node[T]) error) error {
	for i := s.start; i < s.finish; i += 1 {
		if 0 == (i-s.start)%cancelCheckInterval {
			if err := ctx.Err(); nil != err {
				return err
			}
		}
		id := arena.NodeIDFromIndex(i)
		if err := fn(id, a.At(id)); nil != err {
			return err
		}
	}
	return nil
}

// ForEach - call fn for every slot, including removed ones
//
// the first error returned by fn cancels the remaining work and is
// returned
func ForEach[T any](ctx context.Context, a *arena.Arena[T], workers int, fn func(arena.NodeID, *arena.Node[T]) error) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, s := range split(a.Len(), workers) {
		g.Go(func() error {
			return visit(gCtx, a, s, fn)
		})
	}
	return g.Wait()
}

// Reduce - map every slot, including removed ones, and fold the
// results with combine
//
// combine must be associative; partial results are combined in slot
// order so it need not be commutative. An empty arena gives the zero R
func Reduce[T any, R any](ctx context.Context, a *arena.Arena[T], workers int, mapper func(arena.NodeID, *arena.Node[T]) R, combine func(R, R) R) (R, error) {
	spans := split(a.Len(), workers)
	partials := make([]R, len(spans))

	g, gCtx := errgroup.WithContext(ctx)
	for i, s := range spans {
		g.Go(func() error {
			first := true
			return visit(gCtx, a, s, func(id arena.NodeID, n *arena.Node[T]) error {
				r := mapper(id, n)
				if first {
					partials[i] = r
					first = false
				} else {
					partials[i] = combine(partials[i], r)
				}
				return nil
			})
		})
	}

	var result R
	if err := g.Wait(); nil != err {
		return result, err
	}
	for i, r := range partials {
		if 0 == i {
			result = r
		} else {
			result = combine(result, r)
		}
	}
	return result, nil
}

// Count - number of slots for which predicate is true
func Count[T any](ctx context.Context, a *arena.Arena[T], workers int, predicate func(arena.NodeID, *arena.Node[T]) bool) (uint64, error) {
	var total tally
	err := ForEach(ctx, a, workers, func(id arena.NodeID, n *arena.Node[T]) error {
		if predicate(id, n) {
			total.add(1)
		}
		return nil
	})
	if nil != err {
		return 0, err
	}
	return total.value(), nil
}

// Live - predicate for Count selecting nodes that are not removed
func Live[T any](_ arena.NodeID, n *arena.Node[T]) bool {
	return !n.IsRemoved()
}
