// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"fmt"

	"github.com/bitmark-inc/arenatree/fault"
)

// Check - verify the link structure of every node
//
// returns the first problem found as a wrapped ConsistencyError
// naming the offending node, nil if the arena is sound; the walks are
// bounded by Len so a corrupted arena cannot loop forever
func (a *Arena[T]) Check() error {
	size := len(a.nodes)

	// pass 1: every link in range, removed nodes fully unlinked
	live := 0
	for i := range a.nodes {
		n := &a.nodes[i]
		for _, l := range n.linkArray() {
			if l.Uint64() > uint64(size) {
				return fmt.Errorf("node %s: link %s: %w", NodeIDFromIndex(i), l, fault.ErrLinkOutOfRange)
			}
		}
		if n.removed {
			if !n.isUnlinked() {
				return fmt.Errorf("node %s: %w", NodeIDFromIndex(i), fault.ErrRemovedNodeLinked)
			}
			continue
		}
		live += 1
	}
	if live != a.live {
		return fmt.Errorf("counted: %d recorded: %d: %w", live, a.live, fault.ErrLiveCountMismatch)
	}

	// pass 2: links land on live nodes and agree with each other
	for i := range a.nodes {
		id := NodeIDFromIndex(i)
		n := &a.nodes[i]
		if n.removed {
			continue
		}
		if err := a.checkNode(id, n); nil != err {
			return fmt.Errorf("node %s: %w", id, err)
		}
	}

	// pass 3: ancestor chains terminate
	for i := range a.nodes {
		steps := 0
		for p := a.nodes[i].parent; !p.IsNone(); p = a.nodes[p.Index()].parent {
			steps += 1
			if steps > size {
				return fmt.Errorf("node %s: ancestors: %w", NodeIDFromIndex(i), fault.ErrCycleDetected)
			}
		}
	}

	// pass 4: every live node is reachable along exactly one sibling
	// list, either a parent's child list or a chain of roots
	listed := 0
	for i := range a.nodes {
		n := &a.nodes[i]
		if n.removed {
			continue
		}
		heads := []NodeID{n.firstChild}
		if n.parent.IsNone() && n.previousSibling.IsNone() {
			heads = append(heads, NodeIDFromIndex(i))
		}
		for _, head := range heads {
			for s := head; !s.IsNone(); s = a.nodes[s.Index()].nextSibling {
				listed += 1
				if listed > live {
					return fmt.Errorf("node %s: siblings: %w", NodeIDFromIndex(i), fault.ErrCycleDetected)
				}
			}
		}
	}
	if listed != live {
		return fmt.Errorf("unreachable sibling cycle: %w", fault.ErrCycleDetected)
	}

	return nil
}

// internal: the per-node part of Check
func (a *Arena[T]) checkNode(id NodeID, n *Node[T]) error {
	for _, l := range n.linkArray() {
		if !l.IsNone() && a.nodes[l.Index()].removed {
			return fmt.Errorf("link %s: %w", l, fault.ErrLinkToRemovedNode)
		}
	}

	if !n.previousSibling.IsNone() {
		prev := &a.nodes[n.previousSibling.Index()]
		if prev.nextSibling != id {
			return fmt.Errorf("previous: %s: %w", n.previousSibling, fault.ErrSiblingLinkBroken)
		}
		if prev.parent != n.parent {
			return fmt.Errorf("previous: %s: %w", n.previousSibling, fault.ErrParentLinkBroken)
		}
	} else if !n.parent.IsNone() && a.nodes[n.parent.Index()].firstChild != id {
		return fmt.Errorf("parent: %s first child: %w", n.parent, fault.ErrChildBoundsBroken)
	}

	if !n.nextSibling.IsNone() {
		next := &a.nodes[n.nextSibling.Index()]
		if next.previousSibling != id {
			return fmt.Errorf("next: %s: %w", n.nextSibling, fault.ErrSiblingLinkBroken)
		}
		if next.parent != n.parent {
			return fmt.Errorf("next: %s: %w", n.nextSibling, fault.ErrParentLinkBroken)
		}
	} else if !n.parent.IsNone() && a.nodes[n.parent.Index()].lastChild != id {
		return fmt.Errorf("parent: %s last child: %w", n.parent, fault.ErrChildBoundsBroken)
	}

	if n.firstChild.IsNone() != n.lastChild.IsNone() {
		return fmt.Errorf("first: %s last: %s: %w", n.firstChild, n.lastChild, fault.ErrChildBoundsBroken)
	}
	if n.firstChild.IsNone() {
		return nil
	}
	first := &a.nodes[n.firstChild.Index()]
	if first.parent != id {
		return fmt.Errorf("first child: %s: %w", n.firstChild, fault.ErrParentLinkBroken)
	}
	if !first.previousSibling.IsNone() {
		return fmt.Errorf("first child: %s: %w", n.firstChild, fault.ErrChildBoundsBroken)
	}
	last := &a.nodes[n.lastChild.Index()]
	if last.parent != id {
		return fmt.Errorf("last child: %s: %w", n.lastChild, fault.ErrParentLinkBroken)
	}
	if !last.nextSibling.IsNone() {
		return fmt.Errorf("last child: %s: %w", n.lastChild, fault.ErrChildBoundsBroken)
	}
	return nil
}
