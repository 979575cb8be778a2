// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"fmt"
)

// EdgeKind - which side of a node a depth first walk is on
type EdgeKind uint8

// the two edge kinds
const (
	Start EdgeKind = iota // before any of the node's children
	End                   // after all of the node's children
)

// String - name of the edge kind
func (k EdgeKind) String() string {
	switch k {
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return fmt.Sprintf("EdgeKind(%d)", uint8(k))
	}
}

// NodeEdge - one step of a depth first walk
type NodeEdge struct {
	Kind EdgeKind
	ID   NodeID
}

// StartEdge - the edge entering a node
func StartEdge(id NodeID) NodeEdge {
	return NodeEdge{Kind: Start, ID: id}
}

// EndEdge - the edge leaving a node
func EndEdge(id NodeID) NodeEdge {
	return NodeEdge{Kind: End, ID: id}
}

// String - e.g. Start(3)
func (e NodeEdge) String() string {
	return fmt.Sprintf("%s(%s)", e.Kind, e.ID)
}

// NextEdge - the edge following e in a forward depth first walk
//
//	Start(n) -> Start(first child) or End(n) for a leaf
//	End(n)   -> Start(next sibling) or End(parent)
//
// false when there is no further edge, i.e. after End of a root
// that has no next sibling
func (a *Arena[T]) NextEdge(e NodeEdge) (NodeEdge, bool) {
	n := a.At(e.ID)
	switch e.Kind {
	case Start:
		if !n.firstChild.IsNone() {
			return StartEdge(n.firstChild), true
		}
		return EndEdge(e.ID), true
	default:
		if !n.nextSibling.IsNone() {
			return StartEdge(n.nextSibling), true
		}
		if !n.parent.IsNone() {
			return EndEdge(n.parent), true
		}
		return NodeEdge{}, false
	}
}

// PrevEdge - the edge following e in a reverse depth first walk
//
// the mirror of NextEdge: children are visited last to first and
// End comes before Start
func (a *Arena[T]) PrevEdge(e NodeEdge) (NodeEdge, bool) {
	n := a.At(e.ID)
	switch e.Kind {
	case End:
		if !n.lastChild.IsNone() {
			return EndEdge(n.lastChild), true
		}
		return StartEdge(e.ID), true
	default:
		if !n.previousSibling.IsNone() {
			return EndEdge(n.previousSibling), true
		}
		if !n.parent.IsNone() {
			return StartEdge(n.parent), true
		}
		return NodeEdge{}, false
	}
}
