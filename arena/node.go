// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"fmt"
	"strings"
)

// Node - a node within a particular arena
//
// the links are private so that they can only be changed by the
// arena operations that keep them consistent, e.g. the parent of a
// node's child is always that node
type Node[T any] struct {
	parent          NodeID
	previousSibling NodeID
	nextSibling     NodeID
	firstChild      NodeID
	lastChild       NodeID
	removed         bool
	value           T
}

// Links - a copy of all the topology fields of a node
type Links struct {
	Parent          NodeID
	PreviousSibling NodeID
	NextSibling     NodeID
	FirstChild      NodeID
	LastChild       NodeID
}

// Value - read the payload
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue - replace the payload
func (n *Node[T]) SetValue(value T) {
	n.value = value
}

// ValuePtr - pointer to the payload for in-place update
func (n *Node[T]) ValuePtr() *T {
	return &n.value
}

// Parent - parent of this node, false for a root
func (n *Node[T]) Parent() (NodeID, bool) {
	return n.parent, !n.parent.IsNone()
}

// FirstChild - first child of this node, false if it has none
func (n *Node[T]) FirstChild() (NodeID, bool) {
	return n.firstChild, !n.firstChild.IsNone()
}

// LastChild - last child of this node, false if it has none
func (n *Node[T]) LastChild() (NodeID, bool) {
	return n.lastChild, !n.lastChild.IsNone()
}

// PreviousSibling - previous sibling, false for a first child
func (n *Node[T]) PreviousSibling() (NodeID, bool) {
	return n.previousSibling, !n.previousSibling.IsNone()
}

// NextSibling - next sibling, false for a last child
func (n *Node[T]) NextSibling() (NodeID, bool) {
	return n.nextSibling, !n.nextSibling.IsNone()
}

// IsRemoved - true if the node has been removed from the tree
func (n *Node[T]) IsRemoved() bool {
	return n.removed
}

// IsRoot - true for a live node without a parent
func (n *Node[T]) IsRoot() bool {
	return !n.removed && n.parent.IsNone()
}

// IsLeaf - true if the node has no children
func (n *Node[T]) IsLeaf() bool {
	return n.firstChild.IsNone()
}

// Links - snapshot of the topology fields
func (n *Node[T]) Links() Links {
	return Links{
		Parent:          n.parent,
		PreviousSibling: n.previousSibling,
		NextSibling:     n.nextSibling,
		FirstChild:      n.firstChild,
		LastChild:       n.lastChild,
	}
}

// internal: the links in a fixed order
func (n *Node[T]) linkArray() [5]NodeID {
	return [5]NodeID{n.parent, n.previousSibling, n.nextSibling, n.firstChild, n.lastChild}
}

// internal: true if the node has no links at all
func (n *Node[T]) isUnlinked() bool {
	return n.parent.IsNone() &&
		n.previousSibling.IsNone() &&
		n.nextSibling.IsNone() &&
		n.firstChild.IsNone() &&
		n.lastChild.IsNone()
}

// String - describe the links
func (n *Node[T]) String() string {
	b := strings.Builder{}
	field := func(name string, id NodeID) {
		if id.IsNone() {
			fmt.Fprintf(&b, "no %s; ", name)
		} else {
			fmt.Fprintf(&b, "%s: %s; ", name, id)
		}
	}
	field("parent", n.parent)
	field("previous sibling", n.previousSibling)
	field("next sibling", n.nextSibling)
	field("first child", n.firstChild)
	field("last child", n.lastChild)
	if n.removed {
		b.WriteString("removed")
	}
	return strings.TrimSuffix(b.String(), " ")
}
