// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package arena - a tree held in a single growable slice of nodes
//
// Nodes refer to each other by NodeID, a 1-based index into the
// arena, instead of by pointer.  Each node carries parent, first and
// last child, previous and next sibling links so that every
// structural edit is O(1), apart from the ancestor walk done by the
// checked operations to reject cycles.
//
// Removing a node never frees its slot: the node is unlinked and
// marked removed (a tombstone) so that every NodeID stays a valid
// index for the lifetime of the arena.  Only Clear discards slots.
//
// Note: an arena is not thread safe.  Any number of go routines may
// read (Get, At, the iterators) at the same time, but a mutation must
// not run concurrently with anything else, so protect a shared arena
// with a sync.RWMutex or confine it to a single go routine.
//
// Each mutation has two forms.  The plain form (Append, Prepend,
// InsertAfter, InsertBefore, Detach, Remove, RemoveSubtree) trusts the
// caller: passing a removed node or creating a cycle is a contract
// violation that can leave the tree inconsistent.  The Checked form
// validates the operands first and returns one of the fault.NodeError
// values, leaving the arena untouched on error.
package arena
