// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConsistencyError GenericError
type InvalidError GenericError
type NodeError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// structural errors returned by the checked arena operations
//
// this set is closed, nothing outside this block is a NodeError
var (
	ErrAppendSelf       = NodeError("can not append a node to itself or to its own descendant")
	ErrPrependSelf      = NodeError("can not prepend a node to itself or to its own descendant")
	ErrInsertBeforeSelf = NodeError("can not insert a node before itself or before its own descendant")
	ErrInsertAfterSelf  = NodeError("can not insert a node after itself or after its own descendant")
	ErrNodeRemoved      = NodeError("can not operate on a removed node")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = InvalidError("already initialised")
	ErrChildBoundsBroken          = ConsistencyError("first/last child does not bound the child list")
	ErrCycleDetected              = ConsistencyError("node is its own ancestor or sibling")
	ErrEmptyTreeValue             = InvalidError("tree item value is empty")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidLuaResult           = InvalidError("Lua file did not return a table")
	ErrInvalidTreeFile            = InvalidError("tree file does not return a table of roots")
	ErrLinkOutOfRange             = ConsistencyError("link refers to a slot outside the arena")
	ErrLinkToRemovedNode          = ConsistencyError("link refers to a removed node")
	ErrLiveCountMismatch          = ConsistencyError("live node count does not match the nodes")
	ErrNotFoundConfigFile         = NotFoundError("config file is not found")
	ErrNotFoundSnapshotFile       = NotFoundError("snapshot file is not found")
	ErrNotFoundTreeFile           = NotFoundError("tree file is not found")
	ErrParentLinkBroken           = ConsistencyError("parent does not contain the node among its children")
	ErrRemovedNodeLinked          = ConsistencyError("removed node still has links")
	ErrSiblingLinkBroken          = ConsistencyError("sibling links are not symmetric")
	ErrSnapshotMarshalFail        = ProcessError("snapshot marshal failed")
	ErrSnapshotUnmarshalFail      = ProcessError("snapshot unmarshal failed")
	ErrUnsupportedSnapshotVersion = InvalidError("unsupported snapshot version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConsistencyError) Error() string { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NodeError) Error() string        { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrConsistency(e error) bool { var t ConsistencyError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool     { var t InvalidError; return errors.As(e, &t) }
func IsErrNode(e error) bool        { var t NodeError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool    { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool     { var t ProcessError; return errors.As(e, &t) }
