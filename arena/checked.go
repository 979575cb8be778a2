// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"github.com/bitmark-inc/arenatree/fault"
)

// the checked forms validate their operands, then delegate to the
// unchecked operation; on error nothing has been modified

// CheckedAppend - Append refusing removed nodes and cycles
func (a *Arena[T]) CheckedAppend(parent NodeID, child NodeID) error {
	if err := a.checkLive(parent, child); nil != err {
		return err
	}
	if a.IsAncestor(child, parent) {
		return fault.ErrAppendSelf
	}
	a.Append(parent, child)
	return nil
}

// CheckedPrepend - Prepend refusing removed nodes and cycles
func (a *Arena[T]) CheckedPrepend(parent NodeID, child NodeID) error {
	if err := a.checkLive(parent, child); nil != err {
		return err
	}
	if a.IsAncestor(child, parent) {
		return fault.ErrPrependSelf
	}
	a.Prepend(parent, child)
	return nil
}

// CheckedInsertAfter - InsertAfter refusing removed nodes and cycles
func (a *Arena[T]) CheckedInsertAfter(node NodeID, sibling NodeID) error {
	if err := a.checkLive(node, sibling); nil != err {
		return err
	}
	if a.IsAncestor(sibling, node) {
		return fault.ErrInsertAfterSelf
	}
	a.InsertAfter(node, sibling)
	return nil
}

// CheckedInsertBefore - InsertBefore refusing removed nodes and cycles
func (a *Arena[T]) CheckedInsertBefore(node NodeID, sibling NodeID) error {
	if err := a.checkLive(node, sibling); nil != err {
		return err
	}
	if a.IsAncestor(sibling, node) {
		return fault.ErrInsertBeforeSelf
	}
	a.InsertBefore(node, sibling)
	return nil
}

// CheckedDetach - Detach refusing a removed node
func (a *Arena[T]) CheckedDetach(id NodeID) error {
	if err := a.checkLive(id); nil != err {
		return err
	}
	a.Detach(id)
	return nil
}

// CheckedRemove - Remove refusing an already removed node
func (a *Arena[T]) CheckedRemove(id NodeID) error {
	if err := a.checkLive(id); nil != err {
		return err
	}
	a.Remove(id)
	return nil
}

// CheckedRemoveSubtree - RemoveSubtree refusing an already removed node
func (a *Arena[T]) CheckedRemoveSubtree(id NodeID) error {
	if err := a.checkLive(id); nil != err {
		return err
	}
	a.RemoveSubtree(id)
	return nil
}

func (a *Arena[T]) checkLive(ids ...NodeID) error {
	for _, id := range ids {
		if a.At(id).removed {
			return fault.ErrNodeRemoved
		}
	}
	return nil
}
