// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulk

import (
	"sync/atomic"
)

// tally - a count shared by all the workers of one operation
type tally uint64

// add n to the tally, returns new value
func (t *tally) add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(t), n)
}

// current value
func (t *tally) value() uint64 {
	return atomic.LoadUint64((*uint64)(t))
}
