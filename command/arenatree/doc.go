// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// arenatree - build, print and snapshot trees described in Lua
//
//	arenatree [--config=FILE] print --tree=tree.lua
//	arenatree stats --tree=tree.lua
//	arenatree encode --tree=tree.lua --output=tree.snapshot
//	arenatree decode --input=tree.snapshot
//	arenatree watch --tree=tree.lua
//
// the optional configuration file is Lua and sets the logging, the
// number of workers used by stats and the watch debounce period.
package main
