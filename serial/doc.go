// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package serial saves and loads complete arenas as protobuf
// snapshots (see snapshot.proto)
//
// only the public arena API is used: the flat slot sequence is
// written in order with each slot's links and removed flag, and a
// Codec converts the payloads
package serial

//go:generate protoc --go_out=. snapshot.proto
