// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serial

import (
	"fmt"
	"os"

	proto "github.com/golang/protobuf/proto"

	"github.com/bitmark-inc/arenatree/arena"
	"github.com/bitmark-inc/arenatree/fault"
)

// Version - snapshot format written by Encode
const Version = 1

// Encode - snapshot every slot of an arena
//
// removed slots are kept, without payload, so that identifiers are
// the same after Decode
func Encode[T any](a *arena.Arena[T], codec Codec[T]) ([]byte, error) {
	snapshot := Snapshot{
		Version: Version,
		Nodes:   make([]*NodeRecord, 0, a.Len()),
	}

	for id, n := range a.All() {
		links := n.Links()
		r := &NodeRecord{
			Parent:          links.Parent.Uint64(),
			PreviousSibling: links.PreviousSibling.Uint64(),
			NextSibling:     links.NextSibling.Uint64(),
			FirstChild:      links.FirstChild.Uint64(),
			LastChild:       links.LastChild.Uint64(),
			Removed:         n.IsRemoved(),
		}
		if !n.IsRemoved() {
			value, err := codec.Marshal(n.Value())
			if nil != err {
				return nil, fmt.Errorf("node %s: %w", id, err)
			}
			r.Value = value
		}
		snapshot.Nodes = append(snapshot.Nodes, r)
	}

	out, err := proto.Marshal(&snapshot)
	if nil != err {
		return nil, fault.ErrSnapshotMarshalFail
	}
	return out, nil
}

// Decode - rebuild an arena from the output of Encode
//
// the result is verified with Check before it is returned
func Decode[T any](data []byte, codec Codec[T]) (*arena.Arena[T], error) {
	var snapshot Snapshot
	if err := proto.Unmarshal(data, &snapshot); nil != err {
		return nil, fault.ErrSnapshotUnmarshalFail
	}
	if Version != snapshot.GetVersion() {
		return nil, fmt.Errorf("version: %d: %w", snapshot.GetVersion(), fault.ErrUnsupportedSnapshotVersion)
	}

	slots := uint64(len(snapshot.Nodes))
	records := make([]arena.Record[T], 0, len(snapshot.Nodes))
	for i, n := range snapshot.Nodes {
		id := arena.NodeIDFromIndex(i)
		for _, link := range []uint64{n.GetParent(), n.GetPreviousSibling(), n.GetNextSibling(), n.GetFirstChild(), n.GetLastChild()} {
			if link > slots {
				return nil, fmt.Errorf("node %s: link: %d: %w", id, link, fault.ErrLinkOutOfRange)
			}
		}

		r := arena.Record[T]{
			Links: arena.Links{
				Parent:          arena.NodeIDFromUint64(n.GetParent()),
				PreviousSibling: arena.NodeIDFromUint64(n.GetPreviousSibling()),
				NextSibling:     arena.NodeIDFromUint64(n.GetNextSibling()),
				FirstChild:      arena.NodeIDFromUint64(n.GetFirstChild()),
				LastChild:       arena.NodeIDFromUint64(n.GetLastChild()),
			},
			Removed: n.GetRemoved(),
		}
		if !r.Removed {
			value, err := codec.Unmarshal(n.GetValue())
			if nil != err {
				return nil, fmt.Errorf("node %s: %w", id, err)
			}
			r.Value = value
		}
		records = append(records, r)
	}

	return arena.Restore(records)
}

// WriteFile - save a snapshot of an arena to a file
func WriteFile[T any](fileName string, a *arena.Arena[T], codec Codec[T]) error {
	out, err := Encode(a, codec)
	if nil != err {
		return err
	}
	if err := os.WriteFile(fileName, out, 0600); nil != err {
		return fmt.Errorf("failed to write snapshot to a file: %w", err)
	}
	return nil
}

// ReadFile - load an arena from a snapshot file
func ReadFile[T any](fileName string, codec Codec[T]) (*arena.Arena[T], error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundSnapshotFile
		}
		return nil, err
	}
	return Decode(data, codec)
}
