// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// message definitions for snapshot.proto, regenerate with go generate
// source: snapshot.proto

package serial

import (
	fmt "fmt"
	math "math"

	proto "github.com/golang/protobuf/proto"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// This is a compile-time assertion to ensure that this file
// is compatible with the proto package it is being compiled against.
const _ = proto.ProtoPackageIsVersion3 // please upgrade the proto package

// one record per arena slot, in slot order
type Snapshot struct {
	Version              uint32        `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	Nodes                []*NodeRecord `protobuf:"bytes,2,rep,name=nodes,proto3" json:"nodes,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *Snapshot) Reset()         { *m = Snapshot{} }
func (m *Snapshot) String() string { return proto.CompactTextString(m) }
func (*Snapshot) ProtoMessage()    {}
func (*Snapshot) Descriptor() ([]byte, []int) {
	return fileDescriptor_0c8aab8e59648e0b, []int{0}
}

func (m *Snapshot) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Snapshot.Unmarshal(m, b)
}
func (m *Snapshot) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Snapshot.Marshal(b, m, deterministic)
}
func (m *Snapshot) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Snapshot.Merge(m, src)
}
func (m *Snapshot) XXX_Size() int {
	return xxx_messageInfo_Snapshot.Size(m)
}
func (m *Snapshot) XXX_DiscardUnknown() {
	xxx_messageInfo_Snapshot.DiscardUnknown(m)
}

var xxx_messageInfo_Snapshot proto.InternalMessageInfo

func (m *Snapshot) GetVersion() uint32 {
	if m != nil {
		return m.Version
	}
	return 0
}

func (m *Snapshot) GetNodes() []*NodeRecord {
	if m != nil {
		return m.Nodes
	}
	return nil
}

// links are one based slot numbers, zero means no link
type NodeRecord struct {
	Parent               uint64   `protobuf:"varint,1,opt,name=parent,proto3" json:"parent,omitempty"`
	PreviousSibling      uint64   `protobuf:"varint,2,opt,name=previous_sibling,json=previousSibling,proto3" json:"previous_sibling,omitempty"`
	NextSibling          uint64   `protobuf:"varint,3,opt,name=next_sibling,json=nextSibling,proto3" json:"next_sibling,omitempty"`
	FirstChild           uint64   `protobuf:"varint,4,opt,name=first_child,json=firstChild,proto3" json:"first_child,omitempty"`
	LastChild            uint64   `protobuf:"varint,5,opt,name=last_child,json=lastChild,proto3" json:"last_child,omitempty"`
	Removed              bool     `protobuf:"varint,6,opt,name=removed,proto3" json:"removed,omitempty"`
	Value                []byte   `protobuf:"bytes,7,opt,name=value,proto3" json:"value,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *NodeRecord) Reset()         { *m = NodeRecord{} }
func (m *NodeRecord) String() string { return proto.CompactTextString(m) }
func (*NodeRecord) ProtoMessage()    {}
func (*NodeRecord) Descriptor() ([]byte, []int) {
	return fileDescriptor_0c8aab8e59648e0b, []int{1}
}

func (m *NodeRecord) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_NodeRecord.Unmarshal(m, b)
}
func (m *NodeRecord) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_NodeRecord.Marshal(b, m, deterministic)
}
func (m *NodeRecord) XXX_Merge(src proto.Message) {
	xxx_messageInfo_NodeRecord.Merge(m, src)
}
func (m *NodeRecord) XXX_Size() int {
	return xxx_messageInfo_NodeRecord.Size(m)
}
func (m *NodeRecord) XXX_DiscardUnknown() {
	xxx_messageInfo_NodeRecord.DiscardUnknown(m)
}

var xxx_messageInfo_NodeRecord proto.InternalMessageInfo

func (m *NodeRecord) GetParent() uint64 {
	if m != nil {
		return m.Parent
	}
	return 0
}

func (m *NodeRecord) GetPreviousSibling() uint64 {
	if m != nil {
		return m.PreviousSibling
	}
	return 0
}

func (m *NodeRecord) GetNextSibling() uint64 {
	if m != nil {
		return m.NextSibling
	}
	return 0
}

func (m *NodeRecord) GetFirstChild() uint64 {
	if m != nil {
		return m.FirstChild
	}
	return 0
}

func (m *NodeRecord) GetLastChild() uint64 {
	if m != nil {
		return m.LastChild
	}
	return 0
}

func (m *NodeRecord) GetRemoved() bool {
	if m != nil {
		return m.Removed
	}
	return false
}

func (m *NodeRecord) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

func init() {
	proto.RegisterType((*Snapshot)(nil), "serial.Snapshot")
	proto.RegisterType((*NodeRecord)(nil), "serial.NodeRecord")
}

func init() {
	proto.RegisterFile("snapshot.proto", fileDescriptor_0c8aab8e59648e0b)
}

var fileDescriptor_0c8aab8e59648e0b = []byte{
	// 237 bytes of a gzipped FileDescriptorProto
	0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0xff, 0x45, 0x90, 0x4d, 0x6e, 0xc2, 0x30,
	0x10, 0x46, 0x15, 0x20, 0x01, 0x26, 0xf4, 0x47, 0x23, 0x84, 0xbc, 0xa9, 0x0a, 0xac, 0xd2, 0x4d,
	0x16, 0xed, 0x11, 0xba, 0x67, 0x61, 0x0e, 0x80, 0x0c, 0x19, 0x8a, 0x25, 0xd7, 0x8e, 0x6c, 0x13,
	0xf5, 0xbc, 0x3d, 0x49, 0x1d, 0x9b, 0xd0, 0xe5, 0xf7, 0xbe, 0x37, 0x23, 0xcd, 0xc0, 0xa3, 0xd3,
	0xa2, 0x75, 0x17, 0xe3, 0xeb, 0xd6, 0x1a, 0x6f, 0xb0, 0x70, 0x64, 0xa5, 0x50, 0xdb, 0x1d, 0xcc,
	0xf6, 0xb7, 0x06, 0x19, 0x4c, 0x3b, 0xb2, 0x4e, 0x1a, 0xcd, 0xb2, 0x75, 0x56, 0x3d, 0xf0, 0x21,
	0x62, 0x05, 0xb9, 0x36, 0x0d, 0x39, 0x36, 0x5a, 0x8f, 0xab, 0xf2, 0x1d, 0xeb, 0x34, 0x5d, 0xef,
	0x02, 0xe4, 0x74, 0x32, 0xb6, 0xe1, 0x49, 0xd8, 0xfe, 0x66, 0x00, 0xff, 0x14, 0x57, 0x50, 0xb4,
	0xc2, 0x92, 0xf6, 0x71, 0xe3, 0x84, 0xdf, 0x12, 0xbe, 0xc1, 0x73, 0x6b, 0xa9, 0x93, 0xe6, 0xea,
	0x0e, 0x4e, 0x1e, 0x95, 0xd4, 0x5f, 0x61, 0x77, 0x6f, 0x3c, 0x0d, 0x7c, 0x9f, 0x30, 0x6e, 0x60,
	0xa1, 0xe9, 0xc7, 0xdf, 0xb5, 0x71, 0xd4, 0xca, 0x9e, 0x0d, 0xca, 0x2b, 0x94, 0x67, 0x69, 0x9d,
	0x3f, 0x9c, 0x2e, 0x52, 0x35, 0x6c, 0x12, 0x0d, 0x88, 0xe8, 0xb3, 0x27, 0xf8, 0x02, 0xa0, 0xc4,
	0xbd, 0xcf, 0x63, 0x3f, 0xef, 0x49, 0xaa, 0xc3, 0xe1, 0x96, 0xbe, 0x4d, 0x47, 0x0d, 0x2b, 0x42,
	0x37, 0xe3, 0x43, 0xc4, 0x25, 0xe4, 0x9d, 0x50, 0x57, 0x62, 0xd3, 0xc0, 0x17, 0x3c, 0x85, 0x63,
	0x11, 0x7f, 0xf8, 0xf1, 0x07, 0x33, 0x5b, 0xf1, 0xd3, 0x55, 0x01, 0x00, 0x00,
}
