// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks is a GoMock package for the serial interfaces.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockCodec is a mock of Codec interface.
type MockCodec[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockCodecMockRecorder[T]
}

// MockCodecMockRecorder is the mock recorder for MockCodec.
type MockCodecMockRecorder[T any] struct {
	mock *MockCodec[T]
}

// NewMockCodec creates a new mock instance.
func NewMockCodec[T any](ctrl *gomock.Controller) *MockCodec[T] {
	mock := &MockCodec[T]{ctrl: ctrl}
	mock.recorder = &MockCodecMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCodec[T]) EXPECT() *MockCodecMockRecorder[T] {
	return m.recorder
}

// Marshal mocks base method.
func (m *MockCodec[T]) Marshal(arg0 T) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Marshal", arg0)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Marshal indicates an expected call of Marshal.
func (mr *MockCodecMockRecorder[T]) Marshal(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Marshal", reflect.TypeOf((*MockCodec[T])(nil).Marshal), arg0)
}

// Unmarshal mocks base method.
func (m *MockCodec[T]) Unmarshal(arg0 []byte) (T, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unmarshal", arg0)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Unmarshal indicates an expected call of Unmarshal.
func (mr *MockCodecMockRecorder[T]) Unmarshal(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unmarshal", reflect.TypeOf((*MockCodec[T])(nil).Unmarshal), arg0)
}
