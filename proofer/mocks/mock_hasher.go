// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - GoMock doubles for the proofer interfaces
//
// laid out as mockgen emits them for hasher.go, "go generate" in the
// proofer package replaces this file with the generated one
package mocks

import (
	gomock "github.com/golang/mock/gomock"
	powhash "github.com/nuddcoin/nuddhash/powhash"
	reflect "reflect"
)

// MockHasher is a mock of Hasher interface
type MockHasher struct {
	ctrl     *gomock.Controller
	recorder *MockHasherMockRecorder
}

// MockHasherMockRecorder is the mock recorder for MockHasher
type MockHasherMockRecorder struct {
	mock *MockHasher
}

// NewMockHasher creates a new mock instance
func NewMockHasher(ctrl *gomock.Controller) *MockHasher {
	mock := &MockHasher{ctrl: ctrl}
	mock.recorder = &MockHasherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockHasher) EXPECT() *MockHasherMockRecorder {
	return m.recorder
}

// Sum mocks base method
func (m *MockHasher) Sum(header []byte) (powhash.Digest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sum", header)
	ret0, _ := ret[0].(powhash.Digest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Sum indicates an expected call of Sum
func (mr *MockHasherMockRecorder) Sum(header interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sum", reflect.TypeOf((*MockHasher)(nil).Sum), header)
}
