// Copyright (c) 2026 Ledgerware
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at ledgerware.dev/bsl11.
//
// Change Date: 2030-8-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package token is a generated GoMock package.
package token

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockHostContext is a mock of HostContext interface.
type MockHostContext struct {
	ctrl     *gomock.Controller
	recorder *MockHostContextMockRecorder
}

// MockHostContextMockRecorder is the mock recorder for MockHostContext.
type MockHostContextMockRecorder struct {
	mock *MockHostContext
}

// NewMockHostContext creates a new mock instance.
func NewMockHostContext(ctrl *gomock.Controller) *MockHostContext {
	mock := &MockHostContext{ctrl: ctrl}
	mock.recorder = &MockHostContextMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHostContext) EXPECT() *MockHostContextMockRecorder {
	return m.recorder
}

// EmitLog mocks base method.
func (m *MockHostContext) EmitLog(arg0 Log) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "EmitLog", arg0)
}

// EmitLog indicates an expected call of EmitLog.
func (mr *MockHostContextMockRecorder) EmitLog(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EmitLog", reflect.TypeOf((*MockHostContext)(nil).EmitLog), arg0)
}

// GetLogs mocks base method.
func (m *MockHostContext) GetLogs() []Log {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLogs")
	ret0, _ := ret[0].([]Log)
	return ret0
}

// GetLogs indicates an expected call of GetLogs.
func (mr *MockHostContextMockRecorder) GetLogs() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLogs", reflect.TypeOf((*MockHostContext)(nil).GetLogs))
}

// GetStorage mocks base method.
func (m *MockHostContext) GetStorage(arg0 Key) Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStorage", arg0)
	ret0, _ := ret[0].(Word)
	return ret0
}

// GetStorage indicates an expected call of GetStorage.
func (mr *MockHostContextMockRecorder) GetStorage(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStorage", reflect.TypeOf((*MockHostContext)(nil).GetStorage), arg0)
}

// SetStorage mocks base method.
func (m *MockHostContext) SetStorage(arg0 Key, arg1 Word) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetStorage", arg0, arg1)
}

// SetStorage indicates an expected call of SetStorage.
func (mr *MockHostContextMockRecorder) SetStorage(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStorage", reflect.TypeOf((*MockHostContext)(nil).SetStorage), arg0, arg1)
}
