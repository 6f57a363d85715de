// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	models "expense-tracker-api/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockExpenseRepositoryInterface is a mock of ExpenseRepositoryInterface interface.
type MockExpenseRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseRepositoryInterfaceMockRecorder
}

// MockExpenseRepositoryInterfaceMockRecorder is the mock recorder for MockExpenseRepositoryInterface.
type MockExpenseRepositoryInterfaceMockRecorder struct {
	mock *MockExpenseRepositoryInterface
}

// NewMockExpenseRepositoryInterface creates a new mock instance.
func NewMockExpenseRepositoryInterface(ctrl *gomock.Controller) *MockExpenseRepositoryInterface {
	mock := &MockExpenseRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockExpenseRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseRepositoryInterface) EXPECT() *MockExpenseRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockExpenseRepositoryInterface) Create(expense *models.Expense) (*models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", expense)
	ret0, _ := ret[0].(*models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) Create(expense interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).Create), expense)
}

// DeleteByIDAndUserID mocks base method.
func (m *MockExpenseRepositoryInterface) DeleteByIDAndUserID(id, userID uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteByIDAndUserID", id, userID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteByIDAndUserID indicates an expected call of DeleteByIDAndUserID.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) DeleteByIDAndUserID(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteByIDAndUserID", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).DeleteByIDAndUserID), id, userID)
}

// GetCategorySummary mocks base method.
func (m *MockExpenseRepositoryInterface) GetCategorySummary(userID uuid.UUID, startDate, endDate *time.Time) (*models.ExpenseSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCategorySummary", userID, startDate, endDate)
	ret0, _ := ret[0].(*models.ExpenseSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCategorySummary indicates an expected call of GetCategorySummary.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetCategorySummary(userID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCategorySummary", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetCategorySummary), userID, startDate, endDate)
}

// GetRecentByUserID mocks base method.
func (m *MockExpenseRepositoryInterface) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecentByUserID", userID, limit)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecentByUserID indicates an expected call of GetRecentByUserID.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetRecentByUserID(userID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecentByUserID", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetRecentByUserID), userID, limit)
}

// GetWithFilters mocks base method.
func (m *MockExpenseRepositoryInterface) GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetWithFilters", filters)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetWithFilters indicates an expected call of GetWithFilters.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetWithFilters(filters interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetWithFilters", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetWithFilters), filters)
}

// UpdateByIDAndUserID mocks base method.
func (m *MockExpenseRepositoryInterface) UpdateByIDAndUserID(id, userID uuid.UUID, updates map[string]interface{}) (*models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateByIDAndUserID", id, userID, updates)
	ret0, _ := ret[0].(*models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateByIDAndUserID indicates an expected call of UpdateByIDAndUserID.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) UpdateByIDAndUserID(id, userID, updates interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateByIDAndUserID", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).UpdateByIDAndUserID), id, userID, updates)
}

// MockUserRepositoryInterface is a mock of UserRepositoryInterface interface.
type MockUserRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryInterfaceMockRecorder
}

// MockUserRepositoryInterfaceMockRecorder is the mock recorder for MockUserRepositoryInterface.
type MockUserRepositoryInterfaceMockRecorder struct {
	mock *MockUserRepositoryInterface
}

// NewMockUserRepositoryInterface creates a new mock instance.
func NewMockUserRepositoryInterface(ctrl *gomock.Controller) *MockUserRepositoryInterface {
	mock := &MockUserRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepositoryInterface) EXPECT() *MockUserRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockUserRepositoryInterface) Create(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserRepositoryInterfaceMockRecorder) Create(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Create), user)
}

// GetByEmail mocks base method.
func (m *MockUserRepositoryInterface) GetByEmail(email string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmail", email)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmail indicates an expected call of GetByEmail.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByEmail(email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmail", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByEmail), email)
}

// GetByID mocks base method.
func (m *MockUserRepositoryInterface) GetByID(id uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByID), id)
}

// UpdateLastLogin mocks base method.
func (m *MockUserRepositoryInterface) UpdateLastLogin(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateLastLogin", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateLastLogin indicates an expected call of UpdateLastLogin.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdateLastLogin(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateLastLogin", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdateLastLogin), id)
}

// MockAuditLogRepositoryInterface is a mock of AuditLogRepositoryInterface interface.
type MockAuditLogRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuditLogRepositoryInterfaceMockRecorder
}

// MockAuditLogRepositoryInterfaceMockRecorder is the mock recorder for MockAuditLogRepositoryInterface.
type MockAuditLogRepositoryInterfaceMockRecorder struct {
	mock *MockAuditLogRepositoryInterface
}

// NewMockAuditLogRepositoryInterface creates a new mock instance.
func NewMockAuditLogRepositoryInterface(ctrl *gomock.Controller) *MockAuditLogRepositoryInterface {
	mock := &MockAuditLogRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockAuditLogRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditLogRepositoryInterface) EXPECT() *MockAuditLogRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAuditLogRepositoryInterface) Create(log *models.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", log)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) Create(log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).Create), log)
}

// GetByUserID mocks base method.
func (m *MockAuditLogRepositoryInterface) GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetByUserID(userID, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetByUserID), userID, offset, limit)
}
