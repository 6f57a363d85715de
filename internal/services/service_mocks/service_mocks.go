// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	dto "expense-tracker-api/internal/dto"
	models "expense-tracker-api/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockExpenseServiceInterface is a mock of ExpenseServiceInterface interface.
type MockExpenseServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseServiceInterfaceMockRecorder
}

// MockExpenseServiceInterfaceMockRecorder is the mock recorder for MockExpenseServiceInterface.
type MockExpenseServiceInterfaceMockRecorder struct {
	mock *MockExpenseServiceInterface
}

// NewMockExpenseServiceInterface creates a new mock instance.
func NewMockExpenseServiceInterface(ctrl *gomock.Controller) *MockExpenseServiceInterface {
	mock := &MockExpenseServiceInterface{ctrl: ctrl}
	mock.recorder = &MockExpenseServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseServiceInterface) EXPECT() *MockExpenseServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateExpense mocks base method.
func (m *MockExpenseServiceInterface) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateExpense", userID, req)
	ret0, _ := ret[0].(*dto.ExpenseResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateExpense indicates an expected call of CreateExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) CreateExpense(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).CreateExpense), userID, req)
}

// DeleteExpense mocks base method.
func (m *MockExpenseServiceInterface) DeleteExpense(id, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpense", id, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteExpense indicates an expected call of DeleteExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) DeleteExpense(id, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).DeleteExpense), id, userID)
}

// GetExpenseSummary mocks base method.
func (m *MockExpenseServiceInterface) GetExpenseSummary(userID uuid.UUID, params dto.SummaryQueryParams) (*models.ExpenseSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExpenseSummary", userID, params)
	ret0, _ := ret[0].(*models.ExpenseSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExpenseSummary indicates an expected call of GetExpenseSummary.
func (mr *MockExpenseServiceInterfaceMockRecorder) GetExpenseSummary(userID, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExpenseSummary", reflect.TypeOf((*MockExpenseServiceInterface)(nil).GetExpenseSummary), userID, params)
}

// GetExpenses mocks base method.
func (m *MockExpenseServiceInterface) GetExpenses(userID uuid.UUID, params dto.ExpenseQueryParams) (*dto.ListExpensesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExpenses", userID, params)
	ret0, _ := ret[0].(*dto.ListExpensesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExpenses indicates an expected call of GetExpenses.
func (mr *MockExpenseServiceInterfaceMockRecorder) GetExpenses(userID, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExpenses", reflect.TypeOf((*MockExpenseServiceInterface)(nil).GetExpenses), userID, params)
}

// GetRecentExpenses mocks base method.
func (m *MockExpenseServiceInterface) GetRecentExpenses(userID uuid.UUID, limit int) ([]dto.ExpenseResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecentExpenses", userID, limit)
	ret0, _ := ret[0].([]dto.ExpenseResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecentExpenses indicates an expected call of GetRecentExpenses.
func (mr *MockExpenseServiceInterfaceMockRecorder) GetRecentExpenses(userID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecentExpenses", reflect.TypeOf((*MockExpenseServiceInterface)(nil).GetRecentExpenses), userID, limit)
}

// UpdateExpense mocks base method.
func (m *MockExpenseServiceInterface) UpdateExpense(id, userID uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateExpense", id, userID, req)
	ret0, _ := ret[0].(*dto.ExpenseResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateExpense indicates an expected call of UpdateExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) UpdateExpense(id, userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).UpdateExpense), id, userID, req)
}

// MockAuthServiceInterface is a mock of AuthServiceInterface interface.
type MockAuthServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceInterfaceMockRecorder
}

// MockAuthServiceInterfaceMockRecorder is the mock recorder for MockAuthServiceInterface.
type MockAuthServiceInterfaceMockRecorder struct {
	mock *MockAuthServiceInterface
}

// NewMockAuthServiceInterface creates a new mock instance.
func NewMockAuthServiceInterface(ctrl *gomock.Controller) *MockAuthServiceInterface {
	mock := &MockAuthServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAuthServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthServiceInterface) EXPECT() *MockAuthServiceInterfaceMockRecorder {
	return m.recorder
}

// Login mocks base method.
func (m *MockAuthServiceInterface) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", req, ipAddress, userAgent)
	ret0, _ := ret[0].(*dto.AuthResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login.
func (mr *MockAuthServiceInterfaceMockRecorder) Login(req, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthServiceInterface)(nil).Login), req, ipAddress, userAgent)
}

// Register mocks base method.
func (m *MockAuthServiceInterface) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", req, ipAddress, userAgent)
	ret0, _ := ret[0].(*dto.AuthResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Register indicates an expected call of Register.
func (mr *MockAuthServiceInterfaceMockRecorder) Register(req, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthServiceInterface)(nil).Register), req, ipAddress, userAgent)
}

// MockTokenServiceInterface is a mock of TokenServiceInterface interface.
type MockTokenServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceInterfaceMockRecorder
}

// MockTokenServiceInterfaceMockRecorder is the mock recorder for MockTokenServiceInterface.
type MockTokenServiceInterfaceMockRecorder struct {
	mock *MockTokenServiceInterface
}

// NewMockTokenServiceInterface creates a new mock instance.
func NewMockTokenServiceInterface(ctrl *gomock.Controller) *MockTokenServiceInterface {
	mock := &MockTokenServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTokenServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenServiceInterface) EXPECT() *MockTokenServiceInterfaceMockRecorder {
	return m.recorder
}

// ExtractTokenFromHeader mocks base method.
func (m *MockTokenServiceInterface) ExtractTokenFromHeader(authHeader string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtractTokenFromHeader", authHeader)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExtractTokenFromHeader indicates an expected call of ExtractTokenFromHeader.
func (mr *MockTokenServiceInterfaceMockRecorder) ExtractTokenFromHeader(authHeader interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtractTokenFromHeader", reflect.TypeOf((*MockTokenServiceInterface)(nil).ExtractTokenFromHeader), authHeader)
}

// GenerateAccessToken mocks base method.
func (m *MockTokenServiceInterface) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAccessToken", user)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateAccessToken indicates an expected call of GenerateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateAccessToken(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateAccessToken), user)
}

// ValidateAccessToken mocks base method.
func (m *MockTokenServiceInterface) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateAccessToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateAccessToken indicates an expected call of ValidateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateAccessToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateAccessToken), tokenString)
}

// MockPasswordServiceInterface is a mock of PasswordServiceInterface interface.
type MockPasswordServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockPasswordServiceInterfaceMockRecorder
}

// MockPasswordServiceInterfaceMockRecorder is the mock recorder for MockPasswordServiceInterface.
type MockPasswordServiceInterfaceMockRecorder struct {
	mock *MockPasswordServiceInterface
}

// NewMockPasswordServiceInterface creates a new mock instance.
func NewMockPasswordServiceInterface(ctrl *gomock.Controller) *MockPasswordServiceInterface {
	mock := &MockPasswordServiceInterface{ctrl: ctrl}
	mock.recorder = &MockPasswordServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPasswordServiceInterface) EXPECT() *MockPasswordServiceInterfaceMockRecorder {
	return m.recorder
}

// ComparePassword mocks base method.
func (m *MockPasswordServiceInterface) ComparePassword(password, hash string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ComparePassword", password, hash)
	ret0, _ := ret[0].(bool)
	return ret0
}

// ComparePassword indicates an expected call of ComparePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ComparePassword(password, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ComparePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ComparePassword), password, hash)
}

// HashPassword mocks base method.
func (m *MockPasswordServiceInterface) HashPassword(password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashPassword", password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HashPassword indicates an expected call of HashPassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) HashPassword(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashPassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).HashPassword), password)
}

// ValidatePassword mocks base method.
func (m *MockPasswordServiceInterface) ValidatePassword(password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidatePassword", password)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidatePassword indicates an expected call of ValidatePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ValidatePassword(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidatePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ValidatePassword), password)
}

// MockUserProfileServiceInterface is a mock of UserProfileServiceInterface interface.
type MockUserProfileServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserProfileServiceInterfaceMockRecorder
}

// MockUserProfileServiceInterfaceMockRecorder is the mock recorder for MockUserProfileServiceInterface.
type MockUserProfileServiceInterfaceMockRecorder struct {
	mock *MockUserProfileServiceInterface
}

// NewMockUserProfileServiceInterface creates a new mock instance.
func NewMockUserProfileServiceInterface(ctrl *gomock.Controller) *MockUserProfileServiceInterface {
	mock := &MockUserProfileServiceInterface{ctrl: ctrl}
	mock.recorder = &MockUserProfileServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserProfileServiceInterface) EXPECT() *MockUserProfileServiceInterfaceMockRecorder {
	return m.recorder
}

// GetProfile mocks base method.
func (m *MockUserProfileServiceInterface) GetProfile(userID uuid.UUID) (*dto.UserResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfile", userID)
	ret0, _ := ret[0].(*dto.UserResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProfile indicates an expected call of GetProfile.
func (mr *MockUserProfileServiceInterfaceMockRecorder) GetProfile(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockUserProfileServiceInterface)(nil).GetProfile), userID)
}

// InvalidateProfile mocks base method.
func (m *MockUserProfileServiceInterface) InvalidateProfile(userID uuid.UUID) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "InvalidateProfile", userID)
}

// InvalidateProfile indicates an expected call of InvalidateProfile.
func (mr *MockUserProfileServiceInterfaceMockRecorder) InvalidateProfile(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InvalidateProfile", reflect.TypeOf((*MockUserProfileServiceInterface)(nil).InvalidateProfile), userID)
}

// MockAuditServiceInterface is a mock of AuditServiceInterface interface.
type MockAuditServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuditServiceInterfaceMockRecorder
}

// MockAuditServiceInterfaceMockRecorder is the mock recorder for MockAuditServiceInterface.
type MockAuditServiceInterfaceMockRecorder struct {
	mock *MockAuditServiceInterface
}

// NewMockAuditServiceInterface creates a new mock instance.
func NewMockAuditServiceInterface(ctrl *gomock.Controller) *MockAuditServiceInterface {
	mock := &MockAuditServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAuditServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditServiceInterface) EXPECT() *MockAuditServiceInterfaceMockRecorder {
	return m.recorder
}

// GetUserActivity mocks base method.
func (m *MockAuditServiceInterface) GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserActivity", userID, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetUserActivity indicates an expected call of GetUserActivity.
func (mr *MockAuditServiceInterfaceMockRecorder) GetUserActivity(userID, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserActivity", reflect.TypeOf((*MockAuditServiceInterface)(nil).GetUserActivity), userID, offset, limit)
}

// LogExpenseCreated mocks base method.
func (m *MockAuditServiceInterface) LogExpenseCreated(userID, expenseID uuid.UUID, ipAddress, userAgent string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogExpenseCreated", userID, expenseID, ipAddress, userAgent)
}

// LogExpenseCreated indicates an expected call of LogExpenseCreated.
func (mr *MockAuditServiceInterfaceMockRecorder) LogExpenseCreated(userID, expenseID, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogExpenseCreated", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogExpenseCreated), userID, expenseID, ipAddress, userAgent)
}

// LogExpenseDeleted mocks base method.
func (m *MockAuditServiceInterface) LogExpenseDeleted(userID, expenseID uuid.UUID, ipAddress, userAgent string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogExpenseDeleted", userID, expenseID, ipAddress, userAgent)
}

// LogExpenseDeleted indicates an expected call of LogExpenseDeleted.
func (mr *MockAuditServiceInterfaceMockRecorder) LogExpenseDeleted(userID, expenseID, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogExpenseDeleted", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogExpenseDeleted), userID, expenseID, ipAddress, userAgent)
}

// LogExpenseUpdated mocks base method.
func (m *MockAuditServiceInterface) LogExpenseUpdated(userID, expenseID uuid.UUID, ipAddress, userAgent string, changedFields []string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogExpenseUpdated", userID, expenseID, ipAddress, userAgent, changedFields)
}

// LogExpenseUpdated indicates an expected call of LogExpenseUpdated.
func (mr *MockAuditServiceInterfaceMockRecorder) LogExpenseUpdated(userID, expenseID, ipAddress, userAgent, changedFields interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogExpenseUpdated", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogExpenseUpdated), userID, expenseID, ipAddress, userAgent, changedFields)
}

// LogFailedLogin mocks base method.
func (m *MockAuditServiceInterface) LogFailedLogin(email, ipAddress, userAgent, reason string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogFailedLogin", email, ipAddress, userAgent, reason)
}

// LogFailedLogin indicates an expected call of LogFailedLogin.
func (mr *MockAuditServiceInterfaceMockRecorder) LogFailedLogin(email, ipAddress, userAgent, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogFailedLogin", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogFailedLogin), email, ipAddress, userAgent, reason)
}

// LogLogin mocks base method.
func (m *MockAuditServiceInterface) LogLogin(userID uuid.UUID, ipAddress, userAgent string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogLogin", userID, ipAddress, userAgent)
}

// LogLogin indicates an expected call of LogLogin.
func (mr *MockAuditServiceInterfaceMockRecorder) LogLogin(userID, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogLogin", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogLogin), userID, ipAddress, userAgent)
}

// LogRegister mocks base method.
func (m *MockAuditServiceInterface) LogRegister(userID uuid.UUID, ipAddress, userAgent string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogRegister", userID, ipAddress, userAgent)
}

// LogRegister indicates an expected call of LogRegister.
func (mr *MockAuditServiceInterfaceMockRecorder) LogRegister(userID, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogRegister", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogRegister), userID, ipAddress, userAgent)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// RecordAuthEvent mocks base method.
func (m *MockMetricsRecorderInterface) RecordAuthEvent(event string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordAuthEvent", event)
}

// RecordAuthEvent indicates an expected call of RecordAuthEvent.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordAuthEvent(event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordAuthEvent", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordAuthEvent), event)
}

// RecordCacheHit mocks base method.
func (m *MockMetricsRecorderInterface) RecordCacheHit(view string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordCacheHit", view)
}

// RecordCacheHit indicates an expected call of RecordCacheHit.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordCacheHit(view interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordCacheHit", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordCacheHit), view)
}

// RecordCacheInvalidation mocks base method.
func (m *MockMetricsRecorderInterface) RecordCacheInvalidation(view string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordCacheInvalidation", view)
}

// RecordCacheInvalidation indicates an expected call of RecordCacheInvalidation.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordCacheInvalidation(view interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordCacheInvalidation", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordCacheInvalidation), view)
}

// RecordCacheMiss mocks base method.
func (m *MockMetricsRecorderInterface) RecordCacheMiss(view string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordCacheMiss", view)
}

// RecordCacheMiss indicates an expected call of RecordCacheMiss.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordCacheMiss(view interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordCacheMiss", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordCacheMiss), view)
}

// RecordExpenseOperation mocks base method.
func (m *MockMetricsRecorderInterface) RecordExpenseOperation(operation, status string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordExpenseOperation", operation, status)
}

// RecordExpenseOperation indicates an expected call of RecordExpenseOperation.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordExpenseOperation(operation, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordExpenseOperation", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordExpenseOperation), operation, status)
}

// MockExpenseGeneratorInterface is a mock of ExpenseGeneratorInterface interface.
type MockExpenseGeneratorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseGeneratorInterfaceMockRecorder
}

// MockExpenseGeneratorInterfaceMockRecorder is the mock recorder for MockExpenseGeneratorInterface.
type MockExpenseGeneratorInterfaceMockRecorder struct {
	mock *MockExpenseGeneratorInterface
}

// NewMockExpenseGeneratorInterface creates a new mock instance.
func NewMockExpenseGeneratorInterface(ctrl *gomock.Controller) *MockExpenseGeneratorInterface {
	mock := &MockExpenseGeneratorInterface{ctrl: ctrl}
	mock.recorder = &MockExpenseGeneratorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseGeneratorInterface) EXPECT() *MockExpenseGeneratorInterfaceMockRecorder {
	return m.recorder
}

// GenerateExpenses mocks base method.
func (m *MockExpenseGeneratorInterface) GenerateExpenses(userID uuid.UUID, count int, from, to time.Time) []*models.Expense {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateExpenses", userID, count, from, to)
	ret0, _ := ret[0].([]*models.Expense)
	return ret0
}

// GenerateExpenses indicates an expected call of GenerateExpenses.
func (mr *MockExpenseGeneratorInterfaceMockRecorder) GenerateExpenses(userID, count, from, to interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateExpenses", reflect.TypeOf((*MockExpenseGeneratorInterface)(nil).GenerateExpenses), userID, count, from, to)
}
