package services

import (
	"time"

	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
)

// ExpenseServiceInterface defines the expense query, summary and mutation
// operations. Reads are served through the cache where a cached view exists;
// every mutation invalidates all cached views belonging to the owning user.
type ExpenseServiceInterface interface {
	GetExpenses(userID uuid.UUID, params dto.ExpenseQueryParams) (*dto.ListExpensesResponse, error)
	GetExpenseSummary(userID uuid.UUID, params dto.SummaryQueryParams) (*models.ExpenseSummary, error)
	GetRecentExpenses(userID uuid.UUID, limit int) ([]dto.ExpenseResponse, error)
	CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	UpdateExpense(id, userID uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	DeleteExpense(id, userID uuid.UUID) error
}

// AuthServiceInterface defines registration and login
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
}

// TokenServiceInterface defines JWT operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing operations
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	ValidatePassword(password string) error
}

// UserProfileServiceInterface defines cached profile reads
type UserProfileServiceInterface interface {
	GetProfile(userID uuid.UUID) (*dto.UserResponse, error)
	InvalidateProfile(userID uuid.UUID)
}

// AuditServiceInterface defines best-effort audit trail writes. Recording
// never fails the operation being audited.
type AuditServiceInterface interface {
	LogLogin(userID uuid.UUID, ipAddress, userAgent string)
	LogFailedLogin(email, ipAddress, userAgent, reason string)
	LogRegister(userID uuid.UUID, ipAddress, userAgent string)
	LogExpenseCreated(userID, expenseID uuid.UUID, ipAddress, userAgent string)
	LogExpenseUpdated(userID, expenseID uuid.UUID, ipAddress, userAgent string, changedFields []string)
	LogExpenseDeleted(userID, expenseID uuid.UUID, ipAddress, userAgent string)
	GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

// MetricsRecorderInterface defines the metrics emitted by the services layer
type MetricsRecorderInterface interface {
	RecordCacheHit(view string)
	RecordCacheMiss(view string)
	RecordCacheInvalidation(view string)
	RecordExpenseOperation(operation, status string)
	RecordAuthEvent(event string)
}

// ExpenseGeneratorInterface produces realistic seed expenses for development
type ExpenseGeneratorInterface interface {
	GenerateExpenses(userID uuid.UUID, count int, from, to time.Time) []*models.Expense
}
