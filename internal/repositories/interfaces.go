package repositories

import (
	"time"

	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the persistence contract for expenses.
// Every read and write is scoped by the owning user; update and delete take
// both the expense id and the user id so ownership is enforced in the query
// itself rather than in a layer above it.
type ExpenseRepositoryInterface interface {
	// Create inserts the expense and returns the stored record as read back
	// from the database, so server-assigned fields are never guessed.
	Create(expense *models.Expense) (*models.Expense, error)

	// GetWithFilters returns one page of matching expenses, newest first,
	// together with the total matching count unbounded by pagination.
	GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, int64, error)

	// UpdateByIDAndUserID applies a partial update to the expense matching
	// both id and userID and returns the post-update record.
	// ErrExpenseNotFound covers nonexistent ids and other users' ids alike.
	UpdateByIDAndUserID(id, userID uuid.UUID, updates map[string]interface{}) (*models.Expense, error)

	// DeleteByIDAndUserID removes the expense matching both id and userID.
	// Returns true iff exactly one row was removed.
	DeleteByIDAndUserID(id, userID uuid.UUID) (bool, error)

	// GetCategorySummary aggregates the user's expenses over an optional
	// date range: per-category amounts and counts plus grand totals.
	GetCategorySummary(userID uuid.UUID, startDate, endDate *time.Time) (*models.ExpenseSummary, error)

	// GetRecentByUserID returns the newest expenses for a user, capped at limit.
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Expense, error)
}

// UserRepositoryInterface defines the persistence contract for users
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLastLogin(id uuid.UUID) error
}

// AuditLogRepositoryInterface defines the persistence contract for audit logs
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}
