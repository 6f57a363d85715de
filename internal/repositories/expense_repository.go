package repositories

import (
	"errors"
	"fmt"
	"time"

	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

const (
	defaultFilterLimit = 20
	defaultRecentLimit = 10
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts a new expense and reads it back from the store
func (r *expenseRepository) Create(expense *models.Expense) (*models.Expense, error) {
	if expense.UserID == uuid.Nil {
		return nil, fmt.Errorf("failed to create expense: %w", models.ErrOwnerRequired)
	}

	if err := r.db.Create(expense).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if expense.ID == uuid.Nil {
		return nil, fmt.Errorf("failed to create expense: no id assigned on insert")
	}

	// Read-after-write: a missing row here is an integrity fault, not a
	// regular not-found.
	var created models.Expense
	if err := r.db.First(&created, "id = ?", expense.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to read back created expense %s: record missing after insert", expense.ID)
		}
		return nil, fmt.Errorf("failed to read back created expense: %w", err)
	}

	return &created, nil
}

// GetWithFilters retrieves expenses matching the filters with pagination
func (r *expenseRepository) GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultFilterLimit
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	if err := r.filterQuery(filters).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered expenses: %w", err)
	}

	// Secondary sort on id keeps pagination deterministic for equal
	// creation timestamps.
	if err := r.filterQuery(filters).
		Offset(offset).Limit(limit).
		Order("created_at DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered expenses: %w", err)
	}

	return expenses, total, nil
}

func (r *expenseRepository) filterQuery(filters models.ExpenseFilters) *gorm.DB {
	query := r.db.Model(&models.Expense{}).
		Where("user_id = ?", filters.UserID)

	if filters.StartDate != nil {
		query = query.Where("created_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("created_at <= ?", *filters.EndDate)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	return query
}

// UpdateByIDAndUserID applies a partial update to an expense owned by userID.
// The dual predicate is the ownership boundary: another user's expense id
// behaves exactly like a nonexistent one.
func (r *expenseRepository) UpdateByIDAndUserID(id, userID uuid.UUID, updates map[string]interface{}) (*models.Expense, error) {
	if len(updates) == 0 {
		updates = map[string]interface{}{}
	}
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrExpenseNotFound
	}

	var updated models.Expense
	if err := r.db.First(&updated, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, fmt.Errorf("failed to read back updated expense: %w", err)
	}

	return &updated, nil
}

// DeleteByIDAndUserID removes an expense owned by userID
func (r *expenseRepository) DeleteByIDAndUserID(id, userID uuid.UUID) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete expense: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// categoryRow is the scan target for the grouped aggregation
type categoryRow struct {
	Category string
	Count    int64
	Amount   decimal.Decimal
}

// totalsRow is the scan target for the grand totals
type totalsRow struct {
	Count  int64
	Amount decimal.Decimal
}

// GetCategorySummary aggregates a user's expenses grouped by category over
// an optional date range, plus grand totals over the same set
func (r *expenseRepository) GetCategorySummary(userID uuid.UUID, startDate, endDate *time.Time) (*models.ExpenseSummary, error) {
	var totals totalsRow
	if err := r.summaryQuery(userID, startDate, endDate).
		Select("COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get expense totals: %w", err)
	}

	if totals.Count == 0 {
		return models.EmptySummary(), nil
	}

	var rows []categoryRow
	if err := r.summaryQuery(userID, startDate, endDate).
		Select("category, COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").
		Group("category").
		Order("amount DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(rows))
	for _, row := range rows {
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category: row.Category,
			Amount:   row.Amount,
			Count:    row.Count,
		})
	}

	return &models.ExpenseSummary{
		TotalAmount:       totals.Amount,
		TotalCount:        totals.Count,
		CategoryBreakdown: breakdown,
	}, nil
}

func (r *expenseRepository) summaryQuery(userID uuid.UUID, startDate, endDate *time.Time) *gorm.DB {
	query := r.db.Model(&models.Expense{}).
		Where("user_id = ?", userID)

	if startDate != nil {
		query = query.Where("created_at >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("created_at <= ?", *endDate)
	}

	return query
}

// GetRecentByUserID retrieves the newest expenses for a user
func (r *expenseRepository) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Expense, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	var expenses []models.Expense
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent expenses: %w", err)
	}

	return expenses, nil
}
