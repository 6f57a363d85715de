package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount     = errors.New("expense amount must be positive")
	ErrAmountTooLarge    = errors.New("expense amount exceeds maximum")
	ErrAmountPrecision   = errors.New("expense amount must have at most 2 decimal places")
	ErrInvalidCategory   = errors.New("invalid expense category")
	ErrTitleRequired     = errors.New("expense title is required")
	ErrOwnerRequired     = errors.New("expense owner is required")
)

// MaxExpenseAmount is the upper bound for a single expense
var MaxExpenseAmount = decimal.NewFromFloat(999999.99)

// Expense represents a single monetary expense record owned by exactly one user.
// UserID is immutable after creation; ownership is enforced at the query level.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_created,priority:1" json:"user_id"`
	Title       string          `gorm:"type:varchar(100);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(20);not null" json:"category"`
	CreatedAt   time.Time       `gorm:"not null;index:idx_expenses_user_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()

	// Set timestamps if not already set (for tests)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return nil
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrOwnerRequired
	}

	if e.Title == "" {
		return ErrTitleRequired
	}

	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}

	if !IsValidCategory(e.Category) {
		return ErrInvalidCategory
	}

	return nil
}

// ValidateAmount checks that an amount is positive, within bounds and has at
// most 2 fractional digits.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(MaxExpenseAmount) {
		return ErrAmountTooLarge
	}
	if amount.Exponent() < -2 {
		return ErrAmountPrecision
	}
	return nil
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}
