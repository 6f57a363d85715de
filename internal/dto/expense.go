package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for creating an expense
type CreateExpenseRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	Amount      float64 `json:"amount" validate:"required,expense_amount"`
	Category    string  `json:"category" validate:"required,expense_category"`
}

// UpdateExpenseRequest is the payload for partially updating an expense.
// Only non-nil fields are applied.
type UpdateExpenseRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,expense_amount"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,expense_category"`
}

// ExpenseQueryParams contains the raw listing query parameters
type ExpenseQueryParams struct {
	Period    string `query:"period"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Category  string `query:"category" validate:"omitempty,expense_category"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

// SummaryQueryParams contains the raw summary query parameters
type SummaryQueryParams struct {
	Period    string `query:"period"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// ExpenseResponse is the public shape of an expense record
type ExpenseResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListExpensesResponse is the paginated listing shape. It is cached as a
// whole, so page and limit always agree with the key that stored it.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
