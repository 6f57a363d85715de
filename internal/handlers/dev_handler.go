package handlers

import (
	"net/http"
	"time"

	"expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/repositories"
	"expense-tracker-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	generator   services.ExpenseGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(expenseRepo repositories.ExpenseRepositoryInterface) *DevHandler {
	return &DevHandler{
		expenseRepo: expenseRepo,
		generator:   services.NewExpenseGenerator(),
	}
}

// GenerateTestData seeds the authenticated user's account with realistic
// expenses spread across a historical window
//
// Method: POST /api/v1/dev/expenses/generate
// Query parameters:
//   - count: number of expenses to generate (default: 100, max: 1000)
//   - days: days of history to cover (default: 30, max: 365)
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntQueryParam(c, "count", 100)
	if count < 1 {
		count = 1
	}
	if count > 1000 {
		count = 1000
	}

	days := getIntQueryParam(c, "days", 30)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	expenses := h.generator.GenerateExpenses(userID, count, startDate, endDate)

	created := 0
	for _, expense := range expenses {
		if _, err := h.expenseRepo.Create(expense); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":          "test data generated successfully",
		"expenses_created": created,
	})
}
