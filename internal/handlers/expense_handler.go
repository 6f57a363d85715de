package handlers

import (
	"errors"
	"net/http"

	"expense-tracker-api/internal/dto"
	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
	auditService   services.AuditServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	expenseService services.ExpenseServiceInterface,
	auditService services.AuditServiceInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		auditService:   auditService,
	}
}

// ListExpenses retrieves the authenticated user's expenses, filtered by
// period and category, one page at a time
//
// Method: GET /api/v1/expenses
// Query parameters: period, startDate, endDate, category, page, limit
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var params dto.ExpenseQueryParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(params); err != nil {
		return err
	}

	response, err := h.expenseService.GetExpenses(userID, params)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetSummary retrieves category totals for the authenticated user over the
// requested period
//
// Method: GET /api/v1/expenses/summary
// Query parameters: period, startDate, endDate
func (h *ExpenseHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var params dto.SummaryQueryParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	summary, err := h.expenseService.GetExpenseSummary(userID, params)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetRecent retrieves the authenticated user's newest expenses
//
// Method: GET /api/v1/expenses/recent
// Query parameters: limit (default 10, max 50)
func (h *ExpenseHandler) GetRecent(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	limit := getIntQueryParam(c, "limit", defaultRecentLimit)
	if limit < 1 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	expenses, err := h.expenseService.GetRecentExpenses(userID, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"expenses": expenses,
	})
}

// CreateExpense creates a new expense for the authenticated user
//
// Method: POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.CreateExpense(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	expenseID, _ := uuid.Parse(expense.ID)
	h.auditService.LogExpenseCreated(userID, expenseID, getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusCreated, expense)
}

// UpdateExpense partially updates one of the authenticated user's expenses.
// An expense belonging to another user is reported as not found.
//
// Method: PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.UpdateExpense(expenseID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExpenseNotFound):
			return SendError(c, apierrors.ExpenseNotFound)
		case errors.Is(err, services.ErrNoFieldsToSet):
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("No fields to update"))
		default:
			return SendSystemError(c, err)
		}
	}

	h.auditService.LogExpenseUpdated(userID, expenseID, getClientIP(c), c.Request().UserAgent(), changedFields(&req))

	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes one of the authenticated user's expenses
//
// Method: DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	if err := h.expenseService.DeleteExpense(expenseID, userID); err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	h.auditService.LogExpenseDeleted(userID, expenseID, getClientIP(c), c.Request().UserAgent())

	return c.NoContent(http.StatusNoContent)
}

func changedFields(req *dto.UpdateExpenseRequest) []string {
	fields := make([]string, 0, 4)
	if req.Title != nil {
		fields = append(fields, "title")
	}
	if req.Description != nil {
		fields = append(fields, "description")
	}
	if req.Amount != nil {
		fields = append(fields, "amount")
	}
	if req.Category != nil {
		fields = append(fields, "category")
	}
	return fields
}
