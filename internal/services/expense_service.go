package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-tracker-api/internal/cache"
	"expense-tracker-api/internal/config"
	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrNoFieldsToSet   = errors.New("no fields to update")
)

const (
	listingKeyPrefix = "expenses:"
	summaryKeyPrefix = "expense_summary:"

	viewListing = "listing"
	viewSummary = "summary"

	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// ExpenseService is the cached read path and write path for expenses.
// Listings and summaries are read through an app-level cache keyed per user;
// create, update and delete invalidate every cached view of the owning user
// after the database write has committed. Cache failures are logged and
// degrade to plain database reads, they never fail a request.
type ExpenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	cache       cache.Cache
	metrics     MetricsRecorderInterface
	listingTTL  time.Duration
	summaryTTL  time.Duration
	logger      *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	cacheStore cache.Cache,
	metrics MetricsRecorderInterface,
	cacheConfig *config.CacheConfig,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		cache:       cacheStore,
		metrics:     metrics,
		listingTTL:  cacheConfig.ListingTTL,
		summaryTTL:  cacheConfig.SummaryTTL,
		logger:      logger,
	}
}

// GetExpenses returns one page of the user's expenses, newest first.
// The cache key encodes every normalized query parameter, so two requests
// hit the same entry only when they would produce the same page.
func (s *ExpenseService) GetExpenses(userID uuid.UUID, params dto.ExpenseQueryParams) (*dto.ListExpensesResponse, error) {
	page, limit := normalizePagination(params.Page, params.Limit)
	startDate, endDate := ResolveDateRange(params.Period, params.StartDate, params.EndDate)

	filters := models.ExpenseFilters{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Category:  params.Category,
		Offset:    (page - 1) * limit,
		Limit:     limit,
	}

	key := listingCacheKey(userID, filters)

	var cached dto.ListExpensesResponse
	found, err := s.cache.GetJSON(key, &cached)
	if err != nil {
		s.logger.Warn("listing cache read failed, falling back to database",
			"user_id", userID, "error", err)
	} else if found {
		s.metrics.RecordCacheHit(viewListing)
		return &cached, nil
	}
	s.metrics.RecordCacheMiss(viewListing)

	expenses, total, err := s.expenseRepo.GetWithFilters(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	response := &dto.ListExpensesResponse{
		Expenses: toExpenseResponses(expenses),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}

	if err := s.cache.SetJSON(key, response, s.listingTTL); err != nil {
		s.logger.Warn("listing cache write failed",
			"user_id", userID, "error", err)
	}

	return response, nil
}

// GetExpenseSummary returns category totals and grand totals for the user
// over the resolved period.
func (s *ExpenseService) GetExpenseSummary(userID uuid.UUID, params dto.SummaryQueryParams) (*models.ExpenseSummary, error) {
	startDate, endDate := ResolveDateRange(params.Period, params.StartDate, params.EndDate)
	key := summaryCacheKey(userID, params.Period, startDate, endDate)

	var cached models.ExpenseSummary
	found, err := s.cache.GetJSON(key, &cached)
	if err != nil {
		s.logger.Warn("summary cache read failed, falling back to database",
			"user_id", userID, "error", err)
	} else if found {
		s.metrics.RecordCacheHit(viewSummary)
		return &cached, nil
	}
	s.metrics.RecordCacheMiss(viewSummary)

	summary, err := s.expenseRepo.GetCategorySummary(userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense summary: %w", err)
	}

	if err := s.cache.SetJSON(key, summary, s.summaryTTL); err != nil {
		s.logger.Warn("summary cache write failed",
			"user_id", userID, "error", err)
	}

	return summary, nil
}

// GetRecentExpenses returns the user's newest expenses without caching.
// The recent view is cheap and changes on every write, a cached copy would
// spend most of its lifetime invalidated.
func (s *ExpenseService) GetRecentExpenses(userID uuid.UUID, limit int) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.GetRecentByUserID(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent expenses: %w", err)
	}
	return toExpenseResponses(expenses), nil
}

// CreateExpense persists a new expense for the user and invalidates the
// user's cached views.
func (s *ExpenseService) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense := &models.Expense{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
	}

	created, err := s.expenseRepo.Create(expense)
	if err != nil {
		s.metrics.RecordExpenseOperation("create", "error")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.invalidateUserViews(userID)
	s.metrics.RecordExpenseOperation("create", "success")

	response := toExpenseResponse(created)
	return &response, nil
}

// UpdateExpense applies the non-nil fields of req to the expense matching
// both id and userID. Another user's expense id behaves exactly like a
// nonexistent one.
func (s *ExpenseService) UpdateExpense(id, userID uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	updates, err := buildExpenseUpdates(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.expenseRepo.UpdateByIDAndUserID(id, userID, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		s.metrics.RecordExpenseOperation("update", "error")
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.invalidateUserViews(userID)
	s.metrics.RecordExpenseOperation("update", "success")

	response := toExpenseResponse(updated)
	return &response, nil
}

// DeleteExpense removes the expense matching both id and userID
func (s *ExpenseService) DeleteExpense(id, userID uuid.UUID) error {
	deleted, err := s.expenseRepo.DeleteByIDAndUserID(id, userID)
	if err != nil {
		s.metrics.RecordExpenseOperation("delete", "error")
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if !deleted {
		return ErrExpenseNotFound
	}

	s.invalidateUserViews(userID)
	s.metrics.RecordExpenseOperation("delete", "success")
	return nil
}

// invalidateUserViews drops every cached listing and summary belonging to
// the user. Runs after the database write, so a failed invalidation leaves
// at worst a stale entry bounded by its TTL.
func (s *ExpenseService) invalidateUserViews(userID uuid.UUID) {
	patterns := []string{
		listingKeyPrefix + userID.String() + "*",
		summaryKeyPrefix + userID.String() + "*",
	}

	for _, pattern := range patterns {
		if err := s.cache.DeletePattern(pattern); err != nil {
			s.logger.Warn("cache invalidation failed",
				"user_id", userID, "pattern", pattern, "error", err)
		}
	}
	s.metrics.RecordCacheInvalidation("user_views")
}

// listingKeyParams is the canonical serialized form of a listing query.
// Field order is fixed by the struct, so equal queries always marshal to
// the same bytes and therefore the same cache key.
type listingKeyParams struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Category  string     `json:"category"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}

// listingCacheKey derives the cache key for one listing page. The encoded
// suffix uses the URL-safe base64 alphabet: the standard alphabet can emit
// '/', which the glob used by invalidation treats as a path separator.
func listingCacheKey(userID uuid.UUID, filters models.ExpenseFilters) string {
	payload, err := json.Marshal(listingKeyParams{
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Category:  filters.Category,
		Limit:     filters.Limit,
		Offset:    filters.Offset,
	})
	if err != nil {
		// Marshaling a plain struct of times and strings cannot fail;
		// degrade to an unencoded suffix rather than panic.
		return listingKeyPrefix + userID.String() + ":unkeyed"
	}
	return listingKeyPrefix + userID.String() + ":" + base64.URLEncoding.EncodeToString(payload)
}

// summaryCacheKey derives the cache key for a summary view. Relative periods
// are keyed by name. Custom periods append the resolved bounds so two
// different custom ranges never share an entry; an unresolvable custom range
// falls through to the bare period key, same as no filter.
func summaryCacheKey(userID uuid.UUID, period string, startDate, endDate *time.Time) string {
	key := summaryKeyPrefix + userID.String()
	if period == "" {
		return key
	}
	key += ":" + period
	if period == PeriodCustom && startDate != nil && endDate != nil {
		key += fmt.Sprintf(":%d-%d", startDate.Unix(), endDate.Unix())
	}
	return key
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func buildExpenseUpdates(req *dto.UpdateExpenseRequest) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		if err := models.ValidateAmount(amount); err != nil {
			return nil, err
		}
		updates["amount"] = amount
	}
	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			return nil, models.ErrInvalidCategory
		}
		updates["category"] = *req.Category
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToSet
	}
	return updates, nil
}

func toExpenseResponse(expense *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          expense.ID.String(),
		UserID:      expense.UserID.String(),
		Title:       expense.Title,
		Description: expense.Description,
		Amount:      expense.Amount,
		Category:    expense.Category,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

func toExpenseResponses(expenses []models.Expense) []dto.ExpenseResponse {
	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}
	return responses
}
