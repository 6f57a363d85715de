package services

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"expense-tracker-api/internal/cache"
	"expense-tracker-api/internal/config"
	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"
	"expense-tracker-api/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ExpenseServiceTestSuite is the test suite for the expense service
type ExpenseServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	cache       *cache.MemoryCache
	service     ExpenseServiceInterface
	userID      uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *ExpenseServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.cache = cache.NewMemoryCache(time.Minute)
	s.service = NewExpenseService(
		s.expenseRepo,
		s.cache,
		NewNoopMetrics(),
		&config.CacheConfig{
			ListingTTL: 30 * time.Minute,
			SummaryTTL: time.Hour,
		},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *ExpenseServiceTestSuite) TearDownTest() {
	s.cache.Stop()
	s.ctrl.Finish()
}

// TestExpenseServiceTestSuite runs the test suite
func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

func (s *ExpenseServiceTestSuite) storedExpense(amount float64) models.Expense {
	now := time.Now()
	return models.Expense{
		ID:        uuid.New(),
		UserID:    s.userID,
		Title:     "Weekly groceries",
		Amount:    decimal.NewFromFloat(amount),
		Category:  models.CategoryGroceries,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *ExpenseServiceTestSuite) TestGetExpenses_SecondCallServedFromCache() {
	expenses := []models.Expense{s.storedExpense(54.30)}
	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return(expenses, int64(1), nil).
		Times(1)

	first, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)

	second, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), first, second)
	assert.Equal(s.T(), int64(1), second.Total)
	require.Len(s.T(), second.Expenses, 1)
	assert.Equal(s.T(), "Weekly groceries", second.Expenses[0].Title)
}

func (s *ExpenseServiceTestSuite) TestGetExpenses_DifferentFiltersMissSeparately() {
	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return([]models.Expense{}, int64(0), nil).
		Times(2)

	_, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{Category: models.CategoryGroceries})
	require.NoError(s.T(), err)

	_, err = s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{Category: models.CategoryHealth})
	require.NoError(s.T(), err)
}

func (s *ExpenseServiceTestSuite) TestGetExpenses_PaginationDefaults() {
	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.ExpenseFilters) ([]models.Expense, int64, error) {
			assert.Equal(s.T(), 0, filters.Offset)
			assert.Equal(s.T(), 20, filters.Limit)
			return []models.Expense{}, int64(0), nil
		})

	response, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{Page: -3, Limit: 0})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, response.Page)
	assert.Equal(s.T(), 20, response.Limit)
}

func (s *ExpenseServiceTestSuite) TestGetExpenses_OffsetFromPage() {
	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.ExpenseFilters) ([]models.Expense, int64, error) {
			assert.Equal(s.T(), 20, filters.Offset)
			assert.Equal(s.T(), 10, filters.Limit)
			return []models.Expense{}, int64(0), nil
		})

	_, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{Page: 3, Limit: 10})
	require.NoError(s.T(), err)
}

func (s *ExpenseServiceTestSuite) TestGetExpenses_InvalidCustomRangeDropsDateFilter() {
	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.ExpenseFilters) ([]models.Expense, int64, error) {
			assert.Nil(s.T(), filters.StartDate)
			assert.Nil(s.T(), filters.EndDate)
			return []models.Expense{}, int64(0), nil
		})

	_, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{
		Period:    PeriodCustom,
		StartDate: "2026-01-20",
		EndDate:   "2026-01-10",
	})
	require.NoError(s.T(), err)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_InvalidatesCachedViews() {
	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return([]models.Expense{}, int64(0), nil).
		Times(2)
	s.expenseRepo.EXPECT().
		GetCategorySummary(s.userID, gomock.Nil(), gomock.Nil()).
		Return(models.EmptySummary(), nil).
		Times(2)

	_, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)
	_, err = s.service.GetExpenseSummary(s.userID, dto.SummaryQueryParams{})
	require.NoError(s.T(), err)

	created := s.storedExpense(12.00)
	s.expenseRepo.EXPECT().
		Create(gomock.Any()).
		Return(&created, nil)

	_, err = s.service.CreateExpense(s.userID, &dto.CreateExpenseRequest{
		Title:    "Weekly groceries",
		Amount:   12.00,
		Category: models.CategoryGroceries,
	})
	require.NoError(s.T(), err)

	// Both cached views are gone; the repo serves the next reads
	_, err = s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)
	_, err = s.service.GetExpenseSummary(s.userID, dto.SummaryQueryParams{})
	require.NoError(s.T(), err)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_OnlyOwnersViewsInvalidated() {
	otherUserID := uuid.New()

	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return([]models.Expense{}, int64(0), nil).
		Times(2)

	_, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)
	_, err = s.service.GetExpenses(otherUserID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)

	created := s.storedExpense(12.00)
	s.expenseRepo.EXPECT().
		Create(gomock.Any()).
		Return(&created, nil)

	_, err = s.service.CreateExpense(s.userID, &dto.CreateExpenseRequest{
		Title:    "Weekly groceries",
		Amount:   12.00,
		Category: models.CategoryGroceries,
	})
	require.NoError(s.T(), err)

	// The other user's listing is still cached: no further repo call
	_, err = s.service.GetExpenses(otherUserID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense_InvalidatesCachedViews() {
	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return([]models.Expense{}, int64(0), nil).
		Times(2)

	_, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)

	updated := s.storedExpense(99.00)
	newTitle := "Corrected"
	s.expenseRepo.EXPECT().
		UpdateByIDAndUserID(updated.ID, s.userID, gomock.Any()).
		Return(&updated, nil)

	_, err = s.service.UpdateExpense(updated.ID, s.userID, &dto.UpdateExpenseRequest{Title: &newTitle})
	require.NoError(s.T(), err)

	_, err = s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{})
	require.NoError(s.T(), err)
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	expenseID := uuid.New()
	title := "Ghost"
	s.expenseRepo.EXPECT().
		UpdateByIDAndUserID(expenseID, s.userID, gomock.Any()).
		Return(nil, repositories.ErrExpenseNotFound)

	_, err := s.service.UpdateExpense(expenseID, s.userID, &dto.UpdateExpenseRequest{Title: &title})
	assert.ErrorIs(s.T(), err, ErrExpenseNotFound)
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense_NoFields() {
	_, err := s.service.UpdateExpense(uuid.New(), s.userID, &dto.UpdateExpenseRequest{})
	assert.ErrorIs(s.T(), err, ErrNoFieldsToSet)
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense_RejectsInvalidAmount() {
	badAmount := 10.555
	_, err := s.service.UpdateExpense(uuid.New(), s.userID, &dto.UpdateExpenseRequest{Amount: &badAmount})
	assert.ErrorIs(s.T(), err, models.ErrAmountPrecision)
}

func (s *ExpenseServiceTestSuite) TestDeleteExpense_Success() {
	expenseID := uuid.New()
	s.expenseRepo.EXPECT().
		DeleteByIDAndUserID(expenseID, s.userID).
		Return(true, nil)

	assert.NoError(s.T(), s.service.DeleteExpense(expenseID, s.userID))
}

func (s *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	expenseID := uuid.New()
	s.expenseRepo.EXPECT().
		DeleteByIDAndUserID(expenseID, s.userID).
		Return(false, nil)

	assert.ErrorIs(s.T(), s.service.DeleteExpense(expenseID, s.userID), ErrExpenseNotFound)
}

func (s *ExpenseServiceTestSuite) TestGetExpenseSummary_CachedPerPeriod() {
	s.expenseRepo.EXPECT().
		GetCategorySummary(s.userID, gomock.Any(), gomock.Any()).
		Return(models.EmptySummary(), nil).
		Times(2)

	// week and month are distinct entries; repeating each period hits cache
	for i := 0; i < 2; i++ {
		_, err := s.service.GetExpenseSummary(s.userID, dto.SummaryQueryParams{Period: PeriodWeek})
		require.NoError(s.T(), err)
		_, err = s.service.GetExpenseSummary(s.userID, dto.SummaryQueryParams{Period: PeriodMonth})
		require.NoError(s.T(), err)
	}
}

func (s *ExpenseServiceTestSuite) TestGetExpenseSummary_DistinctCustomRangesDoNotCollide() {
	s.expenseRepo.EXPECT().
		GetCategorySummary(s.userID, gomock.Any(), gomock.Any()).
		Return(models.EmptySummary(), nil).
		Times(2)

	_, err := s.service.GetExpenseSummary(s.userID, dto.SummaryQueryParams{
		Period: PeriodCustom, StartDate: "2026-01-01", EndDate: "2026-01-31",
	})
	require.NoError(s.T(), err)

	// A different range must not be served from the January entry
	_, err = s.service.GetExpenseSummary(s.userID, dto.SummaryQueryParams{
		Period: PeriodCustom, StartDate: "2026-02-01", EndDate: "2026-02-28",
	})
	require.NoError(s.T(), err)

	// Repeating the first range is a hit
	_, err = s.service.GetExpenseSummary(s.userID, dto.SummaryQueryParams{
		Period: PeriodCustom, StartDate: "2026-01-01", EndDate: "2026-01-31",
	})
	require.NoError(s.T(), err)
}

func (s *ExpenseServiceTestSuite) TestGetRecentExpenses_NeverCached() {
	expenses := []models.Expense{s.storedExpense(10)}
	s.expenseRepo.EXPECT().
		GetRecentByUserID(s.userID, 5).
		Return(expenses, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		recent, err := s.service.GetRecentExpenses(s.userID, 5)
		require.NoError(s.T(), err)
		assert.Len(s.T(), recent, 1)
	}
}

func (s *ExpenseServiceTestSuite) TestGetExpenses_RepositoryError() {
	s.expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return(nil, int64(0), errors.New("connection reset"))

	_, err := s.service.GetExpenses(s.userID, dto.ExpenseQueryParams{})
	assert.Error(s.T(), err)
}

// brokenCache fails every operation; used to prove cache outages degrade
// to database reads instead of failing requests
type brokenCache struct{}

var errCacheDown = errors.New("cache backend down")

func (b *brokenCache) Get(string) (string, bool, error)            { return "", false, errCacheDown }
func (b *brokenCache) Set(string, string, time.Duration) error     { return errCacheDown }
func (b *brokenCache) GetJSON(string, interface{}) (bool, error)   { return false, errCacheDown }
func (b *brokenCache) SetJSON(string, interface{}, time.Duration) error { return errCacheDown }
func (b *brokenCache) Delete(string) error                         { return errCacheDown }
func (b *brokenCache) DeletePattern(string) error                  { return errCacheDown }

func TestExpenseService_CacheFailuresDegradeGracefully(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expenseRepo := repository_mocks.NewMockExpenseRepositoryInterface(ctrl)
	service := NewExpenseService(
		expenseRepo,
		&brokenCache{},
		NewNoopMetrics(),
		&config.CacheConfig{ListingTTL: 30 * time.Minute, SummaryTTL: time.Hour},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	userID := uuid.New()

	// Reads fall through to the repository on every call
	expenseRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return([]models.Expense{}, int64(0), nil).
		Times(2)
	for i := 0; i < 2; i++ {
		_, err := service.GetExpenses(userID, dto.ExpenseQueryParams{})
		require.NoError(t, err)
	}

	expenseRepo.EXPECT().
		GetCategorySummary(userID, gomock.Nil(), gomock.Nil()).
		Return(models.EmptySummary(), nil)
	_, err := service.GetExpenseSummary(userID, dto.SummaryQueryParams{})
	require.NoError(t, err)

	// Mutations succeed even though invalidation fails
	created := models.Expense{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "Weekly groceries",
		Amount:   decimal.NewFromFloat(12),
		Category: models.CategoryGroceries,
	}
	expenseRepo.EXPECT().
		Create(gomock.Any()).
		Return(&created, nil)

	_, err = service.CreateExpense(userID, &dto.CreateExpenseRequest{
		Title:    "Weekly groceries",
		Amount:   12,
		Category: models.CategoryGroceries,
	})
	require.NoError(t, err)
}
