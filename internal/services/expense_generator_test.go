package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseGenerator_GenerateExpenses(t *testing.T) {
	generator := NewExpenseGenerator()
	userID := uuid.New()
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	expenses := generator.GenerateExpenses(userID, 50, from, to)
	require.Len(t, expenses, 50)

	for _, expense := range expenses {
		assert.Equal(t, userID, expense.UserID)
		assert.NoError(t, expense.Validate())
		assert.False(t, expense.CreatedAt.Before(from))
		assert.False(t, expense.CreatedAt.After(to))

		bounds := categoryAmountRanges[expense.Category]
		assert.True(t, expense.Amount.InexactFloat64() >= bounds.min)
		assert.True(t, expense.Amount.InexactFloat64() <= bounds.max)
	}
}

func TestExpenseGenerator_ZeroCount(t *testing.T) {
	generator := NewExpenseGenerator()
	assert.Nil(t, generator.GenerateExpenses(uuid.New(), 0, time.Now(), time.Now()))
	assert.Nil(t, generator.GenerateExpenses(uuid.New(), -5, time.Now(), time.Now()))
}

func TestExpenseGenerator_InvertedWindow(t *testing.T) {
	generator := NewExpenseGenerator()
	userID := uuid.New()
	later := time.Now()
	earlier := later.AddDate(0, 0, -7)

	// Swapped bounds are tolerated
	expenses := generator.GenerateExpenses(userID, 10, later, earlier)
	require.Len(t, expenses, 10)

	for _, expense := range expenses {
		assert.False(t, expense.CreatedAt.Before(earlier))
		assert.False(t, expense.CreatedAt.After(later))
	}
}
