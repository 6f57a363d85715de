package models

import "github.com/shopspring/decimal"

// CategoryBreakdown contains aggregated expense data for one category
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int64           `json:"count"`
}

// ExpenseSummary contains aggregated expense data over a date-bounded set.
// The breakdown only carries categories actually present in the set; the sum
// of breakdown amounts/counts always equals the grand totals.
type ExpenseSummary struct {
	TotalAmount       decimal.Decimal     `json:"total_amount"`
	TotalCount        int64               `json:"total_count"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
}

// EmptySummary returns the summary shape for an empty filtered set
func EmptySummary() *ExpenseSummary {
	return &ExpenseSummary{
		TotalAmount:       decimal.Zero,
		TotalCount:        0,
		CategoryBreakdown: []CategoryBreakdown{},
	}
}
