package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseFilters contains filtering options for expense queries.
// It is constructed once at the service boundary and never passed around as
// an untyped map.
type ExpenseFilters struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Offset    int
	Limit     int
}
