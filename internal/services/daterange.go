package services

import (
	"log/slog"
	"time"
)

const (
	PeriodWeek        = "week"
	PeriodMonth       = "month"
	PeriodThreeMonths = "3months"
	PeriodCustom      = "custom"

	dateLayout = "2006-01-02"
)

// ResolveDateRange turns a period selector into concrete inclusive bounds.
// Relative periods are anchored at the current day: the start is pushed back
// the requested span and widened to the start of that day, the end is the end
// of today. A custom period needs both dates parseable and ordered; anything
// else resolves to no bounds at all, which callers treat as "no date filter".
func ResolveDateRange(period, startDate, endDate string) (*time.Time, *time.Time) {
	now := time.Now()

	switch period {
	case PeriodWeek:
		return boundsFrom(now.AddDate(0, 0, -7), now)
	case PeriodMonth:
		return boundsFrom(now.AddDate(0, -1, 0), now)
	case PeriodThreeMonths:
		return boundsFrom(now.AddDate(0, -3, 0), now)
	case PeriodCustom:
		return resolveCustomRange(startDate, endDate)
	case "":
		return nil, nil
	default:
		slog.Warn("unrecognized period, applying no date filter", "period", period)
		return nil, nil
	}
}

func resolveCustomRange(startDate, endDate string) (*time.Time, *time.Time) {
	if startDate == "" || endDate == "" {
		slog.Warn("incomplete custom range, applying no date filter",
			"start_date", startDate, "end_date", endDate)
		return nil, nil
	}

	start, err := time.ParseInLocation(dateLayout, startDate, time.Local)
	if err != nil {
		slog.Warn("unparseable custom start date, applying no date filter",
			"start_date", startDate, "error", err)
		return nil, nil
	}

	end, err := time.ParseInLocation(dateLayout, endDate, time.Local)
	if err != nil {
		slog.Warn("unparseable custom end date, applying no date filter",
			"end_date", endDate, "error", err)
		return nil, nil
	}

	if start.After(end) {
		slog.Warn("custom range start after end, applying no date filter",
			"start_date", startDate, "end_date", endDate)
		return nil, nil
	}

	return boundsFrom(start, end)
}

func boundsFrom(start, end time.Time) (*time.Time, *time.Time) {
	s := startOfDay(start)
	e := endOfDay(end)
	return &s, &e
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
