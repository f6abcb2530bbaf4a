package domain

import "fmt"

const AllCategories = "all"

type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// ParseDateRange treats an empty value as DateRangeAll.
func ParseDateRange(s string) (DateRange, error) {
	switch r := DateRange(s); r {
	case "":
		return DateRangeAll, nil
	case DateRangeAll, DateRangeToday, DateRangeWeek, DateRangeMonth:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown date range %q", ErrValidation, s)
	}
}

type EventFilters struct {
	Category  string    `json:"category"`
	Search    string    `json:"search"`
	DateRange DateRange `json:"dateRange"`
}

func DefaultFilters() EventFilters {
	return EventFilters{
		Category:  AllCategories,
		DateRange: DateRangeAll,
	}
}
