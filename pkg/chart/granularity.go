// Package chart buckets a daily flow series into chart-ready aggregates.
package chart

import (
	"fmt"
	"time"

	"github.com/mauirilio/etf-tracker/pkg/errors"
)

// Granularity represents a supported chart bucketing granularity.
type Granularity string

// Supported granularities.
const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityRange Granularity = "range"
)

// DefaultDailyWindow is the trailing number of days shown by the daily view.
const DefaultDailyWindow = 30

// AllGranularities lists every supported granularity.
var AllGranularities = []Granularity{
	GranularityDay, GranularityWeek, GranularityMonth, GranularityRange,
}

// granularity registry for lookup
var granularityRegistry = make(map[string]Granularity)

func init() {
	for _, g := range AllGranularities {
		granularityRegistry[string(g)] = g
	}
}

// ParseGranularity returns a granularity by name.
func ParseGranularity(name string) (Granularity, error) {
	g, exists := granularityRegistry[name]
	if !exists {
		return "", errors.NewCodedError(
			errors.InvalidGranularityError,
			fmt.Sprintf("unsupported granularity: %s", name),
			errors.CategoryValidation,
		)
	}
	return g, nil
}

// IsValidGranularity checks if a granularity name is supported.
func IsValidGranularity(name string) bool {
	_, exists := granularityRegistry[name]
	return exists
}

// DayStart truncates a timestamp to its UTC calendar day.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart truncates a timestamp to the Monday starting its week, in UTC.
// Sunday is treated as weekday 7, so it belongs to the week ending that day.
func WeekStart(t time.Time) time.Time {
	day := DayStart(t)
	weekday := int(day.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}

// MonthStart truncates a timestamp to the first day of its UTC month.
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
