package chart

import (
	"fmt"
	"time"

	"github.com/mauirilio/etf-tracker/pkg/errors"
)

// Query selects a granularity and its parameters for one chart render.
type Query struct {
	Granularity Granularity
	// Window bounds the daily view to a trailing number of days.
	Window int
	// Start and End bound the range view, inclusive whole UTC days.
	Start time.Time
	End   time.Time
}

// BucketSeries buckets a daily series according to the query. An empty input
// series, or a range matching no days, yields an empty bucket list.
func BucketSeries(points []Point, q Query) ([]Bucket, error) {
	switch q.Granularity {
	case GranularityDay:
		return BucketDaily(points, q.Window), nil
	case GranularityWeek:
		return BucketWeekly(points), nil
	case GranularityMonth:
		return BucketMonthly(points), nil
	case GranularityRange:
		if q.Start.IsZero() || q.End.IsZero() {
			return nil, errors.NewCodedError(
				errors.GeneralBadRequestError,
				"range granularity requires start and end dates",
				errors.CategoryValidation,
			)
		}
		return BucketRange(points, q.Start, q.End), nil
	default:
		return nil, errors.NewCodedError(
			errors.InvalidGranularityError,
			fmt.Sprintf("unsupported granularity: %s", q.Granularity),
			errors.CategoryValidation,
		)
	}
}
