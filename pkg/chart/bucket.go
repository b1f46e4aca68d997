package chart

import (
	"sort"
	"time"
)

// Point is one day of the source flow series.
type Point struct {
	Date time.Time
	Flow float64
}

// Bucket is one aggregated, labelled datum of a chart series.
type Bucket struct {
	Label        string  `json:"date"`
	FlowMillions float64 `json:"flow"`
}

// label formats, day/month and abbreviated month/year
const (
	dayLabelFormat   = "02/01"
	monthLabelFormat = "Jan 2006"
)

const millionsDivisor = 1e6

// sortAscending returns a copy of the series ordered by date ascending.
// All bucketing operates on this order.
func sortAscending(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// BucketDaily maps the most recent `window` days to one bucket per day.
// A window <= 0 falls back to DefaultDailyWindow.
func BucketDaily(points []Point, window int) []Bucket {
	if window <= 0 {
		window = DefaultDailyWindow
	}

	sorted := sortAscending(points)
	if len(sorted) > window {
		sorted = sorted[len(sorted)-window:]
	}

	buckets := make([]Bucket, 0, len(sorted))
	for _, p := range sorted {
		buckets = append(buckets, Bucket{
			Label:        DayStart(p.Date).Format(dayLabelFormat),
			FlowMillions: p.Flow / millionsDivisor,
		})
	}
	return buckets
}

// BucketWeekly groups the series by Monday-anchored week and sums each
// week's flow. Bucket order follows the chronological order of week starts.
func BucketWeekly(points []Point) []Bucket {
	return bucketGrouped(points, WeekStart, dayLabelFormat)
}

// BucketMonthly groups the series by UTC year-month and sums each month's flow.
func BucketMonthly(points []Point) []Bucket {
	return bucketGrouped(points, MonthStart, monthLabelFormat)
}

// BucketRange filters the series to the inclusive [start, end] UTC window and
// maps one bucket per remaining day, without summation. Inputs carrying a
// time-of-day are normalized to their UTC midnight boundary first.
func BucketRange(points []Point, start, end time.Time) []Bucket {
	from := DayStart(start)
	to := DayStart(end)

	sorted := sortAscending(points)
	buckets := make([]Bucket, 0, len(sorted))
	for _, p := range sorted {
		day := DayStart(p.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		buckets = append(buckets, Bucket{
			Label:        day.Format(dayLabelFormat),
			FlowMillions: p.Flow / millionsDivisor,
		})
	}
	return buckets
}

// bucketGrouped sums flows per group key and emits buckets in key order.
// Days absent from the source series never produce buckets.
func bucketGrouped(points []Point, keyFn func(time.Time) time.Time, labelFormat string) []Bucket {
	grouped := make(map[time.Time]float64)
	for _, p := range sortAscending(points) {
		grouped[keyFn(p.Date)] += p.Flow
	}

	keys := make([]time.Time, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Before(keys[j])
	})

	buckets := make([]Bucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, Bucket{
			Label:        key.Format(labelFormat),
			FlowMillions: grouped[key] / millionsDivisor,
		})
	}
	return buckets
}
