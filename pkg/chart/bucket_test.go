package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mauirilio/etf-tracker/pkg/errors"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "monday maps to itself",
			input:    day(2024, time.January, 8),
			expected: day(2024, time.January, 8),
		},
		{
			name:     "wednesday maps to monday",
			input:    day(2024, time.January, 10),
			expected: day(2024, time.January, 8),
		},
		{
			name:     "sunday belongs to the week ending that sunday",
			input:    day(2024, time.January, 14),
			expected: day(2024, time.January, 8),
		},
		{
			name:     "local time-of-day is normalized",
			input:    time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC),
			expected: day(2024, time.January, 8),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WeekStart(tc.input))
		})
	}
}

func TestBucketMonthly(t *testing.T) {
	t.Run("empty series yields empty buckets", func(t *testing.T) {
		buckets := BucketMonthly(nil)
		assert.Empty(t, buckets)
		assert.NotNil(t, buckets)
	})

	t.Run("full january sums into a single bucket", func(t *testing.T) {
		points := make([]Point, 0, 31)
		for d := 1; d <= 31; d++ {
			points = append(points, Point{Date: day(2024, time.January, d), Flow: 1e6})
		}

		buckets := BucketMonthly(points)

		assert.Len(t, buckets, 1)
		assert.Equal(t, "Jan 2024", buckets[0].Label)
		assert.InDelta(t, 31, buckets[0].FlowMillions, 1e-9)
	})

	t.Run("months emit in chronological order regardless of input order", func(t *testing.T) {
		points := []Point{
			{Date: day(2024, time.March, 5), Flow: 3e6},
			{Date: day(2024, time.January, 5), Flow: 1e6},
			{Date: day(2024, time.February, 5), Flow: 2e6},
		}

		buckets := BucketMonthly(points)

		assert.Len(t, buckets, 3)
		assert.Equal(t, "Jan 2024", buckets[0].Label)
		assert.Equal(t, "Feb 2024", buckets[1].Label)
		assert.Equal(t, "Mar 2024", buckets[2].Label)
		assert.InDelta(t, 1, buckets[0].FlowMillions, 1e-9)
		assert.InDelta(t, 2, buckets[1].FlowMillions, 1e-9)
		assert.InDelta(t, 3, buckets[2].FlowMillions, 1e-9)
	})
}

func TestBucketWeekly(t *testing.T) {
	t.Run("sunday stays with the preceding monday's week", func(t *testing.T) {
		// 2024-01-14 is a Sunday, 2024-01-15 the following Monday
		points := []Point{
			{Date: day(2024, time.January, 14), Flow: 2e6},
			{Date: day(2024, time.January, 15), Flow: 5e6},
		}

		buckets := BucketWeekly(points)

		assert.Len(t, buckets, 2)
		assert.Equal(t, "08/01", buckets[0].Label)
		assert.InDelta(t, 2, buckets[0].FlowMillions, 1e-9)
		assert.Equal(t, "15/01", buckets[1].Label)
		assert.InDelta(t, 5, buckets[1].FlowMillions, 1e-9)
	})

	t.Run("whole week sums into one bucket", func(t *testing.T) {
		points := make([]Point, 0, 7)
		for d := 8; d <= 14; d++ { // Monday..Sunday
			points = append(points, Point{Date: day(2024, time.January, d), Flow: 1e6})
		}

		buckets := BucketWeekly(points)

		assert.Len(t, buckets, 1)
		assert.Equal(t, "08/01", buckets[0].Label)
		assert.InDelta(t, 7, buckets[0].FlowMillions, 1e-9)
	})
}

func TestBucketDaily(t *testing.T) {
	t.Run("trailing window caps bucket count", func(t *testing.T) {
		points := make([]Point, 0, 90)
		for i := 0; i < 90; i++ {
			points = append(points, Point{Date: day(2024, time.January, 1).AddDate(0, 0, i), Flow: 1e6})
		}

		buckets := BucketDaily(points, 30)

		assert.Len(t, buckets, 30)
		// last bucket is the most recent day, 2024-03-30
		assert.Equal(t, "30/03", buckets[len(buckets)-1].Label)
	})

	t.Run("series shorter than window keeps every day", func(t *testing.T) {
		points := []Point{
			{Date: day(2024, time.January, 2), Flow: 2e6},
			{Date: day(2024, time.January, 1), Flow: 1e6},
		}

		buckets := BucketDaily(points, 30)

		assert.Len(t, buckets, 2)
		assert.Equal(t, "01/01", buckets[0].Label)
		assert.InDelta(t, 1, buckets[0].FlowMillions, 1e-9)
		assert.Equal(t, "02/01", buckets[1].Label)
		assert.InDelta(t, 2, buckets[1].FlowMillions, 1e-9)
	})

	t.Run("zero window falls back to default", func(t *testing.T) {
		points := make([]Point, 0, 60)
		for i := 0; i < 60; i++ {
			points = append(points, Point{Date: day(2024, time.January, 1).AddDate(0, 0, i), Flow: 1e6})
		}

		buckets := BucketDaily(points, 0)

		assert.Len(t, buckets, DefaultDailyWindow)
	})
}

func TestBucketRange(t *testing.T) {
	points := []Point{
		{Date: day(2024, time.January, 10), Flow: 1e6},
		{Date: day(2024, time.January, 11), Flow: 2e6},
		{Date: day(2024, time.January, 12), Flow: 3e6},
	}

	t.Run("start equals end yields exactly that day", func(t *testing.T) {
		buckets := BucketRange(points, day(2024, time.January, 11), day(2024, time.January, 11))

		assert.Len(t, buckets, 1)
		assert.Equal(t, "11/01", buckets[0].Label)
		assert.InDelta(t, 2, buckets[0].FlowMillions, 1e-9)
	})

	t.Run("range bracketing no days yields empty list", func(t *testing.T) {
		buckets := BucketRange(points, day(2024, time.February, 1), day(2024, time.February, 10))

		assert.Empty(t, buckets)
		assert.NotNil(t, buckets)
	})

	t.Run("bounds with local time-of-day normalize to UTC midnight", func(t *testing.T) {
		// 2024-01-10 22:00 UTC-3 is already 2024-01-11 01:00 UTC, so the
		// window collapses to the single UTC day of the 11th
		loc := time.FixedZone("UTC-3", -3*60*60)
		start := time.Date(2024, time.January, 10, 22, 0, 0, 0, loc)
		end := time.Date(2024, time.January, 11, 8, 30, 0, 0, loc)

		buckets := BucketRange(points, start, end)

		assert.Len(t, buckets, 1)
		assert.Equal(t, "11/01", buckets[0].Label)
		assert.InDelta(t, 2, buckets[0].FlowMillions, 1e-9)
	})

	t.Run("bounds whose UTC instant stays on the same calendar day", func(t *testing.T) {
		loc := time.FixedZone("UTC-3", -3*60*60)
		start := time.Date(2024, time.January, 10, 8, 0, 0, 0, loc)
		end := time.Date(2024, time.January, 11, 8, 30, 0, 0, loc)

		buckets := BucketRange(points, start, end)

		assert.Len(t, buckets, 2)
		assert.Equal(t, "10/01", buckets[0].Label)
		assert.Equal(t, "11/01", buckets[1].Label)
	})

	t.Run("no summation inside a range", func(t *testing.T) {
		buckets := BucketRange(points, day(2024, time.January, 10), day(2024, time.January, 12))

		assert.Len(t, buckets, 3)
		for i, expected := range []float64{1, 2, 3} {
			assert.InDelta(t, expected, buckets[i].FlowMillions, 1e-9)
		}
	})
}

func TestBucketSeries(t *testing.T) {
	t.Run("empty month series", func(t *testing.T) {
		buckets, err := BucketSeries(nil, Query{Granularity: GranularityMonth})

		assert.NoError(t, err)
		assert.Empty(t, buckets)
	})

	t.Run("range without bounds fails", func(t *testing.T) {
		_, err := BucketSeries(nil, Query{Granularity: GranularityRange})

		assert.Error(t, err)
		assert.True(t, errors.ErrorCodeEquals(err, errors.GeneralBadRequestError))
	})

	t.Run("unknown granularity fails", func(t *testing.T) {
		_, err := BucketSeries(nil, Query{Granularity: Granularity("hourly")})

		assert.Error(t, err)
		assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidGranularityError))
	})
}

func TestParseGranularity(t *testing.T) {
	for _, g := range AllGranularities {
		parsed, err := ParseGranularity(string(g))
		assert.NoError(t, err)
		assert.Equal(t, g, parsed)
	}

	_, err := ParseGranularity("quarterly")
	assert.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidGranularityError))
	assert.False(t, IsValidGranularity("quarterly"))
	assert.True(t, IsValidGranularity("week"))
}
