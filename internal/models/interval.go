package models

import (
	"fmt"
	"time"
)

type Interval string

const (
	IntervalHour Interval = "hour"
	IntervalDay  Interval = "day"
	IntervalWeek Interval = "week"
)

// Intervals lists the supported granularities in coarseness order.
var Intervals = []Interval{IntervalHour, IntervalDay, IntervalWeek}

// ParseInterval validates a caller-supplied granularity string. It is the
// only sanctioned way to obtain an Interval from external input.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case IntervalHour, IntervalDay, IntervalWeek:
		return Interval(s), nil
	}
	return "", fmt.Errorf("unsupported interval %q, want one of hour, day, week", s)
}

// FloorTime returns the start of the bucket containing t. Bucketing is done
// in UTC; week buckets start on Monday at midnight.
func (i Interval) FloorTime(t time.Time) time.Time {
	utc := t.UTC()

	switch i {
	case IntervalHour:
		return utc.Truncate(time.Hour)

	case IntervalDay:
		return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	case IntervalWeek:
		midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
		daysSinceMonday := (int(midnight.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -daysSinceMonday)

	default:
		panic(fmt.Sprintf("invalid Interval: %q", i))
	}
}

// FormatBucketStart renders a bucket start for axis labels and table rows.
func (i Interval) FormatBucketStart(t time.Time) string {
	switch i {
	case IntervalHour:
		return i.FloorTime(t).Format("2006-01-02 15:04")
	case IntervalDay, IntervalWeek:
		return i.FloorTime(t).Format("2006-01-02")
	default:
		panic(fmt.Sprintf("invalid Interval: %q", i))
	}
}
