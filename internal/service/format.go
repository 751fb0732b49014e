package service

import (
	"time"
)

// TimestampFallback is returned for anything FormatTimestamp cannot parse.
const TimestampFallback = "N/A"

const timestampLayout = "02 Jan 2006 15:04"

// Survey rows written by older clients carry timestamps in assorted shapes:
// native times, RFC3339 strings, date-only strings, epoch seconds or millis.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Rough boundary between epoch seconds and epoch milliseconds.
const millisBoundary = int64(1e12)

// FormatTimestamp renders any timestamp-like value for display, falling back
// to "N/A" instead of failing.
func FormatTimestamp(v any) string {
	switch t := v.(type) {
	case time.Time:
		return formatTime(t)
	case *time.Time:
		if t == nil {
			return TimestampFallback
		}

		return formatTime(*t)
	case string:
		for _, layout := range stringLayouts {
			parsed, err := time.Parse(layout, t)
			if err == nil {
				return formatTime(parsed)
			}
		}

		return TimestampFallback
	case int64:
		return formatEpoch(t)
	case int:
		return formatEpoch(int64(t))
	case float64:
		return formatEpoch(int64(t))
	default:
		return TimestampFallback
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return TimestampFallback
	}

	return t.Format(timestampLayout)
}

func formatEpoch(v int64) string {
	if v <= 0 {
		return TimestampFallback
	}

	if v >= millisBoundary {
		return formatTime(time.UnixMilli(v))
	}

	return formatTime(time.Unix(v, 0))
}
