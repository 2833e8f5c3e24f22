package entity

import (
	"fmt"
	"time"
)

// Window is the width of an aggregation bucket.
type Window string

const (
	WindowHour Window = "hour"
	WindowDay  Window = "day"
)

// Truncate returns the start of the window containing t. Days are cut at
// midnight in t's own location.
func (w Window) Truncate(t time.Time) (time.Time, error) {
	switch w {
	case WindowHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location()), nil
	case WindowDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	default:
		return time.Time{}, fmt.Errorf("unknown window %q", string(w))
	}
}

// Next returns the start of the window after start.
func (w Window) Next(start time.Time) time.Time {
	if w == WindowDay {
		return start.AddDate(0, 0, 1)
	}
	return start.Add(time.Hour)
}

// Label is the human name used in chart titles.
func (w Window) Label() string {
	if w == WindowDay {
		return "Daily"
	}
	return "Hourly"
}

// SentimentBucket holds the mean scores of all headlines in one window.
// A bucket with Count == 0 is a gap inserted to keep the time axis
// continuous; its means are undefined and left at zero.
type SentimentBucket struct {
	PeriodStart    time.Time `json:"period_start"`
	Count          int       `json:"count"`
	Negative       float64   `json:"neg"`
	Neutral        float64   `json:"neu"`
	Positive       float64   `json:"pos"`
	SentimentScore float64   `json:"sentiment_score"`
}

// Empty reports whether the bucket is a gap.
func (b SentimentBucket) Empty() bool {
	return b.Count == 0
}
