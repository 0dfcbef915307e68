package models

import (
	"fmt"
	"time"
)

type WindowSize string

const (
	WindowMinute WindowSize = "minute"
	WindowHour   WindowSize = "hour"
)

// NewWindowSizeFromString parses a configured window size.
func NewWindowSizeFromString(s string) (WindowSize, error) {
	switch w := WindowSize(s); w {
	case WindowMinute, WindowHour:
		return w, nil
	default:
		return "", fmt.Errorf("invalid window size: %q", s)
	}
}

func (w WindowSize) Duration() time.Duration {
	switch w {
	case WindowMinute:
		return time.Minute
	case WindowHour:
		return time.Hour
	default:
		panic(fmt.Sprintf("invalid WindowSize: %q", w))
	}
}

// FormatBucket truncates t to the window in UTC and renders it as a
// fixed-width, big-endian key ("2024-01-01 05:00"), so plain string
// comparison of keys is chronological.
func (w WindowSize) FormatBucket(t time.Time) string {
	utc := t.UTC().Truncate(w.Duration())

	switch w {
	case WindowMinute:
		return utc.Format("2006-01-02 15:04")
	case WindowHour:
		return utc.Format("2006-01-02 15:00")
	}
	return ""
}

// ParseBucket is the inverse of FormatBucket. It rejects unknown windows
// and keys that are not aligned to the window.
func (w WindowSize) ParseBucket(key string) (time.Time, error) {
	if _, err := NewWindowSizeFromString(string(w)); err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s bucket %q: %w", w, key, err)
	}
	if !t.Truncate(w.Duration()).Equal(t) {
		return time.Time{}, fmt.Errorf("bucket %q is not aligned to a %s", key, w)
	}
	return t, nil
}
