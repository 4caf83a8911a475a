package datetime

import (
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

const DateLayout = "2006-01-02"

// ErrInvalidFormat is returned when a value matches none of the accepted layouts
var ErrInvalidFormat = errors.New("invalid datetime format")

// Layouts without a zone are read in the location passed to Parse.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// Parse reads an ISO 8601 timestamp. Values carrying an offset keep it,
// naive values are interpreted in loc.
func Parse(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidFormat
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidFormat
}

// ParseDate reads a YYYY-MM-DD date as midnight in loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return t, nil
}

// Window is an inclusive time range
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, bounds included
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func weekConfig(t time.Time) *now.Now {
	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: t.Location(),
	}
	return cfg.With(t)
}

// Day returns the calendar day containing t, in t's location
func Day(t time.Time) Window {
	n := weekConfig(t)
	return Window{Start: n.BeginningOfDay(), End: n.EndOfDay()}
}

// Week returns Monday 00:00 through Sunday end of day for the week containing t
func Week(t time.Time) Window {
	n := weekConfig(t)
	return Window{Start: n.BeginningOfWeek(), End: n.EndOfWeek()}
}
