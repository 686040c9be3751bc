package cmsblog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned by FormatDate for input it cannot parse.
var ErrInvalidDate = errors.New("invalid date")

// DateUnavailable is shown in place of a date that failed to format.
const DateUnavailable = "Date unavailable"

// DisplayLayout renders dates as "March 5, 2021".
const DisplayLayout = "January 2, 2006"

// zoned layouts carry their own offset; local ones are read in the site zone.
var (
	zonedLayouts = []string{time.RFC3339Nano}
	localLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}
)

// ParseDate parses an ISO-8601 date or date-time. Values without an offset
// are interpreted in loc (UTC when nil).
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// FormatDate returns value as "Month D, YYYY" in loc, e.g. "2021-03-05"
// becomes "March 5, 2021". Unparseable input yields an error wrapping
// ErrInvalidDate.
func FormatDate(value string, loc *time.Location) (string, error) {
	t, err := ParseDate(value, loc)
	if err != nil {
		return "", err
	}
	return t.Format(DisplayLayout), nil
}

// displayDate is FormatDate with the visible fallback applied.
func displayDate(value string, loc *time.Location) (string, error) {
	s, err := FormatDate(value, loc)
	if err != nil {
		return DateUnavailable, err
	}
	return s, nil
}
