package cmsblog

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2021-03-05", "March 5, 2021"},
		{"2021-03-05T10:30:00Z", "March 5, 2021"},
		{"2021-03-05T10:30:00.123456Z", "March 5, 2021"},
		{"2021-12-31T23:59:59", "December 31, 2021"},
		{"2021-01-09T08:00", "January 9, 2021"},
		{"  2020-02-29  ", "February 29, 2020"},
	}
	for _, tt := range tests {
		got, err := FormatDate(tt.in, time.UTC)
		if err != nil {
			t.Errorf("FormatDate(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateInvalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2021-13-01", "05/03/2021", "2021-02-30"} {
		got, err := FormatDate(in, time.UTC)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("FormatDate(%q) error = %v, want ErrInvalidDate", in, err)
		}
		if got != "" {
			t.Errorf("FormatDate(%q) = %q, want empty", in, got)
		}
	}
}

func TestFormatDateTimezone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	newYork := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		in   string
		loc  *time.Location
		want string
	}{
		{"2021-03-05T20:00:00Z", tokyo, "March 6, 2021"},
		{"2021-03-05T02:00:00Z", newYork, "March 4, 2021"},
		{"2021-03-05", tokyo, "March 5, 2021"},
		{"2021-03-05T02:00:00Z", nil, "March 5, 2021"},
	}
	for _, tt := range tests {
		got, err := FormatDate(tt.in, tt.loc)
		if err != nil {
			t.Errorf("FormatDate(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatDate(%q, %v) = %q, want %q", tt.in, tt.loc, got, tt.want)
		}
	}
}

func TestDisplayDateFallback(t *testing.T) {
	got, err := displayDate("not a date", time.UTC)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != DateUnavailable {
		t.Errorf("displayDate = %q, want %q", got, DateUnavailable)
	}
}
