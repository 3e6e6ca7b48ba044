// Package calendar contains the pure date math behind the monthly calendar:
// local-date parsing, grid and list view building, recurrence helpers, and
// presentation rules for times and categories.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseLocalDate parses a "YYYY-MM-DD" string into a local-time date at
// midnight. The string is decomposed into components and reassembled with
// time.Local so the day number never shifts with the host timezone, which
// is what time.Parse (UTC) would do.
func ParseLocalDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in date %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month in date %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid day in date %q", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// FormatDate renders t as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether a and b fall on the same calendar day, compared
// by year/month/day components rather than instant equality.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FirstWeekday returns the first occurrence of target in the given month.
// The offset from the 1st is (target - weekday(1st) + 7) mod 7: zero when
// the 1st already falls on target, and a wrap into the following week when
// the 1st falls after target.
func FirstWeekday(year int, month time.Month, target time.Weekday) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := (int(target) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset)
}

// NthWeekday returns the nth (1-based) occurrence of target in the month.
// It does not check that the result stays within the month.
func NthWeekday(year int, month time.Month, target time.Weekday, n int) time.Time {
	return FirstWeekday(year, month, target).AddDate(0, 0, 7*(n-1))
}

// WeekdaysInMonth returns every occurrence of target in the month, stepping
// +7 days from the first occurrence.
func WeekdaysInMonth(year int, month time.Month, target time.Weekday) []time.Time {
	var days []time.Time
	for d := FirstWeekday(year, month, target); d.Month() == month; d = d.AddDate(0, 0, 7) {
		days = append(days, d)
	}
	return days
}
