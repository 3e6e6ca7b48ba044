package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantErr   bool
	}{
		{name: "plain date", input: "2025-03-01", wantYear: 2025, wantMonth: time.March, wantDay: 1},
		{name: "end of year", input: "2025-12-31", wantYear: 2025, wantMonth: time.December, wantDay: 31},
		{name: "single digit components", input: "2025-1-5", wantYear: 2025, wantMonth: time.January, wantDay: 5},
		{name: "missing component", input: "2025-03", wantErr: true},
		{name: "not a number", input: "2025-ab-01", wantErr: true},
		{name: "month out of range", input: "2025-13-01", wantErr: true},
		{name: "day out of range", input: "2025-03-40", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocalDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, got.Year())
			assert.Equal(t, tt.wantMonth, got.Month())
			assert.Equal(t, tt.wantDay, got.Day())
			assert.Equal(t, time.Local, got.Location())
		})
	}
}

// Decomposing "YYYY-MM-DD" into components and rebuilding a local date must
// never shift the day number, whatever the host timezone offset is.
func TestParseLocalDate_NoDayShiftAcrossTimezones(t *testing.T) {
	zones := []string{"Pacific/Kiritimati", "America/Anchorage", "UTC", "Asia/Tokyo"}
	for _, zone := range zones {
		loc, err := time.LoadLocation(zone)
		require.NoError(t, err)

		orig := time.Local
		time.Local = loc
		got, err := ParseLocalDate("2025-03-01")
		time.Local = orig

		require.NoError(t, err)
		assert.Equal(t, 1, got.Day(), "zone %s", zone)
		assert.Equal(t, time.March, got.Month(), "zone %s", zone)
	}
}

func TestFirstWeekday_FridayAllSevenStartDays(t *testing.T) {
	// Months of 2025 whose 1st falls on each weekday Sunday..Saturday.
	tests := []struct {
		month    time.Month
		firstDOW time.Weekday
		wantDay  int
	}{
		{time.June, time.Sunday, 6},
		{time.September, time.Monday, 5},
		{time.April, time.Tuesday, 4},
		{time.January, time.Wednesday, 3},
		{time.May, time.Thursday, 2},
		{time.August, time.Friday, 1},
		{time.February, time.Saturday, 7}, // wraps a full week forward
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			first := time.Date(2025, tt.month, 1, 0, 0, 0, 0, time.Local)
			require.Equal(t, tt.firstDOW, first.Weekday())

			got := FirstWeekday(2025, tt.month, time.Friday)
			assert.Equal(t, time.Friday, got.Weekday())
			assert.Equal(t, tt.wantDay, got.Day())
			assert.GreaterOrEqual(t, got.Day(), 1)
			assert.LessOrEqual(t, got.Day(), 7)
		})
	}
}

func TestNthWeekday_SecondThursday(t *testing.T) {
	// May 1, 2025 is a Thursday: the first Thursday is day 1, the second day 8.
	first := FirstWeekday(2025, time.May, time.Thursday)
	assert.Equal(t, 1, first.Day())

	second := NthWeekday(2025, time.May, time.Thursday, 2)
	assert.Equal(t, 8, second.Day())
	assert.Equal(t, time.Thursday, second.Weekday())
}

func TestWeekdaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		month    time.Month
		target   time.Weekday
		wantDays []int
	}{
		{name: "fridays of august 2025", month: time.August, target: time.Friday, wantDays: []int{1, 8, 15, 22, 29}},
		{name: "fridays of february 2025", month: time.February, target: time.Friday, wantDays: []int{7, 14, 21, 28}},
		{name: "thursdays of may 2025", month: time.May, target: time.Thursday, wantDays: []int{1, 8, 15, 22, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekdaysInMonth(2025, tt.month, tt.target)
			require.Len(t, got, len(tt.wantDays))
			for i, d := range got {
				assert.Equal(t, tt.wantDays[i], d.Day())
				assert.Equal(t, tt.target, d.Weekday())
				assert.Equal(t, tt.month, d.Month())
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	b := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.Local)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
