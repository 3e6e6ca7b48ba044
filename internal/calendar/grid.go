package calendar

import (
	"fmt"
	"sort"
	"time"

	"communitycenter/internal/domain"
)

// Grid dimensions: 6 weeks of 7 days, and the inline event cap per cell.
const (
	GridCells       = 42
	MaxInlineEvents = 2
)

// Day is one cell of the monthly grid: a date plus the events bucketed onto
// it. InMonth marks whether the cell belongs to the target month (styling
// only; adjacent-month cells still carry their events). Inline holds at most
// MaxInlineEvents events; the rest are counted in Overflow with a ready-made
// "+N more" label.
type Day struct {
	Date          string          `json:"date"`
	Weekday       string          `json:"weekday"`
	InMonth       bool            `json:"in_month"`
	Today         bool            `json:"today"`
	Events        []*domain.Event `json:"events"`
	Inline        []*domain.Event `json:"inline"`
	Overflow      int             `json:"overflow"`
	OverflowLabel string          `json:"overflow_label,omitempty"`
}

// DayGroup is one entry of the list view: a date and every event on it, with
// no truncation.
type DayGroup struct {
	Date    string          `json:"date"`
	Weekday string          `json:"weekday"`
	Events  []*domain.Event `json:"events"`
}

// BuildGrid produces the 6x7 monthly grid for (year, month): exactly
// GridCells consecutive days starting from the Sunday on/before the 1st.
// Events are bucketed by local calendar day. today is compared by
// year/month/day; pass the zero time to mark no cell as today.
func BuildGrid(year int, month time.Month, events []*domain.Event, today time.Time) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	buckets := bucketByDay(events)

	days := make([]Day, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		date := start.AddDate(0, 0, i)
		dayEvents := buckets[FormatDate(date)]
		day := Day{
			Date:    FormatDate(date),
			Weekday: date.Weekday().String(),
			InMonth: date.Month() == month,
			Today:   !today.IsZero() && SameDay(date, today),
			Events:  dayEvents,
			Inline:  dayEvents,
		}
		if len(dayEvents) > MaxInlineEvents {
			day.Inline = dayEvents[:MaxInlineEvents]
			day.Overflow = len(dayEvents) - MaxInlineEvents
			day.OverflowLabel = fmt.Sprintf("+%d more", day.Overflow)
		}
		days = append(days, day)
	}
	return days
}

// BuildList groups the month's events by calendar day, sorted by date
// ascending. Days without events are omitted.
func BuildList(events []*domain.Event) []DayGroup {
	buckets := bucketByDay(events)

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]DayGroup, 0, len(dates))
	for _, date := range dates {
		d, err := ParseLocalDate(date)
		if err != nil {
			continue
		}
		groups = append(groups, DayGroup{
			Date:    date,
			Weekday: d.Weekday().String(),
			Events:  buckets[date],
		})
	}
	return groups
}

// bucketByDay indexes events by their normalized local calendar day. Events
// with unparseable dates are dropped from the view rather than erroring.
func bucketByDay(events []*domain.Event) map[string][]*domain.Event {
	buckets := make(map[string][]*domain.Event)
	for _, e := range events {
		d, err := ParseLocalDate(e.Date)
		if err != nil {
			continue
		}
		key := FormatDate(d)
		buckets[key] = append(buckets[key], e)
	}
	for _, dayEvents := range buckets {
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].StartTime < dayEvents[j].StartTime
		})
	}
	return buckets
}
