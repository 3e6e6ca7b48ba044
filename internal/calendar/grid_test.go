package calendar

import (
	"fmt"
	"testing"
	"time"

	"communitycenter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_CompletenessForAnyMonth(t *testing.T) {
	// Exactly 42 cells, starting on a Sunday, strictly consecutive days.
	for year := 2024; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			t.Run(fmt.Sprintf("%d-%s", year, month), func(t *testing.T) {
				grid := BuildGrid(year, month, nil, time.Time{})
				require.Len(t, grid, GridCells)

				first, err := ParseLocalDate(grid[0].Date)
				require.NoError(t, err)
				assert.Equal(t, time.Sunday, first.Weekday())

				prev := first
				for i := 1; i < len(grid); i++ {
					d, err := ParseLocalDate(grid[i].Date)
					require.NoError(t, err)
					assert.True(t, SameDay(prev.AddDate(0, 0, 1), d), "cell %d not consecutive", i)
					prev = d
				}
			})
		}
	}
}

func TestBuildGrid_InMonthFlags(t *testing.T) {
	// June 2025 starts on a Sunday, so the grid begins on June 1 and the
	// trailing cells spill into July.
	grid := BuildGrid(2025, time.June, nil, time.Time{})
	assert.Equal(t, "2025-06-01", grid[0].Date)
	assert.True(t, grid[0].InMonth)
	assert.True(t, grid[29].InMonth)  // June 30
	assert.False(t, grid[30].InMonth) // July 1

	// January 2025 starts on a Wednesday: three leading December cells.
	grid = BuildGrid(2025, time.January, nil, time.Time{})
	assert.Equal(t, "2024-12-29", grid[0].Date)
	assert.False(t, grid[0].InMonth)
	assert.False(t, grid[2].InMonth)
	assert.True(t, grid[3].InMonth)
}

func TestBuildGrid_BucketsEventsByLocalDay(t *testing.T) {
	events := []*domain.Event{
		{ID: 1, Title: "Yoga", Date: "2025-03-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, Title: "Pottery", Date: "2025-03-01", StartTime: "08:00", EndTime: "09:00"},
		{ID: 3, Title: "Book Club", Date: "2025-03-15", StartTime: "18:00", EndTime: "19:00"},
		{ID: 4, Title: "Bad Date", Date: "not-a-date", StartTime: "10:00", EndTime: "11:00"},
	}
	grid := BuildGrid(2025, time.March, events, time.Time{})

	byDate := make(map[string]Day, len(grid))
	for _, d := range grid {
		byDate[d.Date] = d
	}

	first := byDate["2025-03-01"]
	require.Len(t, first.Events, 2)
	// Sorted by start time within the day.
	assert.Equal(t, "Pottery", first.Events[0].Title)
	assert.Equal(t, "Yoga", first.Events[1].Title)

	require.Len(t, byDate["2025-03-15"].Events, 1)

	// The unparseable date is dropped, never bucketed anywhere.
	for _, d := range grid {
		for _, e := range d.Events {
			assert.NotEqual(t, 4, e.ID)
		}
	}
}

func TestBuildGrid_OverflowThreshold(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantInline int
		wantLabel string
	}{
		{name: "two events stay inline", count: 2, wantInline: 2, wantLabel: ""},
		{name: "three events overflow by one", count: 3, wantInline: 2, wantLabel: "+1 more"},
		{name: "five events overflow by three", count: 5, wantInline: 2, wantLabel: "+3 more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []*domain.Event
			for i := 0; i < tt.count; i++ {
				events = append(events, &domain.Event{
					ID:        i + 1,
					Title:     fmt.Sprintf("Event %d", i+1),
					Date:      "2025-03-10",
					StartTime: fmt.Sprintf("%02d:00", 9+i),
				})
			}
			grid := BuildGrid(2025, time.March, events, time.Time{})

			var day Day
			for _, d := range grid {
				if d.Date == "2025-03-10" {
					day = d
				}
			}
			assert.Len(t, day.Inline, tt.wantInline)
			assert.Len(t, day.Events, tt.count)
			assert.Equal(t, tt.wantLabel, day.OverflowLabel)
			if tt.wantLabel == "" {
				assert.Zero(t, day.Overflow)
			} else {
				assert.Equal(t, tt.count-MaxInlineEvents, day.Overflow)
			}
		})
	}
}

func TestBuildGrid_TodayFlag(t *testing.T) {
	today := time.Date(2025, time.March, 14, 15, 30, 0, 0, time.Local)
	grid := BuildGrid(2025, time.March, nil, today)

	var marked []string
	for _, d := range grid {
		if d.Today {
			marked = append(marked, d.Date)
		}
	}
	assert.Equal(t, []string{"2025-03-14"}, marked)

	// Zero time marks nothing.
	for _, d := range BuildGrid(2025, time.March, nil, time.Time{}) {
		assert.False(t, d.Today)
	}
}

func TestBuildList(t *testing.T) {
	events := []*domain.Event{
		{ID: 1, Title: "Late", Date: "2025-03-20", StartTime: "19:00"},
		{ID: 2, Title: "Early", Date: "2025-03-02", StartTime: "09:00"},
		{ID: 3, Title: "Also Early", Date: "2025-03-02", StartTime: "08:00"},
		{ID: 4, Title: "Mid", Date: "2025-03-10", StartTime: "12:00"},
	}
	groups := BuildList(events)
	require.Len(t, groups, 3)

	assert.Equal(t, "2025-03-02", groups[0].Date)
	assert.Equal(t, "2025-03-10", groups[1].Date)
	assert.Equal(t, "2025-03-20", groups[2].Date)

	// All events for the day, no truncation, sorted by start time.
	require.Len(t, groups[0].Events, 2)
	assert.Equal(t, "Also Early", groups[0].Events[0].Title)
	assert.Equal(t, "Early", groups[0].Events[1].Title)
	assert.Equal(t, "Sunday", groups[0].Weekday)
}

func TestBuildList_Empty(t *testing.T) {
	assert.Empty(t, BuildList(nil))
}
