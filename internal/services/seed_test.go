package services

import (
	"context"
	"testing"
	"time"

	"communitycenter/internal/calendar"
	"communitycenter/internal/domain"
	"communitycenter/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_SeedYear(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEventRepository()
	seeder := NewSeedService(repo)

	created, err := seeder.SeedYear(ctx, 2025)
	require.NoError(t, err)

	// 2025 has 52 Fridays: two events each, plus 12 board meetings and 4 annual events.
	fridays := 0
	for month := time.January; month <= time.December; month++ {
		fridays += len(calendar.WeekdaysInMonth(2025, month, time.Friday))
	}
	require.Equal(t, 52, fridays)
	assert.Equal(t, 2*fridays+12+4, created)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, created)
}

func TestSeedService_FridayEvents(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEventRepository()
	_, err := NewSeedService(repo).SeedYear(ctx, 2025)
	require.NoError(t, err)

	// February 2025 starts on a Saturday, so its first Friday is the 7th.
	feb, err := repo.ListForMonth(ctx, 2025, 2)
	require.NoError(t, err)

	bandDates := map[string]bool{}
	karaokeDates := map[string]bool{}
	for _, e := range feb {
		switch e.Title {
		case seedBandTitle:
			bandDates[e.Date] = true
			assert.Equal(t, "18:00", e.StartTime)
			assert.Equal(t, "22:00", e.EndTime)
			assert.Equal(t, seedMainHallRoomID, e.RoomID)
			assert.Equal(t, domain.CategoryActivities, e.Category)
		case seedKaraokeTitle:
			karaokeDates[e.Date] = true
			assert.Equal(t, "19:00", e.StartTime)
			assert.Equal(t, "22:00", e.EndTime)
			assert.Equal(t, seedBanquetRoomID, e.RoomID)
			assert.Equal(t, domain.CategoryActivities, e.Category)
		}
	}

	wantFridays := []string{"2025-02-07", "2025-02-14", "2025-02-21", "2025-02-28"}
	for _, d := range wantFridays {
		assert.True(t, bandDates[d], "missing band night on %s", d)
		assert.True(t, karaokeDates[d], "missing karaoke on %s", d)
	}
	assert.Len(t, bandDates, len(wantFridays))

	// The band and karaoke nights are in different rooms.
	assert.NotEqual(t, seedMainHallRoomID, seedBanquetRoomID)
}

func TestSeedService_BoardMeetingOnSecondThursday(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEventRepository()
	_, err := NewSeedService(repo).SeedYear(ctx, 2025)
	require.NoError(t, err)

	// May 1, 2025 is a Thursday: the second Thursday is May 8.
	may, err := repo.ListForMonth(ctx, 2025, 5)
	require.NoError(t, err)

	var meetings []*domain.Event
	for _, e := range may {
		if e.Title == seedBoardTitle {
			meetings = append(meetings, e)
		}
	}
	require.Len(t, meetings, 1)
	assert.Equal(t, "2025-05-08", meetings[0].Date)
	assert.Equal(t, "17:00", meetings[0].StartTime)
	assert.Equal(t, "18:00", meetings[0].EndTime)
	assert.Equal(t, domain.CategoryMeetings, meetings[0].Category)
	assert.Equal(t, seedMeetingRoomRoomID, meetings[0].RoomID)
}

func TestSeedService_AnnualEvents(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEventRepository()
	_, err := NewSeedService(repo).SeedYear(ctx, 2025)
	require.NoError(t, err)

	dec, err := repo.ListForMonth(ctx, 2025, 12)
	require.NoError(t, err)

	var fair *domain.Event
	for _, e := range dec {
		if e.Title == "Holiday Craft Fair" {
			fair = e
		}
	}
	require.NotNil(t, fair)
	assert.Equal(t, "2025-12-06", fair.Date)
	assert.Equal(t, domain.CategoryCommunityEvents, fair.Category)
}

func TestSeedService_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEventRepository()
	seeder := NewSeedService(repo)

	first, err := seeder.SeedYear(ctx, 2025)
	require.NoError(t, err)
	require.NotZero(t, first)

	second, err := seeder.SeedYear(ctx, 2025)
	require.NoError(t, err)
	assert.Zero(t, second)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, first)
}
