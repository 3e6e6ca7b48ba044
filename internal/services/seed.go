package services

import (
	"context"
	"fmt"
	"time"

	"communitycenter/internal/calendar"
	"communitycenter/internal/domain"
)

// Rooms referenced by the generated schedule.
const (
	seedMainHallRoomID    = 1
	seedBanquetRoomID     = 2
	seedMeetingRoomRoomID = 3
)

const (
	seedBandTitle    = "Friday Night Live Band & Dance"
	seedKaraokeTitle = "Karaoke Night"
	seedBoardTitle   = "Board of Directors Meeting"
)

// SeedService synthesizes the recurring baseline schedule for a full year:
// two events every Friday, a board meeting on the second Thursday of each
// month, and a handful of fixed annual events. It is invoked at startup and
// from tests; constructing a repository never seeds implicitly.
type SeedService struct {
	eventRepo domain.EventRepository
}

// NewSeedService returns a SeedService writing into the given repository.
func NewSeedService(eventRepo domain.EventRepository) *SeedService {
	return &SeedService{eventRepo: eventRepo}
}

// SeedYear generates the recurring events for the given year and returns the
// number created. Seeding is idempotent: when the year's schedule is already
// present, nothing is added.
func (s *SeedService) SeedYear(ctx context.Context, year int) (int, error) {
	seeded, err := s.alreadySeeded(ctx, year)
	if err != nil {
		return 0, err
	}
	if seeded {
		return 0, nil
	}

	created := 0
	add := func(e *domain.Event) error {
		if err := s.eventRepo.Create(ctx, e); err != nil {
			return fmt.Errorf("seed event %q: %w", e.Title, err)
		}
		created++
		return nil
	}

	for month := time.January; month <= time.December; month++ {
		for _, friday := range calendar.WeekdaysInMonth(year, month, time.Friday) {
			date := calendar.FormatDate(friday)
			if err := add(domain.NewEvent(
				seedBandTitle,
				"Live band and open dance floor. All ages welcome.",
				date, "18:00", "22:00", seedMainHallRoomID, domain.CategoryActivities,
			)); err != nil {
				return created, err
			}
			if err := add(domain.NewEvent(
				seedKaraokeTitle,
				"Bring a friend and pick a song.",
				date, "19:00", "22:00", seedBanquetRoomID, domain.CategoryActivities,
			)); err != nil {
				return created, err
			}
		}

		secondThursday := calendar.NthWeekday(year, month, time.Thursday, 2)
		if err := add(domain.NewEvent(
			seedBoardTitle,
			"Monthly meeting of the board. Open to the public.",
			calendar.FormatDate(secondThursday), "17:00", "18:00", seedMeetingRoomRoomID, domain.CategoryMeetings,
		)); err != nil {
			return created, err
		}
	}

	for _, e := range annualEvents(year) {
		if err := add(e); err != nil {
			return created, err
		}
	}
	return created, nil
}

// alreadySeeded looks for the year's first Friday band night; its presence
// means a prior seed run completed for this year.
func (s *SeedService) alreadySeeded(ctx context.Context, year int) (bool, error) {
	january, err := s.eventRepo.ListForMonth(ctx, year, 1)
	if err != nil {
		return false, fmt.Errorf("check seed state: %w", err)
	}
	for _, e := range january {
		if e.Title == seedBandTitle {
			return true, nil
		}
	}
	return false, nil
}

// annualEvents is the fixed set of one-off events added every year.
func annualEvents(year int) []*domain.Event {
	return []*domain.Event{
		domain.NewEvent(
			"Summer Fundraiser Gala",
			"Dinner, auction, and music in support of center programs.",
			fmt.Sprintf("%d-06-14", year), "18:00", "22:00", seedMainHallRoomID, domain.CategoryCommunityEvents,
		),
		domain.NewEvent(
			"Courtyard Summer Concert",
			"An evening of live music in the courtyard.",
			fmt.Sprintf("%d-07-19", year), "17:00", "20:00", seedMainHallRoomID, domain.CategoryEntertainment,
		),
		domain.NewEvent(
			"Fall Community Potluck",
			"Bring a dish to share and meet your neighbors.",
			fmt.Sprintf("%d-10-18", year), "12:00", "15:00", seedBanquetRoomID, domain.CategoryCommunityEvents,
		),
		domain.NewEvent(
			"Holiday Craft Fair",
			"Local makers, gifts, and seasonal treats.",
			fmt.Sprintf("%d-12-06", year), "10:00", "16:00", seedMainHallRoomID, domain.CategoryCommunityEvents,
		),
	}
}
