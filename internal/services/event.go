package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"communitycenter/internal/calendar"
	"communitycenter/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	roomRepo       domain.RoomRepository
	contextTimeout time.Duration
}

// NewEventService returns the EventService backed by the given repositories.
func NewEventService(eventRepo domain.EventRepository, roomRepo domain.RoomRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		roomRepo:       roomRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEventsForMonth(ctx context.Context, year int, month int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if month < 1 || month > 12 {
		return nil, domain.NewValidationError("month must be between 1 and 12")
	}
	events, err := s.eventRepo.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("list events for month: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, fields domain.EventFields) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.validate(ctx, fields); err != nil {
		return nil, err
	}
	event := domain.NewEvent(
		strings.TrimSpace(fields.Title),
		strings.TrimSpace(fields.Description),
		fields.Date, fields.StartTime, fields.EndTime,
		fields.RoomID, fields.Category,
	)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// UpdateEvent is a full-record replacement; the identifier never changes.
func (s *eventService) UpdateEvent(ctx context.Context, id int, fields domain.EventFields) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.validate(ctx, fields); err != nil {
		return nil, err
	}
	replacement := domain.NewEvent(
		strings.TrimSpace(fields.Title),
		strings.TrimSpace(fields.Description),
		fields.Date, fields.StartTime, fields.EndTime,
		fields.RoomID, fields.Category,
	)
	event, err := s.eventRepo.Update(ctx, id, replacement)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	return deleted, nil
}

// validate checks required fields and that the room reference resolves.
// Start/end ordering is deliberately not checked: the stored times are
// free-form wall-clock strings and overnight ranges pass through untouched.
func (s *eventService) validate(ctx context.Context, fields domain.EventFields) error {
	var msgs []string
	if strings.TrimSpace(fields.Title) == "" {
		msgs = append(msgs, "title is required")
	}
	if strings.TrimSpace(fields.Description) == "" {
		msgs = append(msgs, "description is required")
	}
	if fields.Date == "" {
		msgs = append(msgs, "date is required")
	} else if _, err := calendar.ParseLocalDate(fields.Date); err != nil {
		msgs = append(msgs, "date must be YYYY-MM-DD")
	}
	if fields.StartTime == "" {
		msgs = append(msgs, "startTime is required")
	}
	if fields.EndTime == "" {
		msgs = append(msgs, "endTime is required")
	}
	if strings.TrimSpace(fields.Category) == "" {
		msgs = append(msgs, "category is required")
	}
	if fields.RoomID <= 0 {
		msgs = append(msgs, "roomId is required")
	} else if _, err := s.roomRepo.GetByID(ctx, fields.RoomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			msgs = append(msgs, fmt.Sprintf("room %d does not exist", fields.RoomID))
		} else {
			return fmt.Errorf("resolve room: %w", err)
		}
	}
	if len(msgs) > 0 {
		return domain.NewValidationError(msgs...)
	}
	return nil
}
