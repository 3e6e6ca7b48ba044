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

type bookingService struct {
	bookingRepo    domain.BookingRepository
	roomRepo       domain.RoomRepository
	contextTimeout time.Duration
}

// NewBookingService returns the BookingService for room-rental requests.
func NewBookingService(bookingRepo domain.BookingRepository, roomRepo domain.RoomRepository, timeout time.Duration) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		contextTimeout: timeout,
	}
}

func (s *bookingService) RequestBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var msgs []string
	if b.RoomID <= 0 {
		msgs = append(msgs, "room_id is required")
	} else if _, err := s.roomRepo.GetByID(ctx, b.RoomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			msgs = append(msgs, fmt.Sprintf("room %d does not exist", b.RoomID))
		} else {
			return nil, fmt.Errorf("resolve room: %w", err)
		}
	}
	if b.Date == "" {
		msgs = append(msgs, "date is required")
	} else if _, err := calendar.ParseLocalDate(b.Date); err != nil {
		msgs = append(msgs, "date must be YYYY-MM-DD")
	}
	if b.StartTime == "" || b.EndTime == "" {
		msgs = append(msgs, "start_time and end_time are required")
	}
	if strings.TrimSpace(b.ContactName) == "" {
		msgs = append(msgs, "contact_name is required")
	}
	if strings.TrimSpace(b.ContactEmail) == "" {
		msgs = append(msgs, "contact_email is required")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	now := time.Now()
	b.Status = domain.BookingPending
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return b, nil
}

func (s *bookingService) ListBookings(ctx context.Context, params domain.PaginationParams) ([]*domain.Booking, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	bookings, total, err := s.bookingRepo.ListPage(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, total, nil
}

func (s *bookingService) SetBookingStatus(ctx context.Context, id int, status string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if status != domain.BookingApproved && status != domain.BookingRejected {
		return nil, domain.NewValidationError("status must be \"approved\" or \"rejected\"")
	}
	booking, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return booking, nil
}
