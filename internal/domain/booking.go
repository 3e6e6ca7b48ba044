package domain

import (
	"context"
	"time"
)

// Booking statuses. A booking starts pending and is approved or rejected by an admin.
const (
	BookingPending  = "pending"
	BookingApproved = "approved"
	BookingRejected = "rejected"
)

// Booking represents a room-rental request.
// Date is "YYYY-MM-DD"; StartTime and EndTime are "HH:MM" 24-hour strings.
// swagger:model Booking
type Booking struct {
	ID           int       `json:"id"`
	RoomID       int       `json:"room_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookingRepository defines the interface for booking storage.
type BookingRepository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int) (*Booking, error)
	ListPage(ctx context.Context, params PaginationParams) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Booking, error)
}

// BookingService defines the business logic for room-rental bookings.
type BookingService interface {
	RequestBooking(ctx context.Context, b *Booking) (*Booking, error)
	ListBookings(ctx context.Context, params PaginationParams) ([]*Booking, int, error)
	SetBookingStatus(ctx context.Context, id int, status string) (*Booking, error)
}
