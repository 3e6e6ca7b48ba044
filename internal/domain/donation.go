package domain

import (
	"context"
	"time"
)

// Donation is a recorded contribution. No payment processing happens here;
// the record is display/bookkeeping only.
// swagger:model Donation
type Donation struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AmountCents int64     `json:"amount_cents"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// DonationRepository defines the interface for donation storage.
type DonationRepository interface {
	Create(ctx context.Context, d *Donation) error
	ListPage(ctx context.Context, params PaginationParams) ([]*Donation, int, error)
}
