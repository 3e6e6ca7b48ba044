package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"communitycenter/internal/domain"
)

// DonationService records and lists donations. There is no payment
// processing; amounts are recorded as reported.
type DonationService struct {
	donationRepo   domain.DonationRepository
	contextTimeout time.Duration
}

// NewDonationService returns a DonationService backed by the given repository.
func NewDonationService(donationRepo domain.DonationRepository, timeout time.Duration) *DonationService {
	return &DonationService{donationRepo: donationRepo, contextTimeout: timeout}
}

func (s *DonationService) RecordDonation(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var msgs []string
	if strings.TrimSpace(d.Name) == "" {
		msgs = append(msgs, "name is required")
	}
	if d.AmountCents <= 0 {
		msgs = append(msgs, "amount_cents must be positive")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	d.CreatedAt = time.Now()
	if err := s.donationRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}
	return d, nil
}

func (s *DonationService) ListDonations(ctx context.Context, params domain.PaginationParams) ([]*domain.Donation, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	donations, total, err := s.donationRepo.ListPage(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list donations: %w", err)
	}
	if donations == nil {
		donations = []*domain.Donation{}
	}
	return donations, total, nil
}
