package postgres

import (
	"context"
	"database/sql"

	"communitycenter/internal/domain"
)

type donationRepository struct {
	DB *sql.DB
}

// NewDonationRepository returns a domain.DonationRepository implemented with Postgres.
func NewDonationRepository(db *sql.DB) domain.DonationRepository {
	return &donationRepository{DB: db}
}

func (r *donationRepository) Create(ctx context.Context, d *domain.Donation) error {
	query := `
		INSERT INTO donations (name, email, amount_cents, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, d.Name, d.Email, d.AmountCents, d.Message, d.CreatedAt).Scan(&d.ID)
}

func (r *donationRepository) ListPage(ctx context.Context, params domain.PaginationParams) ([]*domain.Donation, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM donations`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, email, amount_cents, message, created_at
		FROM donations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var donations []*domain.Donation
	for rows.Next() {
		d := &domain.Donation{}
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.AmountCents, &d.Message, &d.CreatedAt); err != nil {
			return nil, 0, err
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return donations, total, nil
}
