package postgres

import (
	"context"
	"database/sql"
	"time"

	"communitycenter/internal/domain"
)

type subscriberRepository struct {
	DB *sql.DB
}

// NewSubscriberRepository returns a domain.SubscriberRepository implemented with Postgres.
func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepository{DB: db}
}

// Subscribe inserts the email if new. Re-subscribing an existing address
// returns the existing record with created=false.
func (r *subscriberRepository) Subscribe(ctx context.Context, email string) (*domain.Subscriber, bool, error) {
	s := &domain.Subscriber{Email: email, CreatedAt: time.Now()}
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO newsletter_subscribers (email, created_at)
		 VALUES ($1, $2)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id`, email, s.CreatedAt).Scan(&s.ID)
	if err == nil {
		return s, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	// Conflict path: the address is already subscribed.
	err = r.DB.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM newsletter_subscribers WHERE email = $1`, email).
		Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		return nil, false, err
	}
	return s, false, nil
}
