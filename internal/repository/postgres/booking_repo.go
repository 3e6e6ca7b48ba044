package postgres

import (
	"context"
	"database/sql"

	"communitycenter/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

// NewBookingRepository returns a domain.BookingRepository implemented with Postgres.
func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (room_id, date, start_time, end_time, contact_name, contact_email, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		b.RoomID, b.Date, b.StartTime, b.EndTime, b.ContactName, b.ContactEmail, b.Notes, b.Status, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, room_id, date, start_time, end_time, contact_name, contact_email, notes, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.RoomID, &b.Date, &b.StartTime, &b.EndTime, &b.ContactName, &b.ContactEmail, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListPage(ctx context.Context, params domain.PaginationParams) ([]*domain.Booking, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, room_id, date, start_time, end_time, contact_name, contact_email, notes, status, created_at, updated_at
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b := &domain.Booking{}
		if err := rows.Scan(
			&b.ID, &b.RoomID, &b.Date, &b.StartTime, &b.EndTime, &b.ContactName, &b.ContactEmail, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int, status string) (*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, room_id, date, start_time, end_time, contact_name, contact_email, notes, status, created_at, updated_at
	`
	b := &domain.Booking{}
	err := r.DB.QueryRowContext(ctx, query, id, status).Scan(
		&b.ID, &b.RoomID, &b.Date, &b.StartTime, &b.EndTime, &b.ContactName, &b.ContactEmail, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
