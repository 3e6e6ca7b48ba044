package postgres

import (
	"context"
	"database/sql"

	"communitycenter/internal/domain"
)

type roomRepository struct {
	DB *sql.DB
}

// NewRoomRepository returns a domain.RoomRepository implemented with Postgres.
func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{DB: db}
}

func (r *roomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, capacity FROM rooms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) GetByID(ctx context.Context, id int) (*domain.Room, error) {
	var room domain.Room
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, capacity FROM rooms WHERE id = $1`, id).
		Scan(&room.ID, &room.Name, &room.Capacity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}
