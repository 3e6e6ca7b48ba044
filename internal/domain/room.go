package domain

import "context"

// Room represents a bookable physical space, referenced by events via id.
// Within the calendar it is used only for id→name display lookup.
// swagger:model Room
type Room struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// RoomRepository defines the interface for room storage.
type RoomRepository interface {
	List(ctx context.Context) ([]*Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
}
