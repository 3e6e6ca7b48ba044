package domain

import "context"

// Known event categories. Category is stored as free text so unrecognized
// values are kept as-is and fall back to a generic style at render time.
const (
	CategoryClasses         = "Classes"
	CategoryActivities      = "Activities"
	CategoryMeetings        = "Meetings"
	CategoryCommunityEvents = "Community Events"
	CategoryEntertainment   = "Entertainment"
)

// Event represents a scheduled occurrence at the center.
// Date is a calendar date string ("YYYY-MM-DD", no time component).
// StartTime and EndTime are wall-clock "HH:MM" 24-hour strings.
// swagger:model Event
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	RoomID      int    `json:"roomId"`
	Category    string `json:"category"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description, date, startTime, endTime string, roomID int, category string) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		RoomID:      roomID,
		Category:    category,
	}
}

// EventRepository defines the interface for event storage.
// Delete reports whether a record was removed; deleting a missing id is not an error.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListForMonth(ctx context.Context, year int, month int) ([]*Event, error)
	Update(ctx context.Context, id int, event *Event) (*Event, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// EventFields is the mutable portion of an Event, used for create and
// full-replacement update.
type EventFields struct {
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	RoomID      int
	Category    string
}

// EventService defines the business logic for event management.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id int) (*Event, error)
	ListEventsForMonth(ctx context.Context, year int, month int) ([]*Event, error)
	CreateEvent(ctx context.Context, fields EventFields) (*Event, error)
	UpdateEvent(ctx context.Context, id int, fields EventFields) (*Event, error)
	DeleteEvent(ctx context.Context, id int) (bool, error)
}
