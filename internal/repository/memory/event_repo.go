// Package memory holds in-process repository implementations. Events live
// here by design: admin-entered events do not survive a restart, and the
// recurring seed regenerates the baseline schedule at startup.
package memory

import (
	"context"
	"sync"

	"communitycenter/internal/calendar"
	"communitycenter/internal/domain"
)

type eventRepository struct {
	mu     sync.RWMutex
	byID   map[int]*domain.Event
	nextID int
}

// NewEventRepository returns an empty in-memory domain.EventRepository.
func NewEventRepository() domain.EventRepository {
	return &eventRepository{
		byID:   make(map[int]*domain.Event),
		nextID: 1,
	}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = r.nextID
	r.nextID++
	stored := *event
	r.byID[event.ID] = &stored
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *e
	return &out, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*domain.Event, 0, len(r.byID))
	for _, e := range r.byID {
		out := *e
		events = append(events, &out)
	}
	return events, nil
}

func (r *eventRepository) ListForMonth(ctx context.Context, year int, month int) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*domain.Event, 0)
	for _, e := range r.byID {
		d, err := calendar.ParseLocalDate(e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && int(d.Month()) == month {
			out := *e
			events = append(events, &out)
		}
	}
	return events, nil
}

// Update replaces every field except the identifier.
func (r *eventRepository) Update(ctx context.Context, id int, event *domain.Event) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil, domain.ErrNotFound
	}
	stored := *event
	stored.ID = id
	r.byID[id] = &stored
	out := stored
	return &out, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
