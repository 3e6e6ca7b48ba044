package services

import (
	"context"
	"testing"
	"time"

	"communitycenter/internal/domain"
	"communitycenter/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRoomRepo implements domain.RoomRepository for tests.
type fakeRoomRepo struct {
	rooms map[int]*domain.Room
	err   error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int]*domain.Room{
		1: {ID: 1, Name: "Main Hall", Capacity: 200},
		2: {ID: 2, Name: "Banquet Room", Capacity: 80},
		3: {ID: 3, Name: "Meeting Room", Capacity: 20},
	}}
}

func (f *fakeRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id int) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.rooms[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func newTestEventService() domain.EventService {
	return NewEventService(memory.NewEventRepository(), newFakeRoomRepo(), 2*time.Second)
}

func validFields() domain.EventFields {
	return domain.EventFields{
		Title:       "Test Event",
		Description: "A test event",
		Date:        "2025-05-10",
		StartTime:   "10:00",
		EndTime:     "11:00",
		RoomID:      2,
		Category:    domain.CategoryClasses,
	}
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*domain.EventFields)
		wantMsg string
	}{
		{name: "missing title", mutate: func(f *domain.EventFields) { f.Title = "  " }, wantMsg: "title is required"},
		{name: "missing description", mutate: func(f *domain.EventFields) { f.Description = "" }, wantMsg: "description is required"},
		{name: "missing date", mutate: func(f *domain.EventFields) { f.Date = "" }, wantMsg: "date is required"},
		{name: "malformed date", mutate: func(f *domain.EventFields) { f.Date = "May 10, 2025" }, wantMsg: "date must be YYYY-MM-DD"},
		{name: "missing start time", mutate: func(f *domain.EventFields) { f.StartTime = "" }, wantMsg: "startTime is required"},
		{name: "missing end time", mutate: func(f *domain.EventFields) { f.EndTime = "" }, wantMsg: "endTime is required"},
		{name: "missing category", mutate: func(f *domain.EventFields) { f.Category = "" }, wantMsg: "category is required"},
		{name: "missing room", mutate: func(f *domain.EventFields) { f.RoomID = 0 }, wantMsg: "roomId is required"},
		{name: "unknown room", mutate: func(f *domain.EventFields) { f.RoomID = 99 }, wantMsg: "room 99 does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestEventService()
			fields := validFields()
			tt.mutate(&fields)

			_, err := svc.CreateEvent(ctx, fields)
			require.Error(t, err)
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok, "want ValidationError, got %v", err)
			assert.Contains(t, ve.Fields, tt.wantMsg)
		})
	}
}

// The store deliberately does not check that startTime precedes endTime:
// reversed and overnight ranges are accepted as-is.
func TestEventService_CreateEvent_NoTimeOrderValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestEventService()

	fields := validFields()
	fields.StartTime = "22:00"
	fields.EndTime = "10:00"

	event, err := svc.CreateEvent(ctx, fields)
	require.NoError(t, err)
	assert.Equal(t, "22:00", event.StartTime)
	assert.Equal(t, "10:00", event.EndTime)
}

func TestEventService_CreateQueryDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestEventService()

	event, err := svc.CreateEvent(ctx, validFields())
	require.NoError(t, err)
	require.NotZero(t, event.ID)

	// The new event shows up in its month's query.
	may, err := svc.ListEventsForMonth(ctx, 2025, 5)
	require.NoError(t, err)
	require.Len(t, may, 1)
	assert.Equal(t, "Test Event", may[0].Title)

	deleted, err := svc.DeleteEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// And disappears after deletion.
	may, err = svc.ListEventsForMonth(ctx, 2025, 5)
	require.NoError(t, err)
	assert.Empty(t, may)

	// Deleting again reports false, not an error.
	deleted, err = svc.DeleteEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	svc := newTestEventService()

	event, err := svc.CreateEvent(ctx, validFields())
	require.NoError(t, err)

	fields := validFields()
	fields.Title = "Renamed"
	fields.Date = "2025-06-01"
	updated, err := svc.UpdateEvent(ctx, event.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, event.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "2025-06-01", updated.Date)

	// Update validates the same way as create.
	bad := validFields()
	bad.Title = ""
	_, err = svc.UpdateEvent(ctx, event.ID, bad)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)

	_, err = svc.UpdateEvent(ctx, 999, validFields())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_GetEvent_NotFound(t *testing.T) {
	svc := newTestEventService()
	_, err := svc.GetEvent(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_ListEventsForMonth_BadMonth(t *testing.T) {
	svc := newTestEventService()
	_, err := svc.ListEventsForMonth(context.Background(), 2025, 13)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)

	_, err = svc.ListEventsForMonth(context.Background(), 2025, 0)
	_, ok = domain.AsValidationError(err)
	assert.True(t, ok)
}
