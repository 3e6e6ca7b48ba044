package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"communitycenter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	bookings   []*domain.Booking
	total      int
	err        error
	lastID     int
	lastStatus string
}

func (f *fakeBookingService) RequestBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b.ID = 1
	b.Status = domain.BookingPending
	return b, nil
}

func (f *fakeBookingService) ListBookings(ctx context.Context, params domain.PaginationParams) ([]*domain.Booking, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.bookings, f.total, nil
}

func (f *fakeBookingService) SetBookingStatus(ctx context.Context, id int, status string) (*domain.Booking, error) {
	f.lastID, f.lastStatus = id, status
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{ID: id, Status: status}, nil
}

func TestBookingController_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"room_id":2,"date":"2025-06-01","start_time":"10:00","end_time":"12:00","contact_name":"Pat","contact_email":"pat@example.com","notes":"birthday party"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid json",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation error from service",
			body:       `{"room_id":2,"date":"2025-06-01","start_time":"10:00","end_time":"12:00","contact_name":"Pat","contact_email":"pat@example.com"}`,
			fakeErr:    domain.NewValidationError("room not found"),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewBookingController(testLogger(), &fakeBookingService{err: tt.fakeErr})

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			controller.CreateBooking(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusCreated {
				return
			}
			var resp BookingSuccessResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.NotNil(t, resp.Data)
			assert.Equal(t, 1, resp.Data.ID)
			assert.Equal(t, domain.BookingPending, resp.Data.Status)
		})
	}
}

func TestBookingController_ListBookings(t *testing.T) {
	fake := &fakeBookingService{
		bookings: []*domain.Booking{
			{ID: 2, RoomID: 1, Status: domain.BookingPending},
			{ID: 1, RoomID: 3, Status: domain.BookingApproved},
		},
		total: 45,
	}
	controller := NewBookingController(testLogger(), fake)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings?page=2&page_size=2", nil)
	rec := httptest.NewRecorder()
	controller.ListBookings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListBookingsSuccessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data.Bookings, 2)
	assert.Equal(t, 2, resp.Data.Pagination.Page)
	assert.Equal(t, 45, resp.Data.Pagination.Total)
	assert.Equal(t, 23, resp.Data.Pagination.TotalPages)
}

func TestBookingController_UpdateBookingStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		fakeErr    error
		wantStatus int
	}{
		{name: "approved", id: "5", body: `{"status":"approved"}`, wantStatus: http.StatusOK},
		{name: "not found", id: "5", body: `{"status":"approved"}`, fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "bad status", id: "5", body: `{"status":"maybe"}`, fakeErr: domain.NewValidationError("status must be approved or rejected"), wantStatus: http.StatusBadRequest},
		{name: "bad id", id: "x", body: `{"status":"approved"}`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{err: tt.fakeErr}
			controller := NewBookingController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodPatch, "/admin/bookings/"+tt.id+"/status", strings.NewReader(tt.body))
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			controller.UpdateBookingStatus(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp BookingSuccessResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, 5, resp.Data.ID)
			assert.Equal(t, "approved", resp.Data.Status)
		})
	}
}
