package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"communitycenter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEventBody = `{"title":"Chess Club","description":"Weekly chess meetup","date":"2025-05-10","startTime":"14:00","endTime":"16:00","roomId":3,"category":"Activities"}`

func TestAdminEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       validEventBody,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "bad_request",
		},
		{
			name:           "unknown field",
			body:           `{"title":"x","slug":"x"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "slug",
		},
		{
			name:           "validation error from service",
			body:           `{"title":"","description":"","date":"","startTime":"","endTime":"","roomId":0,"category":""}`,
			fakeErr:        domain.NewValidationError("title is required"),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "title is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr}
			controller := NewAdminEventController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			controller.CreateEvent(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBodySubstr)
			}
			if tt.wantStatus != http.StatusCreated {
				return
			}
			var resp EventSuccessResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.NotNil(t, resp.Data)
			assert.Equal(t, 1, resp.Data.ID)
			assert.Equal(t, "Chess Club", resp.Data.Title)
			assert.Equal(t, "2025-05-10", fake.lastFields.Date)
			assert.Equal(t, 3, fake.lastFields.RoomID)
		})
	}
}

func TestAdminEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		fakeErr    error
		wantStatus int
	}{
		{name: "found", id: "7", wantStatus: http.StatusOK},
		{name: "not found", id: "7", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "bad id", id: "abc", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{
				event: &domain.Event{ID: 7, Title: "Chess Club", Date: "2025-05-10", Category: domain.CategoryActivities},
				err:   tt.fakeErr,
			}
			controller := NewAdminEventController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodGet, "/admin/events/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			controller.GetEvent(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp EventSuccessResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, 7, resp.Data.ID)
			assert.Equal(t, "Chess Club", resp.Data.Title)
		})
	}
}

func TestAdminEventController_UpdateEvent(t *testing.T) {
	t.Run("success keeps the id", func(t *testing.T) {
		fake := &fakeEventService{}
		controller := NewAdminEventController(testLogger(), fake)

		req := httptest.NewRequest(http.MethodPut, "/admin/events/7", strings.NewReader(validEventBody))
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		controller.UpdateEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp EventSuccessResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 7, resp.Data.ID)
		assert.Equal(t, "Chess Club", resp.Data.Title)
		assert.Equal(t, 7, fake.lastID)
	})

	t.Run("not found", func(t *testing.T) {
		controller := NewAdminEventController(testLogger(), &fakeEventService{err: domain.ErrNotFound})

		req := httptest.NewRequest(http.MethodPut, "/admin/events/99", strings.NewReader(validEventBody))
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()
		controller.UpdateEvent(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})
}

func TestAdminEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name       string
		deleted    bool
		wantStatus int
	}{
		{name: "deleted", deleted: true, wantStatus: http.StatusOK},
		{name: "missing", deleted: false, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{deleted: tt.deleted}
			controller := NewAdminEventController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodDelete, "/admin/events/7", nil)
			req.SetPathValue("id", "7")
			rec := httptest.NewRecorder()
			controller.DeleteEvent(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, 7, fake.lastID)
			if tt.deleted {
				assert.Contains(t, rec.Body.String(), "deleted")
			}
		})
	}
}

func TestAdminEventController_ListEvents(t *testing.T) {
	fake := &fakeEventService{events: mayEvents()}
	controller := NewAdminEventController(testLogger(), fake)

	req := httptest.NewRequest(http.MethodGet, "/admin/events", nil)
	rec := httptest.NewRecorder()
	controller.ListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListAllEventsSuccessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 4)
}
