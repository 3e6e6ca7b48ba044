package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"communitycenter/internal/delivery/http/helpers"
	"communitycenter/internal/domain"
)

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	RoomID       int    `json:"room_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Notes        string `json:"notes"`
}

// Validate implements Validator. The service re-checks everything; this
// catches the obviously empty submissions early.
func (b CreateBookingRequest) Validate() []string {
	var errs []string
	if b.RoomID <= 0 {
		errs = append(errs, "room_id is required")
	}
	if strings.TrimSpace(b.Date) == "" {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(b.ContactEmail) == "" {
		errs = append(errs, "contact_email is required")
	}
	return errs
}

// BookingSuccessResponse is the success envelope for single-booking responses.
type BookingSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListBookingsResponse is the data payload for GET /admin/bookings (200).
type ListBookingsResponse struct {
	Bookings   []*domain.Booking      `json:"bookings"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListBookingsSuccessResponse is the success response envelope for GET /admin/bookings (200).
type ListBookingsSuccessResponse struct {
	Data  ListBookingsResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// UpdateBookingStatusRequest is the request body for PATCH /admin/bookings/{id}/status.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (u UpdateBookingStatusRequest) Validate() []string {
	if u.Status != domain.BookingApproved && u.Status != domain.BookingRejected {
		return []string{"status must be \"approved\" or \"rejected\""}
	}
	return nil
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Request a room rental
// @Description Submits a room-rental request. The booking starts in status "pending" until an admin approves or rejects it.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking request"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the created booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking := &domain.Booking{
		RoomID:       req.RoomID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Notes:        req.Notes,
	}
	created, err := c.Service.RequestBooking(r.Context(), booking)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, ve.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListBookings godoc
// @Summary List bookings
// @Description Returns bookings newest-first, paginated. Requires an admin session.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListBookingsSuccessResponse "data contains bookings and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/bookings [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	bookings, total, err := c.Service.ListBookings(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListBookingsResponse{
		Bookings:   bookings,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// UpdateBookingStatus godoc
// @Summary Approve or reject a booking
// @Description Sets a booking's status to "approved" or "rejected". Requires an admin session.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param body body UpdateBookingStatusRequest true "New status"
// @Success 200 {object} controllers.BookingSuccessResponse "data contains the updated booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/bookings/{id}/status [patch]
func (c *BookingController) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid booking id")
		return
	}
	var req UpdateBookingStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.SetBookingStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "booking not found")
			return
		}
		if ve, ok := domain.AsValidationError(err); ok {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, ve.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}
