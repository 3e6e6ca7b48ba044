package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"communitycenter/internal/delivery/http/helpers"
	"communitycenter/internal/domain"
	"communitycenter/internal/services"
)

// CreateDonationRequest is the request body for POST /donations.
type CreateDonationRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AmountCents int64  `json:"amount_cents"`
	Message     string `json:"message"`
}

// Validate implements Validator.
func (d CreateDonationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, "name is required")
	}
	if d.AmountCents <= 0 {
		errs = append(errs, "amount_cents must be positive")
	}
	return errs
}

// DonationSuccessResponse is the success envelope for single-donation responses.
type DonationSuccessResponse struct {
	Data  *domain.Donation  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListDonationsResponse is the data payload for GET /admin/donations (200).
type ListDonationsResponse struct {
	Donations  []*domain.Donation     `json:"donations"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListDonationsSuccessResponse is the success response envelope for GET /admin/donations (200).
type ListDonationsSuccessResponse struct {
	Data  ListDonationsResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type DonationController struct {
	Logger  *slog.Logger
	Service *services.DonationService
}

func NewDonationController(logger *slog.Logger, svc *services.DonationService) *DonationController {
	return &DonationController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateDonation godoc
// @Summary Record a donation
// @Description Records a donation. No payment is processed; the amount is recorded as reported.
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body CreateDonationRequest true "Donation data"
// @Success 201 {object} controllers.DonationSuccessResponse "data contains the recorded donation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /donations [post]
func (c *DonationController) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req CreateDonationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	donation := &domain.Donation{
		Name:        req.Name,
		Email:       req.Email,
		AmountCents: req.AmountCents,
		Message:     req.Message,
	}
	created, err := c.Service.RecordDonation(r.Context(), donation)
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

// ListDonations godoc
// @Summary List donations
// @Description Returns donations newest-first, paginated. Requires an admin session.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListDonationsSuccessResponse "data contains donations and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/donations [get]
func (c *DonationController) ListDonations(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	donations, total, err := c.Service.ListDonations(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListDonationsResponse{
		Donations:  donations,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
