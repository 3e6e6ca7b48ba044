package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"communitycenter/internal/delivery/http/helpers"
	"communitycenter/internal/domain"
)

// SubscribeRequest is the request body for POST /newsletter/subscribe.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (s SubscribeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// SubscribeResponse is the data payload for POST /newsletter/subscribe.
type SubscribeResponse struct {
	Subscriber *domain.Subscriber `json:"subscriber"`
	Created    bool               `json:"created"`
}

// SubscribeSuccessResponse is the success response envelope for POST /newsletter/subscribe.
type SubscribeSuccessResponse struct {
	Data  SubscribeResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type NewsletterController struct {
	Logger  *slog.Logger
	Service domain.NewsletterService
}

func NewNewsletterController(logger *slog.Logger, svc domain.NewsletterService) *NewsletterController {
	return &NewsletterController{
		Logger:  logger,
		Service: svc,
	}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Subscribes an email address to the newsletter. Re-subscribing an existing address succeeds without creating a duplicate.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body SubscribeRequest true "Subscription data"
// @Success 201 {object} controllers.SubscribeSuccessResponse "data contains the subscriber; created is true for a new signup"
// @Success 200 {object} controllers.SubscribeSuccessResponse "data contains the existing subscriber; created is false"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /newsletter/subscribe [post]
func (c *NewsletterController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, created, err := c.Service.Subscribe(r.Context(), req.Email)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, ve.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, SubscribeResponse{Subscriber: sub, Created: created})
}
