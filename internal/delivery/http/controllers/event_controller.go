package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"communitycenter/internal/calendar"
	"communitycenter/internal/delivery/http/helpers"
	"communitycenter/internal/domain"
)

// EventController serves the public event and calendar endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService

	// now is used for the grid's "today" marker; tests may override it.
	now func() time.Time
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		now:     time.Now,
	}
}

// EventView is an Event decorated with its category style and a 12-hour time label.
type EventView struct {
	*domain.Event
	Style     calendar.Style `json:"style"`
	TimeLabel string         `json:"time_label"`
}

// NewEventView decorates an event for display.
func NewEventView(e *domain.Event) EventView {
	return EventView{
		Event:     e,
		Style:     calendar.StyleFor(e.Category),
		TimeLabel: calendar.FormatTimeRange(e.StartTime, e.EndTime),
	}
}

func eventViews(events []*domain.Event) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, NewEventView(e))
	}
	return views
}

// parseYearMonth reads and validates the year and month query parameters.
// Month is 1-12. Returns ok=false after writing a 400 response.
func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1970 || year > 9999 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "year must be a four-digit number")
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "month must be between 1 and 12")
		return 0, 0, false
	}
	return year, month, true
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  []EventView       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListMonthEvents godoc
// @Summary List events for a month
// @Description Returns all events whose date falls in the given month, decorated with category styles and 12-hour time labels. Month is 1-12.
// @Tags events
// @Produce json
// @Param year query int true "Year (e.g. 2025)"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains the month's events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListMonthEvents(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListEventsForMonth(r.Context(), year, month)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, ve.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, eventViews(events))
}

// DayView is one grid cell with decorated events.
type DayView struct {
	Date          string      `json:"date"`
	Weekday       string      `json:"weekday"`
	InMonth       bool        `json:"in_month"`
	Today         bool        `json:"today"`
	Events        []EventView `json:"events"`
	Inline        []EventView `json:"inline"`
	Overflow      int         `json:"overflow"`
	OverflowLabel string      `json:"overflow_label,omitempty"`
}

// DayGroupView is one list-view group with decorated events.
type DayGroupView struct {
	Date    string      `json:"date"`
	Weekday string      `json:"weekday"`
	Events  []EventView `json:"events"`
}

// CalendarResponse is the response body for GET /calendar. Days is set for
// the grid view, Groups for the list view.
type CalendarResponse struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	View   string         `json:"view"`
	Days   []DayView      `json:"days,omitempty"`
	Groups []DayGroupView `json:"groups,omitempty"`
}

// CalendarSuccessResponse is the success response envelope for GET /calendar (200).
type CalendarSuccessResponse struct {
	Data  CalendarResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetCalendar godoc
// @Summary Get the monthly calendar view
// @Description Returns the 6-week grid (42 day cells, at most 2 inline events per cell plus a "+N more" overflow) or the grouped list view for the month. Month is 1-12.
// @Tags events
// @Produce json
// @Param year query int true "Year (e.g. 2025)"
// @Param month query int true "Month (1-12)"
// @Param view query string false "View mode: grid (default) or list"
// @Success 200 {object} controllers.CalendarSuccessResponse "data contains the built calendar"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [get]
func (c *EventController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}
	view := r.URL.Query().Get("view")
	if view == "" {
		view = "grid"
	}
	if view != "grid" && view != "list" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "view must be \"grid\" or \"list\"")
		return
	}

	events, err := c.Service.ListEventsForMonth(r.Context(), year, month)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	resp := CalendarResponse{Year: year, Month: month, View: view}
	switch view {
	case "grid":
		for _, day := range calendar.BuildGrid(year, time.Month(month), events, c.now()) {
			resp.Days = append(resp.Days, DayView{
				Date:          day.Date,
				Weekday:       day.Weekday,
				InMonth:       day.InMonth,
				Today:         day.Today,
				Events:        eventViews(day.Events),
				Inline:        eventViews(day.Inline),
				Overflow:      day.Overflow,
				OverflowLabel: day.OverflowLabel,
			})
		}
	case "list":
		for _, group := range calendar.BuildList(events) {
			resp.Groups = append(resp.Groups, DayGroupView{
				Date:    group.Date,
				Weekday: group.Weekday,
				Events:  eventViews(group.Events),
			})
		}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}
