package controllers

import (
	"log/slog"
	"net/http"

	"communitycenter/internal/delivery/http/helpers"
	"communitycenter/internal/domain"
)

// RoomController serves the public room list used for id→name lookup and
// admin room selects.
type RoomController struct {
	Logger *slog.Logger
	Repo   domain.RoomRepository
}

func NewRoomController(logger *slog.Logger, repo domain.RoomRepository) *RoomController {
	return &RoomController{Logger: logger, Repo: repo}
}

// ListRoomsSuccessResponse is the success response envelope for GET /rooms (200).
type ListRoomsSuccessResponse struct {
	Data  []*domain.Room    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListRooms godoc
// @Summary List rooms
// @Description Returns all bookable rooms with name and capacity.
// @Tags rooms
// @Produce json
// @Success 200 {object} controllers.ListRoomsSuccessResponse "data contains the rooms"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rooms [get]
func (c *RoomController) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := c.Repo.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rooms)
}
