// ================== internal/features/events/handler.go ==================
package events

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/gocalendar/internal/pkg/response"
	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid event ID")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Security BasicAuth
// @Success 200 {array} Event
// @Failure 401 {object} response.ErrorResponse
// @Router /events [get]
func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get events")
		return
	}
	response.OK(c, found)
}

// Get godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Security BasicAuth
// @Param id path int true "Event ID"
// @Success 200 {object} Event
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	opt, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DatabaseError(c, "Failed to get event")
		return
	}

	found, ok := opt.Get()
	if !ok {
		response.NotFound(c, "Event not found")
		return
	}
	response.OK(c, found)
}

// Create godoc
// @Summary Create a new event
// @Tags events
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body EventRequest true "Event data"
// @Success 200 {object} Event
// @Failure 400 {object} response.ErrorResponse
// @Router /events/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req.Entity())
	if err != nil {
		response.DatabaseError(c, "Failed to create event")
		return
	}
	response.OK(c, created)
}

// Update godoc
// @Summary Update an existing event
// @Description Full replacement of the event's fields; the path id wins
// @Tags events
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Event ID"
// @Param request body EventRequest true "Event data"
// @Success 200 {object} Event
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	opt, err := h.svc.Update(c.Request.Context(), id, req.Entity())
	if err != nil {
		response.DatabaseError(c, "Failed to update event")
		return
	}

	updated, ok := opt.Get()
	if !ok {
		response.NotFound(c, "Event not found")
		return
	}
	response.OK(c, updated)
}

// Delete godoc
// @Summary Delete an event
// @Description Deleting an unknown id is a no-op
// @Tags events
// @Security BasicAuth
// @Param id path int true "Event ID"
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Router /events/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.DatabaseError(c, "Failed to delete event")
		return
	}
	response.NoContent(c)
}

// Date godoc
// @Summary Get only the event's date
// @Tags events
// @Produce json
// @Security BasicAuth
// @Param id path int true "Event ID"
// @Success 200 {string} string "RFC 3339 date"
// @Success 204 "Event has no date"
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/date [get]
func (h *Handler) Date(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	date, err := h.svc.DateOf(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.DatabaseError(c, "Failed to get event date")
		return
	}

	if date.IsZero() {
		response.NoContent(c)
		return
	}
	response.OK(c, date)
}
