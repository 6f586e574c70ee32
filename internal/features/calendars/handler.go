// ================== internal/features/calendars/handler.go ==================
package calendars

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/gocalendar/internal/pkg/response"
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
		response.BadRequest(c, "Invalid calendar ID")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List all calendars
// @Tags calendars
// @Produce json
// @Security BasicAuth
// @Success 200 {array} Calendar
// @Failure 401 {object} response.ErrorResponse
// @Router /calendars [get]
func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get calendars")
		return
	}
	response.OK(c, found)
}

// Get godoc
// @Summary Get a calendar by id
// @Tags calendars
// @Produce json
// @Security BasicAuth
// @Param id path int true "Calendar ID"
// @Success 200 {object} Calendar
// @Failure 404 {object} response.ErrorResponse
// @Router /calendars/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	opt, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DatabaseError(c, "Failed to get calendar")
		return
	}

	found, ok := opt.Get()
	if !ok {
		response.NotFound(c, "Calendar not found")
		return
	}
	response.OK(c, found)
}

// Create godoc
// @Summary Create a new calendar
// @Tags calendars
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body CalendarRequest true "Calendar data"
// @Success 200 {object} Calendar
// @Failure 400 {object} response.ErrorResponse
// @Router /calendars/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req.Entity())
	if err != nil {
		response.DatabaseError(c, "Failed to create calendar")
		return
	}
	response.OK(c, created)
}

// Update godoc
// @Summary Update an existing calendar
// @Description Full replacement of the calendar's fields; the path id wins
// @Tags calendars
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Calendar ID"
// @Param request body CalendarRequest true "Calendar data"
// @Success 200 {object} Calendar
// @Failure 404 {object} response.ErrorResponse
// @Router /calendars/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	opt, err := h.svc.Update(c.Request.Context(), id, req.Entity())
	if err != nil {
		response.DatabaseError(c, "Failed to update calendar")
		return
	}

	updated, ok := opt.Get()
	if !ok {
		response.NotFound(c, "Calendar not found")
		return
	}
	response.OK(c, updated)
}

// Delete godoc
// @Summary Delete a calendar
// @Description Deletes the calendar with its tasks and events; an unknown
// id is a no-op
// @Tags calendars
// @Security BasicAuth
// @Param id path int true "Calendar ID"
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Router /calendars/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.DatabaseError(c, "Failed to delete calendar")
		return
	}
	response.NoContent(c)
}
