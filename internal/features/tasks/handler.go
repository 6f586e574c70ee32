// ================== internal/features/tasks/handler.go ==================
package tasks

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
		response.BadRequest(c, "Invalid task ID")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List all tasks
// @Tags tasks
// @Produce json
// @Security BasicAuth
// @Success 200 {array} Task
// @Failure 401 {object} response.ErrorResponse
// @Router /tasks [get]
func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get tasks")
		return
	}
	response.OK(c, found)
}

// Get godoc
// @Summary Get a task by id
// @Tags tasks
// @Produce json
// @Security BasicAuth
// @Param id path int true "Task ID"
// @Success 200 {object} Task
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	opt, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DatabaseError(c, "Failed to get task")
		return
	}

	found, ok := opt.Get()
	if !ok {
		response.NotFound(c, "Task not found")
		return
	}
	response.OK(c, found)
}

// Create godoc
// @Summary Create a new task
// @Description Create a task; it always starts uncompleted
// @Tags tasks
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body TaskRequest true "Task data"
// @Success 200 {object} Task
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req.Entity())
	if err != nil {
		response.DatabaseError(c, "Failed to create task")
		return
	}
	response.OK(c, created)
}

// Update godoc
// @Summary Update an existing task
// @Description Full replacement of the task's fields; the path id wins
// @Tags tasks
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Task ID"
// @Param request body TaskRequest true "Task data"
// @Success 200 {object} Task
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	opt, err := h.svc.Update(c.Request.Context(), id, req.Entity())
	if err != nil {
		response.DatabaseError(c, "Failed to update task")
		return
	}

	updated, ok := opt.Get()
	if !ok {
		response.NotFound(c, "Task not found")
		return
	}
	response.OK(c, updated)
}

// Delete godoc
// @Summary Delete a task
// @Description Deleting an unknown id is a no-op
// @Tags tasks
// @Security BasicAuth
// @Param id path int true "Task ID"
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.DatabaseError(c, "Failed to delete task")
		return
	}
	response.NoContent(c)
}

// Date godoc
// @Summary Get only the task's date
// @Tags tasks
// @Produce json
// @Security BasicAuth
// @Param id path int true "Task ID"
// @Success 200 {string} string "RFC 3339 date"
// @Success 204 "Task has no date"
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id}/date [get]
func (h *Handler) Date(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	date, err := h.svc.DateOf(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		response.DatabaseError(c, "Failed to get task date")
		return
	}

	if date == nil {
		response.NoContent(c)
		return
	}
	response.OK(c, date)
}

// ListCompleted godoc
// @Summary List completed tasks
// @Tags tasks
// @Produce json
// @Security BasicAuth
// @Success 200 {array} Task
// @Failure 403 {object} response.ErrorResponse
// @Router /tasks/completed [get]
func (h *Handler) ListCompleted(c *gin.Context) {
	found, err := h.svc.FindCompleted(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get completed tasks")
		return
	}
	response.OK(c, found)
}

// ListUncompleted godoc
// @Summary List uncompleted tasks
// @Tags tasks
// @Produce json
// @Security BasicAuth
// @Success 200 {array} Task
// @Failure 401 {object} response.ErrorResponse
// @Router /tasks/uncompleted [get]
func (h *Handler) ListUncompleted(c *gin.Context) {
	found, err := h.svc.FindIncomplete(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get uncompleted tasks")
		return
	}
	response.OK(c, found)
}

// Complete godoc
// @Summary Mark a task as completed
// @Description One-way transition; completing twice keeps completed=true
// @Tags tasks
// @Produce json
// @Security BasicAuth
// @Param id path int true "Task ID"
// @Success 200 {object} Task
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id}/complete [put]
func (h *Handler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	updated, err := h.svc.MarkCompleted(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		response.DatabaseError(c, "Failed to complete task")
		return
	}
	response.OK(c, updated)
}
