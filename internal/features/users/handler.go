// ================== internal/features/users/handler.go ==================
package users

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
		response.BadRequest(c, "Invalid user ID")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List all users
// @Description Retrieve every user account
// @Tags users
// @Produce json
// @Security BasicAuth
// @Success 200 {array} User
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	found, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get users")
		return
	}
	response.OK(c, found)
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BasicAuth
// @Param id path int true "User ID"
// @Success 200 {object} User
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	opt, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DatabaseError(c, "Failed to get user")
		return
	}

	found, ok := opt.Get()
	if !ok {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, found)
}

// Create godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body UserRequest true "User data"
// @Success 200 {object} User
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users/create [post]
func (h *Handler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req.Entity())
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Username already taken")
			return
		}
		response.DatabaseError(c, "Failed to create user")
		return
	}
	response.OK(c, created)
}

// Update godoc
// @Summary Update an existing user
// @Description Full replacement of the user's fields; the path id wins
// @Tags users
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "User ID"
// @Param request body UserRequest true "User data"
// @Success 200 {object} User
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	opt, err := h.svc.Update(c.Request.Context(), id, req.Entity())
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Username already taken")
			return
		}
		response.DatabaseError(c, "Failed to update user")
		return
	}

	updated, ok := opt.Get()
	if !ok {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, updated)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Security BasicAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 401 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.DatabaseError(c, "Failed to delete user")
		return
	}
	response.NoContent(c)
}
