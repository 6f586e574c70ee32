// ================== internal/features/auth/handler.go ==================
package auth

import (
	"errors"
	"fmt"

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

// Register godoc
// @Summary Register a new user
// @Description Register an account with username and password; the new
// account gets the USER role
// @Tags auth
// @Accept json
// @Success 201 {string} string "Location header points at the created user"
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	created, err := h.svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Username already taken")
			return
		}
		response.DatabaseError(c, "Failed to register user")
		return
	}

	response.Created(c, fmt.Sprintf("/auth/register/%d", created.ID))
}
