// ================== internal/features/priority/handler.go ==================
package priority

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/gocalendar/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// List godoc
// @Summary List priority levels
// @Description Get the labels of all available priority levels
// @Tags priorities
// @Produce json
// @Security BasicAuth
// @Success 200 {array} string
// @Failure 401 {object} response.ErrorResponse
// @Router /priorities [get]
func (h *Handler) List(c *gin.Context) {
	labels := make([]string, 0, len(Levels()))
	for _, level := range Levels() {
		labels = append(labels, level.Label())
	}

	response.OK(c, labels)
}
