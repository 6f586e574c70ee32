// ================== internal/features/priority/routes.go ==================
package priority

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/gocalendar/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, authn gin.HandlerFunc) {
	handler := NewHandler()

	priorities := router.Group("/priorities")
	priorities.Use(authn, middleware.RequireRoles("USER", "ADMIN"))
	{
		priorities.GET("", handler.List)
	}
}
