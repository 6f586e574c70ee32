// ================== internal/features/auth/routes.go ==================
package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the registration endpoint. It takes the already
// constructed service because routes.SetupRoutes shares it with the auth
// middleware.
func RegisterRoutes(router *gin.Engine, svc *Service) {
	handler := NewHandler(svc)

	auth := router.Group("/auth")
	{
		auth.POST("/register", handler.Register)
	}
}
