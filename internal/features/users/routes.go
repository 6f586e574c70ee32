// ================== internal/features/users/routes.go ==================
package users

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xyz-asif/gocalendar/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, db *gorm.DB, authn gin.HandlerFunc) {
	repo := NewRepository(db)
	handler := NewHandler(NewService(repo))

	adminOnly := middleware.RequireRoles(RoleAdmin)
	anyRole := middleware.RequireRoles(RoleUser, RoleAdmin)

	users := router.Group("/users")
	users.Use(authn)
	{
		users.GET("", adminOnly, handler.List)
		users.GET("/:id", adminOnly, handler.Get)
		users.POST("/create", anyRole, handler.Create)
		users.PUT("/:id", adminOnly, handler.Update)
		users.DELETE("/:id", adminOnly, handler.Delete)
	}
}
