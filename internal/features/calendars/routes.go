// ================== internal/features/calendars/routes.go ==================
package calendars

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xyz-asif/gocalendar/internal/features/users"
	"github.com/xyz-asif/gocalendar/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, db *gorm.DB, authn gin.HandlerFunc) {
	repo := NewRepository(db)
	handler := NewHandler(NewService(repo))

	calendars := router.Group("/calendars")
	calendars.Use(authn, middleware.RequireRoles(users.RoleUser, users.RoleAdmin))
	{
		calendars.GET("", handler.List)
		calendars.GET("/:id", handler.Get)
		calendars.POST("/create", handler.Create)
		calendars.PUT("/:id", handler.Update)
		calendars.DELETE("/:id", handler.Delete)
	}
}
