// ================== internal/features/events/routes.go ==================
package events

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xyz-asif/gocalendar/internal/features/users"
	"github.com/xyz-asif/gocalendar/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, db *gorm.DB, authn gin.HandlerFunc) {
	repo := NewRepository(db)
	handler := NewHandler(NewService(repo))

	events := router.Group("/events")
	events.Use(authn, middleware.RequireRoles(users.RoleUser, users.RoleAdmin))
	{
		events.GET("", handler.List)
		events.GET("/:id", handler.Get)
		events.POST("/create", handler.Create)
		events.PUT("/:id", handler.Update)
		events.DELETE("/:id", handler.Delete)
		events.GET("/:id/date", handler.Date)
	}
}
