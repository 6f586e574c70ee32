// ================== internal/features/tasks/routes.go ==================
package tasks

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xyz-asif/gocalendar/internal/features/users"
	"github.com/xyz-asif/gocalendar/internal/middleware"
)

func RegisterRoutes(router *gin.Engine, db *gorm.DB, authn gin.HandlerFunc) {
	repo := NewRepository(db)
	handler := NewHandler(NewService(repo))

	anyRole := middleware.RequireRoles(users.RoleUser, users.RoleAdmin)
	adminOnly := middleware.RequireRoles(users.RoleAdmin)

	tasks := router.Group("/tasks")
	tasks.Use(authn)
	{
		tasks.GET("", anyRole, handler.List)
		// the completed listing is admin-only
		tasks.GET("/completed", adminOnly, handler.ListCompleted)
		tasks.GET("/uncompleted", anyRole, handler.ListUncompleted)
		tasks.GET("/:id", anyRole, handler.Get)
		tasks.POST("/create", anyRole, handler.Create)
		tasks.PUT("/:id", anyRole, handler.Update)
		tasks.DELETE("/:id", anyRole, handler.Delete)
		tasks.GET("/:id/date", anyRole, handler.Date)
		tasks.PUT("/:id/complete", anyRole, handler.Complete)
	}
}
