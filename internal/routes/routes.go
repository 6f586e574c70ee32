package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/gocalendar/internal/features/auth"
	"github.com/xyz-asif/gocalendar/internal/features/calendars"
	"github.com/xyz-asif/gocalendar/internal/features/events"
	"github.com/xyz-asif/gocalendar/internal/features/priority"
	"github.com/xyz-asif/gocalendar/internal/features/tasks"
	"github.com/xyz-asif/gocalendar/internal/features/users"
	"github.com/xyz-asif/gocalendar/internal/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every feature group onto the router. The auth
// service doubles as the credential source for basic auth.
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	userRepo := users.NewRepository(db)
	authSvc := auth.NewService(userRepo)
	authn := middleware.BasicAuth(authSvc)

	auth.RegisterRoutes(router, authSvc)
	users.RegisterRoutes(router, db, authn)
	calendars.RegisterRoutes(router, db, authn)
	tasks.RegisterRoutes(router, db, authn)
	events.RegisterRoutes(router, db, authn)
	priority.RegisterRoutes(router, authn)
}
