// ================== internal/features/calendars/model.go ==================
package calendars

import (
	"github.com/xyz-asif/gocalendar/internal/features/events"
	"github.com/xyz-asif/gocalendar/internal/features/tasks"
	"github.com/xyz-asif/gocalendar/internal/features/users"
)

// Calendar is the aggregate grouping of users, tasks and events. Tasks
// and events live and die with their calendar; membership is a plain
// many-to-many through calendars_users.
type Calendar struct {
	ID     int64          `gorm:"primaryKey" json:"id" example:"1"`
	Name   string         `gorm:"column:calendar_name;type:text;not null" json:"name" example:"Work"`
	Users  []users.User   `gorm:"many2many:calendars_users" json:"users,omitempty"`
	Tasks  []tasks.Task   `gorm:"foreignKey:CalendarID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Events []events.Event `gorm:"foreignKey:CalendarID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
}

func (Calendar) TableName() string { return "calendars" }

// CalendarRequest represents calendar creation and full-update data
type CalendarRequest struct {
	Name string `json:"name" binding:"required" example:"Work"`
}

// Entity builds the persistent record from the request.
func (r *CalendarRequest) Entity() *Calendar {
	return &Calendar{Name: r.Name}
}
