// ================== internal/features/tasks/model.go ==================
package tasks

import (
	"time"

	"github.com/xyz-asif/gocalendar/internal/features/priority"
)

// Task represents a schedulable to-do item belonging to a calendar
type Task struct {
	ID          int64         `gorm:"primaryKey" json:"id" example:"1"`
	Title       string        `gorm:"column:task_title;type:text;not null" json:"title" example:"Report"`
	Description string        `gorm:"column:task_description;type:text" json:"description,omitempty"`
	Priority    priority.Type `gorm:"column:task_priority;type:text;not null" json:"priority" example:"HIGH" enums:"LOW,MEDIUM,HIGH"`
	Date        *time.Time    `gorm:"column:task_date" json:"date,omitempty" example:"2025-01-01T09:00:00Z"`
	Completed   bool          `gorm:"column:completed;not null;default:false" json:"completed" example:"false"`
	CalendarID  int64         `gorm:"column:calendar_id;not null" json:"calendarId" example:"1"`
}

func (Task) TableName() string { return "tasks" }

// TaskRequest represents task creation and full-update data
type TaskRequest struct {
	Title       string        `json:"title" binding:"required" example:"Report"`
	Description string        `json:"description"`
	Priority    priority.Type `json:"priority" example:"HIGH" enums:"LOW,MEDIUM,HIGH"`
	Date        *time.Time    `json:"date" example:"2025-01-01T09:00:00Z"`
	Completed   bool          `json:"completed"`
	CalendarID  int64         `json:"calendarId" binding:"required" example:"1"`
}

// Entity builds the persistent record from the request. An absent or
// unrecognized priority becomes LOW.
func (r *TaskRequest) Entity() *Task {
	p := r.Priority
	if !p.Valid() {
		p = priority.Low
	}

	return &Task{
		Title:       r.Title,
		Description: r.Description,
		Priority:    p,
		Date:        r.Date,
		Completed:   r.Completed,
		CalendarID:  r.CalendarID,
	}
}
