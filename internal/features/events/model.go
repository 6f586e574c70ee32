// ================== internal/features/events/model.go ==================
package events

import (
	"time"

	"gorm.io/gorm"

	"github.com/xyz-asif/gocalendar/internal/features/priority"
)

// Event represents a scheduled occurrence belonging to a calendar. The
// priority is optional; its descriptive label is derived, never stored.
type Event struct {
	ID          int64         `gorm:"primaryKey" json:"id" example:"1"`
	Title       string        `gorm:"column:event_title;type:text;not null" json:"title" example:"Standup"`
	Description string        `gorm:"column:event_description;type:text" json:"description,omitempty"`
	Date        time.Time     `gorm:"column:event_date;not null" json:"date" example:"2025-01-01T09:00:00Z"`
	Priority    priority.Type `gorm:"column:event_priority;type:text" json:"priority,omitempty" enums:"LOW,MEDIUM,HIGH"`
	// derived from Priority on load and save, never persisted
	PriorityLabel string `gorm:"-" json:"priorityLabel,omitempty"`
	CalendarID    int64  `gorm:"column:calendar_id;not null" json:"calendarId" example:"1"`
}

func (Event) TableName() string { return "events" }

// AfterFind recomputes the priority label whenever an event is loaded.
func (e *Event) AfterFind(*gorm.DB) error {
	e.resolvePriority()
	return nil
}

// AfterSave recomputes the priority label after every write so the caller
// sees it on the returned entity.
func (e *Event) AfterSave(*gorm.DB) error {
	e.resolvePriority()
	return nil
}

// resolvePriority derives the label. An event without a priority carries
// no label; any set value resolves through the priority table, unknown
// ones falling back to Low.
func (e *Event) resolvePriority() {
	if e.Priority == "" {
		e.PriorityLabel = ""
		return
	}
	e.PriorityLabel = priority.Resolve(e.Priority).Label()
}

// EventRequest represents event creation and full-update data
type EventRequest struct {
	Title       string        `json:"title" binding:"required" example:"Standup"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date" binding:"required" example:"2025-01-01T09:00:00Z"`
	Priority    priority.Type `json:"priority" enums:"LOW,MEDIUM,HIGH"`
	CalendarID  int64         `json:"calendarId" binding:"required" example:"1"`
}

// Entity builds the persistent record from the request.
func (r *EventRequest) Entity() *Event {
	e := &Event{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Priority:    r.Priority,
		CalendarID:  r.CalendarID,
	}
	e.resolvePriority()
	return e
}
