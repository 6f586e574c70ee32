// ================== internal/database/postgres.go ==================
package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/xyz-asif/gocalendar/internal/features/calendars"
	"github.com/xyz-asif/gocalendar/internal/features/events"
	"github.com/xyz-asif/gocalendar/internal/features/tasks"
	"github.com/xyz-asif/gocalendar/internal/features/users"
	"github.com/xyz-asif/gocalendar/internal/pkg/logger"
)

// Connect opens the Postgres database. TranslateError turns driver
// unique-violation errors into gorm.ErrDuplicatedKey so callers can map
// them to conflicts.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	logger.Info("Connected to Postgres")
	return db, nil
}

// Migrate keeps the schema in sync with the entity models. Users go
// first so the calendars_users join table can reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&calendars.Calendar{},
		&tasks.Task{},
		&events.Event{},
	)
}
