// ================== internal/features/events/repository.go ==================
package events

import (
	"context"
	"errors"

	"github.com/samber/mo"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll(ctx context.Context) ([]Event, error) {
	var found []Event
	if err := r.db.WithContext(ctx).Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (mo.Option[Event], error) {
	var found Event
	err := r.db.WithContext(ctx).First(&found, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mo.None[Event](), nil
	}
	if err != nil {
		return mo.None[Event](), err
	}
	return mo.Some(found), nil
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Save(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Event{}, id).Error
}
