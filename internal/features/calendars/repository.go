// ================== internal/features/calendars/repository.go ==================
package calendars

import (
	"context"
	"errors"

	"github.com/samber/mo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll(ctx context.Context) ([]Calendar, error) {
	var found []Calendar
	if err := r.db.WithContext(ctx).Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (mo.Option[Calendar], error) {
	var found Calendar
	err := r.db.WithContext(ctx).First(&found, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mo.None[Calendar](), nil
	}
	if err != nil {
		return mo.None[Calendar](), err
	}
	return mo.Some(found), nil
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Calendar{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Save(ctx context.Context, calendar *Calendar) error {
	return r.db.WithContext(ctx).Save(calendar).Error
}

// DeleteByID removes the calendar together with its tasks, events and
// membership rows.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&Calendar{ID: id}).Error
}
