// ================== internal/features/tasks/repository.go ==================
package tasks

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

func (r *Repository) FindAll(ctx context.Context) ([]Task, error) {
	var found []Task
	if err := r.db.WithContext(ctx).Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (mo.Option[Task], error) {
	var found Task
	err := r.db.WithContext(ctx).First(&found, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mo.None[Task](), nil
	}
	if err != nil {
		return mo.None[Task](), err
	}
	return mo.Some(found), nil
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Task{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Save(ctx context.Context, task *Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Task{}, id).Error
}

func (r *Repository) FindCompleted(ctx context.Context) ([]Task, error) {
	return r.findByCompleted(ctx, true)
}

func (r *Repository) FindIncomplete(ctx context.Context) ([]Task, error) {
	return r.findByCompleted(ctx, false)
}

func (r *Repository) findByCompleted(ctx context.Context, completed bool) ([]Task, error) {
	var found []Task
	err := r.db.WithContext(ctx).Where("completed = ?", completed).Find(&found).Error
	if err != nil {
		return nil, err
	}
	return found, nil
}

// MarkCompleted flips the completed flag to true inside one transaction;
// the read and the write never interleave with another writer. Returns
// None when the id does not exist.
func (r *Repository) MarkCompleted(ctx context.Context, id int64) (mo.Option[Task], error) {
	var found Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&found, id).Error; err != nil {
			return err
		}
		found.Completed = true
		return tx.Save(&found).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mo.None[Task](), nil
	}
	if err != nil {
		return mo.None[Task](), err
	}
	return mo.Some(found), nil
}
