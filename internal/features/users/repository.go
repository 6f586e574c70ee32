// ================== internal/features/users/repository.go ==================
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"gorm.io/gorm"

	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll(ctx context.Context) ([]User, error) {
	var found []User
	if err := r.db.WithContext(ctx).Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (mo.Option[User], error) {
	var found User
	err := r.db.WithContext(ctx).First(&found, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mo.None[User](), nil
	}
	if err != nil {
		return mo.None[User](), err
	}
	return mo.Some(found), nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (mo.Option[User], error) {
	var found User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&found).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mo.None[User](), nil
	}
	if err != nil {
		return mo.None[User](), err
	}
	return mo.Some(found), nil
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts the user when the id is zero and fully replaces the row
// otherwise. A username collision surfaces as ErrDuplicate.
func (r *Repository) Save(ctx context.Context, user *User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("username %q: %w", user.Username, apperrors.ErrDuplicate)
	}
	return err
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&User{}, id).Error
}
