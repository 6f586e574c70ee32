// ================== internal/features/users/service.go ==================
package users

import (
	"context"

	"github.com/samber/mo"
)

// Store is the persistence surface the service orchestrates.
type Store interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (mo.Option[User], error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, id int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) FindAll(ctx context.Context) ([]User, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (mo.Option[User], error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, user *User) (*User, error) {
	user.ID = 0
	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces every field of the stored user with the given one. The
// path id wins over any id in the body. Returns None when the id does not
// exist; update never creates.
func (s *Service) Update(ctx context.Context, id int64, user *User) (mo.Option[User], error) {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return mo.None[User](), err
	}
	if !exists {
		return mo.None[User](), nil
	}

	user.ID = id
	if err := s.store.Save(ctx, user); err != nil {
		return mo.None[User](), err
	}
	return mo.Some(*user), nil
}

// Delete removes the user; deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return s.store.DeleteByID(ctx, id)
}
