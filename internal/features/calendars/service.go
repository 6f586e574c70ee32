// ================== internal/features/calendars/service.go ==================
package calendars

import (
	"context"

	"github.com/samber/mo"
)

// Store is the persistence surface the service orchestrates.
type Store interface {
	FindAll(ctx context.Context) ([]Calendar, error)
	FindByID(ctx context.Context, id int64) (mo.Option[Calendar], error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, calendar *Calendar) error
	DeleteByID(ctx context.Context, id int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) FindAll(ctx context.Context) ([]Calendar, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (mo.Option[Calendar], error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, calendar *Calendar) (*Calendar, error) {
	calendar.ID = 0
	if err := s.store.Save(ctx, calendar); err != nil {
		return nil, err
	}
	return calendar, nil
}

// Update replaces every field of the stored calendar with the given one.
// The path id wins over any id in the body. Returns None when the id does
// not exist; update never creates.
func (s *Service) Update(ctx context.Context, id int64, calendar *Calendar) (mo.Option[Calendar], error) {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return mo.None[Calendar](), err
	}
	if !exists {
		return mo.None[Calendar](), nil
	}

	calendar.ID = id
	if err := s.store.Save(ctx, calendar); err != nil {
		return mo.None[Calendar](), err
	}
	return mo.Some(*calendar), nil
}

// Delete removes the calendar and everything it owns; deleting a missing
// id is a no-op.
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
