// ================== internal/features/events/service.go ==================
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"

	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

// Store is the persistence surface the service orchestrates.
type Store interface {
	FindAll(ctx context.Context) ([]Event, error)
	FindByID(ctx context.Context, id int64) (mo.Option[Event], error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, event *Event) error
	DeleteByID(ctx context.Context, id int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) FindAll(ctx context.Context) ([]Event, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (mo.Option[Event], error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, event *Event) (*Event, error) {
	event.ID = 0
	if err := s.store.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update replaces every field of the stored event with the given one. The
// path id wins over any id in the body. Returns None when the id does not
// exist; update never creates.
func (s *Service) Update(ctx context.Context, id int64, event *Event) (mo.Option[Event], error) {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return mo.None[Event](), err
	}
	if !exists {
		return mo.None[Event](), nil
	}

	event.ID = id
	if err := s.store.Save(ctx, event); err != nil {
		return mo.None[Event](), err
	}
	return mo.Some(*event), nil
}

// Delete removes the event; deleting a missing id is a no-op.
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

// DateOf returns the event's scheduled date. The id must exist.
func (s *Service) DateOf(ctx context.Context, id int64) (time.Time, error) {
	opt, err := s.store.FindByID(ctx, id)
	if err != nil {
		return time.Time{}, err
	}

	found, ok := opt.Get()
	if !ok {
		return time.Time{}, fmt.Errorf("event %d: %w", id, apperrors.ErrNotFound)
	}
	return found.Date, nil
}
