// ================== internal/features/tasks/service.go ==================
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"

	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

// Store is the persistence surface the service orchestrates.
type Store interface {
	FindAll(ctx context.Context) ([]Task, error)
	FindByID(ctx context.Context, id int64) (mo.Option[Task], error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, task *Task) error
	DeleteByID(ctx context.Context, id int64) error
	FindCompleted(ctx context.Context) ([]Task, error)
	FindIncomplete(ctx context.Context) ([]Task, error)
	MarkCompleted(ctx context.Context, id int64) (mo.Option[Task], error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) FindAll(ctx context.Context) ([]Task, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int64) (mo.Option[Task], error) {
	return s.store.FindByID(ctx, id)
}

// Create persists a new task. Tasks always start out not completed,
// whatever the caller sent.
func (s *Service) Create(ctx context.Context, task *Task) (*Task, error) {
	task.ID = 0
	task.Completed = false
	if err := s.store.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update replaces every field of the stored task with the given one. The
// path id wins over any id in the body. Returns None when the id does not
// exist; update never creates.
func (s *Service) Update(ctx context.Context, id int64, task *Task) (mo.Option[Task], error) {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return mo.None[Task](), err
	}
	if !exists {
		return mo.None[Task](), nil
	}

	task.ID = id
	if err := s.store.Save(ctx, task); err != nil {
		return mo.None[Task](), err
	}
	return mo.Some(*task), nil
}

// Delete removes the task; deleting a missing id is a no-op.
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

// DateOf returns the task's scheduled date. The id must exist; the date
// itself may still be nil.
func (s *Service) DateOf(ctx context.Context, id int64) (*time.Time, error) {
	opt, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	found, ok := opt.Get()
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, apperrors.ErrNotFound)
	}
	return found.Date, nil
}

func (s *Service) FindCompleted(ctx context.Context) ([]Task, error) {
	return s.store.FindCompleted(ctx)
}

func (s *Service) FindIncomplete(ctx context.Context) ([]Task, error) {
	return s.store.FindIncomplete(ctx)
}

// MarkCompleted sets completed=true. The transition is one way and
// idempotent; there is no way back to uncompleted.
func (s *Service) MarkCompleted(ctx context.Context, id int64) (*Task, error) {
	opt, err := s.store.MarkCompleted(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, ok := opt.Get()
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, apperrors.ErrNotFound)
	}
	return &updated, nil
}
