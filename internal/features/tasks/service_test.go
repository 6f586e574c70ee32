package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/gocalendar/internal/features/priority"
	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

type fakeTaskStore struct {
	byID   map[int64]Task
	nextID int64
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{byID: map[int64]Task{}, nextID: 1}
}

func (s *fakeTaskStore) FindAll(context.Context) ([]Task, error) {
	found := make([]Task, 0, len(s.byID))
	for _, t := range s.byID {
		found = append(found, t)
	}
	return found, nil
}

func (s *fakeTaskStore) FindByID(_ context.Context, id int64) (mo.Option[Task], error) {
	t, ok := s.byID[id]
	if !ok {
		return mo.None[Task](), nil
	}
	return mo.Some(t), nil
}

func (s *fakeTaskStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.byID[id]
	return ok, nil
}

func (s *fakeTaskStore) Save(_ context.Context, task *Task) error {
	if task.ID == 0 {
		task.ID = s.nextID
		s.nextID++
	}
	s.byID[task.ID] = *task
	return nil
}

func (s *fakeTaskStore) DeleteByID(_ context.Context, id int64) error {
	delete(s.byID, id)
	return nil
}

func (s *fakeTaskStore) FindCompleted(ctx context.Context) ([]Task, error) {
	return s.findByCompleted(true)
}

func (s *fakeTaskStore) FindIncomplete(ctx context.Context) ([]Task, error) {
	return s.findByCompleted(false)
}

func (s *fakeTaskStore) findByCompleted(completed bool) ([]Task, error) {
	found := make([]Task, 0)
	for _, t := range s.byID {
		if t.Completed == completed {
			found = append(found, t)
		}
	}
	return found, nil
}

func (s *fakeTaskStore) MarkCompleted(_ context.Context, id int64) (mo.Option[Task], error) {
	t, ok := s.byID[id]
	if !ok {
		return mo.None[Task](), nil
	}
	t.Completed = true
	s.byID[id] = t
	return mo.Some(t), nil
}

func newTask(title string) *Task {
	date := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return &Task{
		Title:      title,
		Priority:   priority.High,
		Date:       &date,
		CalendarID: 1,
	}
}

func TestCreateThenFindByID(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	created, err := svc.Create(context.Background(), newTask("Report"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.Completed)

	opt, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	found, ok := opt.Get()
	require.True(t, ok)
	require.Equal(t, *created, found)
}

func TestCreateForcesUncompleted(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	task := newTask("Report")
	task.Completed = true
	created, err := svc.Create(context.Background(), task)
	require.NoError(t, err)
	require.False(t, created.Completed)
}

func TestFindByIDMissingIsNone(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	opt, err := svc.FindByID(context.Background(), 999)
	require.NoError(t, err)
	require.True(t, opt.IsAbsent())
}

func TestUpdateMissingDoesNotPersist(t *testing.T) {
	store := newFakeTaskStore()
	svc := NewService(store)

	opt, err := svc.Update(context.Background(), 999, newTask("Report"))
	require.NoError(t, err)
	require.True(t, opt.IsAbsent())
	require.Empty(t, store.byID)
}

func TestUpdateForcesPathID(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	created, err := svc.Create(context.Background(), newTask("Report"))
	require.NoError(t, err)

	replacement := newTask("Amended report")
	replacement.ID = 12345
	opt, err := svc.Update(context.Background(), created.ID, replacement)
	require.NoError(t, err)
	updated, ok := opt.Get()
	require.True(t, ok)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Amended report", updated.Title)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	created, err := svc.Create(context.Background(), newTask("Report"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.NoError(t, svc.Delete(context.Background(), 999))
}

func TestDateOf(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	created, err := svc.Create(context.Background(), newTask("Report"))
	require.NoError(t, err)

	date, err := svc.DateOf(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, *created.Date, *date)

	_, err = svc.DateOf(context.Background(), 999)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDateOfNilDate(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	task := newTask("Report")
	task.Date = nil
	created, err := svc.Create(context.Background(), task)
	require.NoError(t, err)

	date, err := svc.DateOf(context.Background(), created.ID)
	require.NoError(t, err)
	require.Nil(t, date)
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	created, err := svc.Create(context.Background(), newTask("Report"))
	require.NoError(t, err)

	updated, err := svc.MarkCompleted(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, updated.Completed)

	again, err := svc.MarkCompleted(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, again.Completed)

	_, err = svc.MarkCompleted(context.Background(), 999)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCompletedFilters(t *testing.T) {
	svc := NewService(newFakeTaskStore())

	created, err := svc.Create(context.Background(), newTask("Report"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), newTask("Chores"))
	require.NoError(t, err)

	_, err = svc.MarkCompleted(context.Background(), created.ID)
	require.NoError(t, err)

	completed, err := svc.FindCompleted(context.Background())
	require.NoError(t, err)
	require.Len(t, completed, 1)
	require.Equal(t, created.ID, completed[0].ID)

	uncompleted, err := svc.FindIncomplete(context.Background())
	require.NoError(t, err)
	require.Len(t, uncompleted, 1)
	require.NotEqual(t, created.ID, uncompleted[0].ID)
}
