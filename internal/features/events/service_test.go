package events

import (
	"context"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/gocalendar/internal/features/priority"
	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

type fakeEventStore struct {
	byID   map[int64]Event
	nextID int64
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{byID: map[int64]Event{}, nextID: 1}
}

func (s *fakeEventStore) FindAll(context.Context) ([]Event, error) {
	found := make([]Event, 0, len(s.byID))
	for _, e := range s.byID {
		found = append(found, e)
	}
	return found, nil
}

func (s *fakeEventStore) FindByID(_ context.Context, id int64) (mo.Option[Event], error) {
	e, ok := s.byID[id]
	if !ok {
		return mo.None[Event](), nil
	}
	return mo.Some(e), nil
}

func (s *fakeEventStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.byID[id]
	return ok, nil
}

func (s *fakeEventStore) Save(_ context.Context, event *Event) error {
	if event.ID == 0 {
		event.ID = s.nextID
		s.nextID++
	}
	s.byID[event.ID] = *event
	return nil
}

func (s *fakeEventStore) DeleteByID(_ context.Context, id int64) error {
	delete(s.byID, id)
	return nil
}

func newEvent(title string) *Event {
	return &Event{
		Title:      title,
		Date:       time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		CalendarID: 1,
	}
}

func TestCreateThenFindByID(t *testing.T) {
	svc := NewService(newFakeEventStore())

	created, err := svc.Create(context.Background(), newEvent("Standup"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	opt, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	found, ok := opt.Get()
	require.True(t, ok)
	require.Equal(t, *created, found)
}

func TestUpdateMissingIsNone(t *testing.T) {
	store := newFakeEventStore()
	svc := NewService(store)

	opt, err := svc.Update(context.Background(), 999, newEvent("Standup"))
	require.NoError(t, err)
	require.True(t, opt.IsAbsent())
	require.Empty(t, store.byID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := NewService(newFakeEventStore())

	created, err := svc.Create(context.Background(), newEvent("Standup"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.NoError(t, svc.Delete(context.Background(), created.ID))
}

func TestDateOf(t *testing.T) {
	svc := NewService(newFakeEventStore())

	created, err := svc.Create(context.Background(), newEvent("Standup"))
	require.NoError(t, err)

	date, err := svc.DateOf(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Date, date)

	_, err = svc.DateOf(context.Background(), 999)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPriorityLabelDerivation(t *testing.T) {
	e := newEvent("Standup")
	e.Priority = priority.High
	e.resolvePriority()
	require.Equal(t, "High Priority", e.PriorityLabel)

	// unknown stored value falls back to Low
	e.Priority = "URGENT"
	e.resolvePriority()
	require.Equal(t, "Low Priority", e.PriorityLabel)

	// an event without a priority carries no label
	e.Priority = ""
	e.resolvePriority()
	require.Empty(t, e.PriorityLabel)
}

func TestHooksRecomputeLabel(t *testing.T) {
	e := newEvent("Standup")
	e.Priority = priority.Medium

	require.NoError(t, e.AfterFind(nil))
	require.Equal(t, "Medium Priority", e.PriorityLabel)

	e.Priority = priority.High
	require.NoError(t, e.AfterSave(nil))
	require.Equal(t, "High Priority", e.PriorityLabel)
}
