package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/gocalendar/internal/features/users"
	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

type fakeUserStore struct {
	byUsername map[string]users.User
	nextID     int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: map[string]users.User{}, nextID: 1}
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (mo.Option[users.User], error) {
	u, ok := s.byUsername[username]
	if !ok {
		return mo.None[users.User](), nil
	}
	return mo.Some(u), nil
}

func (s *fakeUserStore) Save(_ context.Context, user *users.User) error {
	if existing, ok := s.byUsername[user.Username]; ok && existing.ID != user.ID {
		return fmt.Errorf("username %q: %w", user.Username, apperrors.ErrDuplicate)
	}
	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
	}
	s.byUsername[user.Username] = *user
	return nil
}

func TestRegisterThenCredentials(t *testing.T) {
	svc := NewService(newFakeUserStore())

	created, err := svc.Register(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, users.RoleSet{"USER"}, created.Roles)
	require.NotEqual(t, "secret", created.Password)

	creds, err := svc.Credentials(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", creds.Username)
	require.Equal(t, []string{"USER"}, creds.Roles)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte("secret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "alice", "secret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other")
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestCredentialsUnknownUsername(t *testing.T) {
	svc := NewService(newFakeUserStore())

	_, err := svc.Credentials(context.Background(), "nobody")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
