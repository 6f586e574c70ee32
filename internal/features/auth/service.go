// ================== internal/features/auth/service.go ==================
package auth

import (
	"context"
	"fmt"

	"github.com/samber/mo"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/gocalendar/internal/features/users"
	"github.com/xyz-asif/gocalendar/internal/middleware"
	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

// Store is the slice of the user store the auth service needs.
type Store interface {
	FindByUsername(ctx context.Context, username string) (mo.Option[users.User], error)
	Save(ctx context.Context, user *users.User) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Credentials loads the stored login data for the auth middleware.
// Satisfies middleware.CredentialSource.
func (s *Service) Credentials(ctx context.Context, username string) (middleware.Credentials, error) {
	opt, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return middleware.Credentials{}, err
	}

	found, ok := opt.Get()
	if !ok {
		return middleware.Credentials{}, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}

	return middleware.Credentials{
		Username:     found.Username,
		PasswordHash: found.Password,
		Roles:        found.Roles,
	}, nil
}

// Register creates an account with a bcrypt hash of the raw password and
// the default USER role. A taken username surfaces as ErrDuplicate.
func (s *Service) Register(ctx context.Context, username, rawPassword string) (*users.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &users.User{
		Username: username,
		Password: string(hash),
		Roles:    users.RoleSet{users.RoleUser},
	}

	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
