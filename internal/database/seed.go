// ================== internal/database/seed.go ==================
package database

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/xyz-asif/gocalendar/internal/features/users"
	"github.com/xyz-asif/gocalendar/internal/pkg/logger"
)

// Seed creates the bootstrap accounts when they are missing: an admin
// with both roles and a plain user. Passwords come from config so
// deployments never keep the dev defaults.
func Seed(ctx context.Context, db *gorm.DB, adminPassword, userPassword string) error {
	repo := users.NewRepository(db)

	accounts := []struct {
		username string
		password string
		roles    users.RoleSet
	}{
		{"admin", adminPassword, users.RoleSet{users.RoleAdmin, users.RoleUser}},
		{"user", userPassword, users.RoleSet{users.RoleUser}},
	}

	for _, a := range accounts {
		opt, err := repo.FindByUsername(ctx, a.username)
		if err != nil {
			return err
		}
		if _, exists := opt.Get(); exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		account := &users.User{
			Username: a.username,
			Password: string(hash),
			Roles:    a.roles,
		}
		if err := repo.Save(ctx, account); err != nil {
			return err
		}
		logger.Info("Seeded account %q", a.username)
	}

	return nil
}
