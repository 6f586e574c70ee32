// ================== internal/middleware/auth.go ==================
package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/gocalendar/internal/pkg/response"
	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

// Context keys set by the auth middleware
const (
	ContextUsername  = "username"
	ContextRoles     = "roles"
	ContextRequestID = "requestID"
)

// Credentials is the stored login data the middleware verifies against.
type Credentials struct {
	Username     string
	PasswordHash string
	Roles        []string
}

// CredentialSource loads stored credentials for a username.
type CredentialSource interface {
	Credentials(ctx context.Context, username string) (Credentials, error)
}

// BasicAuth authenticates requests with HTTP Basic against stored bcrypt
// hashes. An unknown username and a wrong password produce the same 401 so
// callers cannot enumerate accounts.
func BasicAuth(source CredentialSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="gocalendar"`)
			response.Unauthorized(c, "Authorization required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		creds, err := source.Credentials(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.Header("WWW-Authenticate", `Basic realm="gocalendar"`)
				response.Unauthorized(c, "Invalid username or password", "AUTH_FAILED")
				c.Abort()
				return
			}
			response.InternalServerError(c, "Failed to load credentials")
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
			c.Header("WWW-Authenticate", `Basic realm="gocalendar"`)
			response.Unauthorized(c, "Invalid username or password", "AUTH_FAILED")
			c.Abort()
			return
		}

		c.Set(ContextUsername, creds.Username)
		c.Set(ContextRoles, creds.Roles)
		c.Next()
	}
}

// RequireRoles lets the request through when the authenticated user holds
// at least one of the given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		held := Roles(c)

		for _, want := range roles {
			for _, have := range held {
				if have == want {
					c.Next()
					return
				}
			}
		}

		response.Forbidden(c, "Insufficient role")
		c.Abort()
	}
}

// Roles returns the roles the auth middleware stored on the context.
func Roles(c *gin.Context) []string {
	v, ok := c.Get(ContextRoles)
	if !ok {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}
