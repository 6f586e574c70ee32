package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xyz-asif/gocalendar/pkg/errors"
)

type fakeCredentialSource struct {
	users map[string]Credentials
}

func (s *fakeCredentialSource) Credentials(_ context.Context, username string) (Credentials, error) {
	creds, ok := s.users[username]
	if !ok {
		return Credentials{}, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}
	return creds, nil
}

func newFakeSource(t *testing.T) *fakeCredentialSource {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeCredentialSource{users: map[string]Credentials{
		"alice": {Username: "alice", PasswordHash: string(hash), Roles: []string{"USER"}},
	}}
}

func protectedRouter(t *testing.T, guards ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{BasicAuth(newFakeSource(t))}, guards...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(200, gin.H{"user": c.GetString(ContextUsername)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestBasicAuth_NoHeader(t *testing.T) {
	r := protectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	require.Equal(t, `Basic realm="gocalendar"`, w.Header().Get("WWW-Authenticate"))
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "Authorization required", body["error"])
}

func TestBasicAuth_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	r := protectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.SetBasicAuth("nobody", "secret")
	r.ServeHTTP(w, req)
	require.Equal(t, 401, w.Code)
	unknownBody := w.Body.String()

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.SetBasicAuth("alice", "wrong")
	r.ServeHTTP(w, req)
	require.Equal(t, 401, w.Code)
	require.Equal(t, unknownBody, w.Body.String())
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	r := protectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.SetBasicAuth("alice", "secret")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "alice", body["user"])
}

func TestRequireRoles(t *testing.T) {
	// alice only holds USER
	r := protectedRouter(t, RequireRoles("ADMIN"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.SetBasicAuth("alice", "secret")
	r.ServeHTTP(w, req)
	require.Equal(t, 403, w.Code)

	r = protectedRouter(t, RequireRoles("USER", "ADMIN"))
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.SetBasicAuth("alice", "secret")
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
}
