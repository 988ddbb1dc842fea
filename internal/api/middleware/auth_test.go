package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
)

func TestAuth_MissingHeader(t *testing.T) {
	called := false
	handler := Auth(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuth_BuildsUserContext(t *testing.T) {
	var got *usercontext.UserContext
	handler := Auth(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		uc, ok := usercontext.FromContext(r.Context())
		require.True(t, ok)
		got = uc
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
	req.Header.Set("X-User-ID", "user-1")
	req.Header.Set("X-Username", "alice")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "alice", got.Username)
}
