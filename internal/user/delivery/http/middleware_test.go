package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtv/stockhouse/internal/user/domain"
	"github.com/minhtv/stockhouse/pkg/auth"
)

func claimsEcho(t *testing.T) (http.HandlerFunc, *map[string]interface{}) {
	t.Helper()
	seen := make(map[string]interface{})
	return func(w http.ResponseWriter, r *http.Request) {
		seen["user_id"] = r.Context().Value(UserIDKey)
		seen["username"] = r.Context().Value(UsernameKey)
		seen["role"] = r.Context().Value(RoleKey)
		w.WriteHeader(http.StatusOK)
	}, &seen
}

func TestAuthMiddlewarePutsClaimsInContext(t *testing.T) {
	token, err := auth.GenerateToken(7, "alice", domain.RoleStaff)
	require.NoError(t, err)

	handler, seen := claimsEcho(t)
	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	AuthMiddleware(handler)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), (*seen)["user_id"])
	assert.Equal(t, "alice", (*seen)["username"])
	assert.Equal(t, domain.RoleStaff, (*seen)["role"])
}

func TestAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	handler, _ := claimsEcho(t)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "garbage"} {
		req := httptest.NewRequest("GET", "/users/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		AuthMiddleware(handler)(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	AuthMiddleware(handler)(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminMiddlewareChecksRole(t *testing.T) {
	handler, _ := claimsEcho(t)

	staffToken, err := auth.GenerateToken(7, "alice", domain.RoleStaff)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec := httptest.NewRecorder()
	AdminMiddleware(handler)(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := auth.GenerateToken(1, "root", domain.RoleAdmin)
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	AdminMiddleware(handler)(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
