package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedServer(roles ...string) http.Handler {
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(RequireRoles(roles...)(final))
}

func TestAuthenticateMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	req := httptest.NewRequest("GET", "/families", nil)
	rec := httptest.NewRecorder()
	protectedServer(RoleDonorAdministrator).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	req := httptest.NewRequest("GET", "/families", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-token")
	rec := httptest.NewRecorder()
	protectedServer(RoleDonorAdministrator).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRolesForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken(7, RoleDonor)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/families", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedServer(RoleDonorAdministrator).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesAllowed(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken(7, RoleDonorAdministrator)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/families", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protectedServer(RoleDonorAdministrator).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseAndValidateRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken(42, RoleDonorAdministrator)
	require.NoError(t, err)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, RoleDonorAdministrator, claims.Role)
}
