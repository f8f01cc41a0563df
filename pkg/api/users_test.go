package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/api/users/profile", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := dataField(t, w)["user"].(map[string]any)
	assert.Equal(t, "user@test.local", user["email"])
	assert.Equal(t, "user", user["role"])
}

func TestUpdateProfile(t *testing.T) {
	srv, st := newTestServer(t)

	w := doRequest(t, srv, http.MethodPut, "/api/users/profile", userToken, map[string]any{"name": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	user := dataField(t, w)["user"].(map[string]any)
	assert.Equal(t, "Renamed", user["name"])
	assert.Equal(t, "user@test.local", user["email"])

	// Taking another user's email is refused.
	w = doRequest(t, srv, http.MethodPut, "/api/users/profile", userToken, map[string]any{"email": "admin@test.local"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already in use", decodeBody(t, w)["message"])

	// Re-submitting your own email is fine.
	w = doRequest(t, srv, http.MethodPut, "/api/users/profile", userToken, map[string]any{"email": "user@test.local"})
	require.Equal(t, http.StatusOK, w.Code)

	got, found := st.Users.FindByEmail("user@test.local")
	require.True(t, found)
	assert.Equal(t, "Renamed", got.Name)
}

func TestListAndGetUsersAdminOnly(t *testing.T) {
	srv, st := newTestServer(t)

	w := doRequest(t, srv, http.MethodGet, "/api/users", userToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, srv, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := dataField(t, w)["users"].([]any)
	assert.Len(t, users, 2)

	target, found := st.Users.FindByEmail("user@test.local")
	require.True(t, found)

	w = doRequest(t, srv, http.MethodGet, "/api/users/"+target.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := dataField(t, w)["user"].(map[string]any)
	assert.Equal(t, target.Email, user["email"])

	w = doRequest(t, srv, http.MethodGet, "/api/users/missing", adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserRole(t *testing.T) {
	srv, st := newTestServer(t)
	target, found := st.Users.FindByEmail("user@test.local")
	require.True(t, found)

	// Role changes are admin-only.
	w := doRequest(t, srv, http.MethodPut, "/api/users/"+target.ID+"/role", userToken, map[string]any{"role": "admin"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, srv, http.MethodPut, "/api/users/"+target.ID+"/role", adminToken, map[string]any{"role": "admin"})
	require.Equal(t, http.StatusOK, w.Code)
	user := dataField(t, w)["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])

	w = doRequest(t, srv, http.MethodPut, "/api/users/"+target.ID+"/role", adminToken, map[string]any{"role": "superuser"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Invalid role. Must be "user" or "admin"`, decodeBody(t, w)["message"])

	w = doRequest(t, srv, http.MethodPut, "/api/users/missing/role", adminToken, map[string]any{"role": "user"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
