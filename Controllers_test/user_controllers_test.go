package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
	}{
		{"valid credentials", map[string]string{"username": adminUser, "password": adminPass}, http.StatusOK},
		{"wrong password", map[string]string{"username": adminUser, "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"username": "ghost", "password": adminPass}, http.StatusUnauthorized},
		{"missing password", map[string]string{"username": adminUser}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/login", "", tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestProfileAndLogout(t *testing.T) {
	s := setupServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodGet, "/admin/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		IsBootstrap bool   `json:"is_bootstrap"`
	}
	decode(t, w, &profile)
	assert.Equal(t, adminUser, profile.Username)
	assert.True(t, profile.IsBootstrap)

	w = s.do(t, http.MethodPost, "/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/admin/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminManagement(t *testing.T) {
	s := setupServer(t)
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/admin/admins", token, map[string]string{"username": "manager", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID       string `json:"id"`
		Password string `json:"password"`
	}
	decode(t, w, &created)
	assert.Empty(t, created.Password, "password hash must not be serialized")

	w = s.do(t, http.MethodPost, "/admin/admins", token, map[string]string{"username": "manager", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/login", "", map[string]string{"username": "manager", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)

	w = s.do(t, http.MethodDelete, "/admin/admins/1", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "bootstrap admin is protected")

	w = s.do(t, http.MethodDelete, "/admin/admins/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/admin/profile", login.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "removed admin loses access")

	w = s.do(t, http.MethodGet, "/admin/admins", token, nil)
	var admins []struct {
		ID string `json:"id"`
	}
	decode(t, w, &admins)
	assert.Len(t, admins, 1)
}
