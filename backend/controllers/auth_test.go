package controllers_test

import (
	"io"
	"log"
	"net/http"
	"testing"

	"eduadmin/backend/controllers"
	"eduadmin/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := setup(t)

	resp, body := env.callAs(t, "", http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ADMIN@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := data(t, body)["token"].(string)
	require.NotEmpty(t, token)

	// the issued token opens admin routes
	resp, _ = env.callAs(t, token, http.MethodGet, "/api/admin/overview", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var history []models.LoginHistory
	require.NoError(t, env.db.Find(&history).Error)
	assert.Len(t, history, 1)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := setup(t)

	resp, body := env.callAs(t, "", http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])

	resp, body = env.callAs(t, "", http.MethodPost, "/api/auth/login", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Validation Error", body["error"])
}

func TestAdminRoutesNeedAdmin(t *testing.T) {
	env := setup(t)

	resp, _ := env.callAs(t, "", http.MethodGet, "/api/admin/promocodes", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.callAs(t, "garbage", http.MethodGet, "/api/admin/promocodes", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	student := env.createUser(t, "student@example.com", "pw", models.RoleStudent)
	resp, body := env.callAs(t, env.tokenFor(t, student), http.MethodGet, "/api/admin/promocodes", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	resp, body = env.callAs(t, env.tokenFor(t, student), http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "student@example.com", data(t, body)["email"])
}

func TestSeedAdmin(t *testing.T) {
	db := newTestDB(t)
	env := &testEnv{db: db}
	logger := log.New(io.Discard, "", 0)

	cfg := *setup(t).cfg
	require.NoError(t, controllers.SeedAdmin(db, &cfg, logger), "no password means no seed")
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)

	cfg.AdminPassword = "changeme"
	require.NoError(t, controllers.SeedAdmin(env.db, &cfg, logger))
	require.NoError(t, controllers.SeedAdmin(env.db, &cfg, logger))
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	assert.EqualValues(t, 1, count)
}
