package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eduadmin/backend/config"
	"eduadmin/backend/gateway"
	"eduadmin/backend/models"
	"eduadmin/backend/routes"
	"eduadmin/backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	cfg   *config.Config
	admin models.User
	token string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to ":memory:" is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, utils.Migrate(db))
	return db
}

func setup(t *testing.T, gw ...gateway.StatusChecker) *testEnv {
	t.Helper()
	env := &testEnv{
		db: newTestDB(t),
		cfg: &config.Config{
			JWTSecret:   "testsecret",
			JWTTTL:      time.Hour,
			ServerPort:  "8080",
			CORSOrigins: "*",
			AdminEmail:  "admin@example.com",
		},
	}

	var checker gateway.StatusChecker
	if len(gw) > 0 {
		checker = gw[0]
	}
	env.app = routes.NewApp(env.db, env.cfg, log.New(io.Discard, "", 0), checker)

	env.admin = env.createUser(t, "admin@example.com", "secret123", models.RoleAdmin)
	token, err := utils.GenerateJWTToken(env.admin.ID, env.admin.Role, env.cfg)
	require.NoError(t, err)
	env.token = token
	return env
}

func (env *testEnv) createUser(t *testing.T, email, password, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{Name: email, Email: email, PasswordHash: string(hash), Role: role}
	require.NoError(t, env.db.Create(&u).Error)
	return u
}

func (env *testEnv) tokenFor(t *testing.T, u models.User) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(u.ID, u.Role, env.cfg)
	require.NoError(t, err)
	return token
}

// call sends a request as the admin and decodes the JSON answer, if any.
func (env *testEnv) call(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	return env.callAs(t, env.token, method, path, body)
}

func (env *testEnv) callAs(t *testing.T, token, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	var out map[string]any
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %v", body)
	return d
}

func items(t *testing.T, body map[string]any) []any {
	t.Helper()
	d, ok := body["data"].([]any)
	require.True(t, ok, "data is not a list: %v", body)
	return d
}
