package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"eduadmin/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestListAndUpdateUsers(t *testing.T) {
	env := setup(t)
	s := env.createUser(t, "student@example.com", "pw", models.RoleStudent)
	env.createUser(t, "tpo@example.com", "pw", models.RoleTPO)

	_, body := env.call(t, http.MethodGet, "/api/admin/users?role=student", nil)
	require.Len(t, items(t, body), 1)

	resp, body := env.call(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", s.ID), map[string]any{
		"name": "Student One", "isBlocked": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, true, data(t, body)["isBlocked"])
	assert.Equal(t, "Student One", data(t, body)["name"])

	resp, _ = env.call(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", s.ID), map[string]any{"role": "owner"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminCannotLockThemselvesOut(t *testing.T) {
	env := setup(t)

	resp, _ := env.call(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", env.admin.ID), map[string]any{"isBlocked": true})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = env.call(t, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", env.admin.ID), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBlockedAdminLosesAccess(t *testing.T) {
	env := setup(t)
	other := env.createUser(t, "ops@example.com", "pw", models.RoleAdmin)
	token := env.tokenFor(t, other)

	resp, _ := env.callAs(t, token, http.MethodGet, "/api/admin/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.call(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", other.ID), map[string]any{"isBlocked": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.callAs(t, token, http.MethodGet, "/api/admin/users", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOverview(t *testing.T) {
	env := setup(t)
	createCourse(t, env, "Go")
	createCourse(t, env, "Rust")
	createUniversity(t, env, "Anna University", "tpo@anna.edu", 0)
	env.createUser(t, "s@example.com", "pw", models.RoleStudent)
	require.NoError(t, env.db.Create(&[]models.Payment{
		{OrderID: "P1", TransactionAmount: 100, Status: datatypes.NewJSONType(models.PaymentStatus{State: models.PaymentPaid})},
		{OrderID: "P2", TransactionAmount: 50, Status: datatypes.NewJSONType(models.PaymentStatus{State: models.PaymentFailed})},
	}).Error)

	resp, body := env.call(t, http.MethodGet, "/api/admin/overview", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ov := data(t, body)
	assert.EqualValues(t, 2, ov["courses"])
	assert.EqualValues(t, 0, ov["internships"])
	assert.EqualValues(t, 1, ov["universities"])
	assert.EqualValues(t, 1, ov["students"])
	assert.EqualValues(t, 2, ov["payments"])
	assert.EqualValues(t, 100, ov["revenue"])
}

func TestJobsSalaryRange(t *testing.T) {
	env := setup(t)
	job := map[string]any{
		"kind":          "hm",
		"position":      "Backend Engineer",
		"companyName":   "Acme",
		"salaryMin":     500000,
		"salaryMax":     400000,
		"workMode":      "remote",
		"interviewMode": "online",
		"keySkills":     []string{"go", "postgres"},
	}
	resp, body := env.call(t, http.MethodPost, "/api/admin/jobs", job)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "salaryMax must not be less than salaryMin", body["details"].(map[string]any)["salaryMax"])

	job["salaryMax"] = 900000
	resp, body = env.call(t, http.MethodPost, "/api/admin/jobs", job)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)

	freelance := map[string]any{
		"kind": "freelance", "position": "Logo design", "companyName": "Studio",
		"workMode": "remote", "interviewMode": "online",
	}
	resp, _ = env.call(t, http.MethodPost, "/api/admin/jobs", freelance)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, body = env.call(t, http.MethodGet, "/api/admin/jobs?kind=hm", nil)
	assert.Len(t, items(t, body), 1)
	_, body = env.call(t, http.MethodGet, "/api/admin/jobs?search=postgres", nil)
	assert.Len(t, items(t, body), 1)
}

func TestMediaAndInstructors(t *testing.T) {
	env := setup(t)

	resp, _ := env.call(t, http.MethodPost, "/api/admin/media", map[string]any{
		"title": "Intro", "url": "https://cdn.example.com/intro.mp4", "type": "video",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = env.call(t, http.MethodPost, "/api/admin/media", map[string]any{
		"title": "Slides", "url": "https://cdn.example.com/slides.pdf", "type": "notes",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = env.call(t, http.MethodPost, "/api/admin/media", map[string]any{"url": "not a url", "type": "video"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	_, body := env.call(t, http.MethodGet, "/api/admin/media?type=video", nil)
	assert.Len(t, items(t, body), 1)

	resp, body = env.call(t, http.MethodPost, "/api/admin/instructors", map[string]any{"name": "Grace", "email": "Grace@Example.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "grace@example.com", data(t, body)["email"])
	id := uint(data(t, body)["id"].(float64))

	resp, _ = env.call(t, http.MethodPut, fmt.Sprintf("/api/admin/instructors/%d", id), map[string]any{"name": "Grace H."})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = env.call(t, http.MethodGet, "/api/admin/instructors", nil)
	require.Len(t, items(t, body), 1)
	assert.Equal(t, "Grace H.", items(t, body)[0].(map[string]any)["name"])
}
