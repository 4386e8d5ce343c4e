package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"eduadmin/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBatch(t *testing.T, env *testEnv, courseID uint, name string, capacity int) uint {
	t.Helper()
	resp, body := env.call(t, http.MethodPost, "/api/admin/batches", map[string]any{
		"courseId":  courseID,
		"name":      name,
		"startDate": "2025-06-01T00:00:00Z",
		"endDate":   "2025-08-31T00:00:00Z",
		"capacity":  capacity,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	return uint(data(t, body)["id"].(float64))
}

func TestBatchEnrolmentRespectsCapacity(t *testing.T) {
	env := setup(t)
	courseID := createCourse(t, env, "Go")
	batchID := createBatch(t, env, courseID, "June", 1)
	path := fmt.Sprintf("/api/admin/batches/%d/users", batchID)

	first := env.createUser(t, "a@example.com", "pw", models.RoleStudent)
	second := env.createUser(t, "b@example.com", "pw", models.RoleStudent)

	resp, _ := env.call(t, http.MethodPost, path, map[string]uint{"userId": first.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// enrolling the same user again changes nothing
	resp, _ = env.call(t, http.MethodPost, path, map[string]uint{"userId": first.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := env.call(t, http.MethodPost, path, map[string]uint{"userId": second.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body["message"], "full")

	resp, _ = env.call(t, http.MethodPost, path, map[string]uint{"userId": 9999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = env.call(t, http.MethodDelete, fmt.Sprintf("%s/%d", path, first.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = env.call(t, http.MethodPost, path, map[string]uint{"userId": second.ID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var batch models.Batch
	require.NoError(t, env.db.Preload("Users").First(&batch, batchID).Error)
	require.Len(t, batch.Users, 1)
	assert.Equal(t, second.ID, batch.Users[0].ID)
}

func TestBatchValidationAndFilter(t *testing.T) {
	env := setup(t)
	goID := createCourse(t, env, "Go")
	rustID := createCourse(t, env, "Rust")

	resp, body := env.call(t, http.MethodPost, "/api/admin/batches", map[string]any{
		"courseId":  goID,
		"name":      "Backwards",
		"startDate": "2025-06-01T00:00:00Z",
		"endDate":   "2025-05-01T00:00:00Z",
		"capacity":  0,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["details"], "endDate")
	assert.Contains(t, body["details"], "capacity")

	resp, _ = env.call(t, http.MethodPost, "/api/admin/batches", map[string]any{
		"courseId":  4242,
		"name":      "Orphan",
		"startDate": "2025-06-01T00:00:00Z",
		"endDate":   "2025-07-01T00:00:00Z",
		"capacity":  5,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	createBatch(t, env, goID, "Go June", 10)
	createBatch(t, env, goID, "Go July", 10)
	createBatch(t, env, rustID, "Rust June", 10)

	_, body = env.call(t, http.MethodGet, fmt.Sprintf("/api/admin/batches?courseId=%d", goID), nil)
	assert.Len(t, items(t, body), 2)

	_, body = env.call(t, http.MethodGet, "/api/admin/batches?search=june", nil)
	assert.Len(t, items(t, body), 2)

	resp, _ = env.call(t, http.MethodGet, "/api/admin/batches?courseId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
