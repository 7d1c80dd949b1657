package task_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tasktracker/config"
	"tasktracker/connection"
	"tasktracker/controller/auth"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, services.Migrate(db))

	cfg := &config.Config{
		Auth: config.AuthConfig{Username: "pdpsipa", Password: "banteng1001#"},
	}
	router := connection.NewRouter(db, cfg)

	token, err := auth.CreateAccessToken(cfg.Auth.Username)
	require.NoError(t, err)

	return router, token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	router, token := newTestServer(t)

	// Create with two objective drafts.
	w := doJSON(t, router, http.MethodPost, "/tasks", token, map[string]interface{}{
		"name":      "Server migration",
		"inputDate": "2025-08-01",
		"deadline":  "2025-09-01",
		"objectives": []map[string]string{
			{"description": "Provision hardware"},
			{"description": "Copy data"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	taskID := int(created["id"].(float64))
	require.NotZero(t, taskID)

	// Bare list.
	w = doJSON(t, router, http.MethodGet, "/tasks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "NEW", list[0]["status"])

	// Status update.
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d/status", taskID), token,
		map[string]string{"status": "IN_PROGRESS"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "IN_PROGRESS", decodeBody(t, w)["status"])

	// Append a log entry.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/tasks/%d", taskID), token,
		map[string]string{"message": "migration started"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Detail embeds objectives and logs.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/tasks/%d", taskID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeBody(t, w)
	assert.Len(t, detail["objectives"], 2)
	assert.Len(t, detail["logs"], 1)

	// Delete, then the task is gone.
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/tasks/%d", taskID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/tasks/%d", taskID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTaskRejectsInvalidStatus(t *testing.T) {
	router, token := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/tasks", token, map[string]string{
		"name":   "Report",
		"status": "URGENT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTaskRejectsMissingName(t *testing.T) {
	router, token := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/tasks", token, map[string]string{
		"description": "no name supplied",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownTaskReturns404(t *testing.T) {
	router, token := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/tasks/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPut, "/tasks/999/status", token,
		map[string]string{"status": "DONE"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMissingTokenIsRejected(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
