package auth_test

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

func newTestRouter(t *testing.T) *gin.Engine {
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
	return connection.NewRouter(db, cfg)
}

func postSignin(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSigninIssuesToken(t *testing.T) {
	router := newTestRouter(t)

	w := postSignin(t, router, map[string]string{
		"username": "pdpsipa",
		"password": "banteng1001#",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
}

func TestSigninRejectsWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	w := postSignin(t, router, map[string]string{
		"username": "pdpsipa",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSigninRejectsUnknownUser(t *testing.T) {
	router := newTestRouter(t)

	w := postSignin(t, router, map[string]string{
		"username": "someone",
		"password": "banteng1001#",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenSignedWithWrongSecretIsRejected(t *testing.T) {
	router := newTestRouter(t)

	t.Setenv("JWT_SECRET_KEY", "another-secret")
	token, err := auth.CreateAccessToken("pdpsipa")
	require.NoError(t, err)
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSigninRejectsMissingFields(t *testing.T) {
	router := newTestRouter(t)

	w := postSignin(t, router, map[string]string{"username": "pdpsipa"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
