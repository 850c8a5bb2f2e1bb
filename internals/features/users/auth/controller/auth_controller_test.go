package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncb_backend/internals/constants"
	sessionModel "ncb_backend/internals/features/users/auth/model"
	"ncb_backend/internals/testutils"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

func loginRequest(email, password string) *http.Request {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestLoginIssuesHexTokenWithDayExpiry(t *testing.T) {
	db := testutils.NewTestDB(t)
	cfg := testutils.NewTestConfig(t)
	app := testutils.NewTestApp(t, db, cfg)

	user, password := testutils.SeedAdmin(t, db, constants.RoleAdmin)

	resp, err := app.Test(loginRequest(user.Email, password))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]any)

	token := data["token"].(string)
	assert.Regexp(t, hexToken, token)

	expiresAt, err := time.Parse(time.RFC3339, data["expires_at"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(cfg.SessionTTL), expiresAt, time.Minute)

	loginUser := data["user"].(map[string]any)
	assert.Equal(t, user.Username, loginUser["username"])
	assert.Equal(t, "Test Admin", loginUser["full_name"])
	assert.NotContains(t, loginUser, "password")

	var session sessionModel.SessionModel
	require.NoError(t, db.Where("token = ?", token).First(&session).Error)
	assert.Equal(t, user.UserID, session.UserID)
}

func TestLoginWrongPasswordLeavesNoSession(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)

	resp, err := app.Test(loginRequest(user.Email, "not the password"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Invalid email or password", envelope["message"])

	var count int64
	require.NoError(t, db.Model(&sessionModel.SessionModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginInactiveUserRejectedWithSameMessage(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, password := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	require.NoError(t, db.Model(user).Update("status", constants.StatusInactive).Error)

	resp, err := app.Test(loginRequest(user.Email, password))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "Invalid email or password", envelope["message"])
}

func TestLogoutIsIdempotent(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, user.UserID, time.Hour)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&sessionModel.SessionModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogoutSucceedsWithoutValidSession(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	// No Authorization header at all.
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A token nobody ever issued.
	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// An expired one.
	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	expired := testutils.SeedSession(t, db, user.UserID, -time.Minute)
	req = httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExpiredSessionIsUnusableButNotPurged(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, user.UserID, -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/notices", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The row is merely ignored, not deleted.
	var count int64
	require.NoError(t, db.Model(&sessionModel.SessionModel{}).
		Where("token = ?", token).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
