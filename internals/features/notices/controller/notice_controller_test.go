package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncb_backend/internals/constants"
	noticeModel "ncb_backend/internals/features/notices/model"
	"ncb_backend/internals/testutils"
)

func jsonRequest(method, target, token string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestNoticeRoundTrip(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, user.UserID, time.Hour)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/notices", token, map[string]string{
		"title":   "Annual General Meeting",
		"content": "The AGM takes place next month.",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, constants.NoticePublished, created["status"])
	assert.NotEmpty(t, created["created_at"])
	assert.EqualValues(t, user.UserID, created["created_by"])

	// The new notice appears in the admin list with its author joined.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/admin/notices", token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rows := decode(t, resp)["data"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "Annual General Meeting", row["title"])
	assert.Equal(t, user.Username, row["author"])
}

func TestNoticeCreateRequiresTitleAndContent(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, user.UserID, time.Hour)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/notices", token, map[string]string{
		"title": "No content here",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnauthenticatedCreateDoesNotMutate(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/admin/notices", "", map[string]string{
		"title":   "Sneaky",
		"content": "Should never land",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&noticeModel.NoticeModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteNotice(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, user.UserID, time.Hour)

	notice := noticeModel.NoticeModel{Title: "Old", Content: "Stale", Status: constants.NoticePublished}
	require.NoError(t, db.Create(&notice).Error)

	resp, err := app.Test(jsonRequest(http.MethodDelete, fmt.Sprintf("/api/admin/notices/%d", notice.NoticeID), token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A second delete finds nothing.
	resp, err = app.Test(jsonRequest(http.MethodDelete, fmt.Sprintf("/api/admin/notices/%d", notice.NoticeID), token, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPublicNewsShowsOnlyPublished(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	require.NoError(t, db.Create(&noticeModel.NoticeModel{
		Title: "Visible", Content: "published body", Status: constants.NoticePublished,
	}).Error)
	draft := noticeModel.NoticeModel{Title: "Hidden", Content: "draft body", Status: constants.NoticeDraft}
	require.NoError(t, db.Create(&draft).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/public/news", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rows := decode(t, resp)["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Visible", rows[0].(map[string]any)["title"])

	// Draft detail 404s.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/public/news/%d", draft.NoticeID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
