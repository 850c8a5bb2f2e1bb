package controller_test

import (
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
	eventModel "ncb_backend/internals/features/events/model"
	noticeModel "ncb_backend/internals/features/notices/model"
	"ncb_backend/internals/testutils"
)

func TestDashboardCountsAndLimits(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	admin, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, admin.UserID, time.Hour)

	require.NoError(t, db.Create(&noticeModel.NoticeModel{
		Title: "Published", Content: "x", Status: constants.NoticePublished,
	}).Error)
	require.NoError(t, db.Create(&noticeModel.NoticeModel{
		Title: "Draft", Content: "x", Status: constants.NoticeDraft,
	}).Error)

	// Seven upcoming events; the dashboard shows at most five.
	for i := 0; i < 7; i++ {
		require.NoError(t, db.Create(&eventModel.EventModel{
			Title:     fmt.Sprintf("Event %d", i),
			StartDate: time.Now().Add(time.Duration(i+1) * 24 * time.Hour),
			EndDate:   time.Now().Add(time.Duration(i+1)*24*time.Hour + time.Hour),
			Status:    constants.EventUpcoming,
		}).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	data := envelope["data"].(map[string]any)

	// Only the seeded admin's member profile exists.
	assert.EqualValues(t, 1, data["total_members"])
	assert.EqualValues(t, 7, data["total_events"])
	// Draft notices are not counted.
	assert.EqualValues(t, 1, data["total_notices"])

	upcoming := data["upcoming_events"].([]any)
	assert.Len(t, upcoming, 5)
	// Soonest first.
	assert.Equal(t, "Event 0", upcoming[0].(map[string]any)["title"])
}
