package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncb_backend/internals/constants"
	bannerModel "ncb_backend/internals/features/banners/model"
	"ncb_backend/internals/testutils"
)

func putBanner(token string, id uint, payload any) *http.Request {
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/admin/banners/%d", id), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestActivatingBannerDeactivatesOthers(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, user.UserID, time.Hour)

	first := bannerModel.BannerModel{Title: "Spring", ImagePath: "banners/a.webp", Status: constants.BannerActive}
	second := bannerModel.BannerModel{Title: "Summer", ImagePath: "banners/b.webp", Status: constants.BannerInactive}
	third := bannerModel.BannerModel{Title: "Autumn", ImagePath: "banners/c.webp", Status: constants.BannerInactive}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&third).Error)

	resp, err := app.Test(putBanner(token, second.BannerID, map[string]string{"status": "active"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var active []bannerModel.BannerModel
	require.NoError(t, db.Where("status = ?", constants.BannerActive).Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, second.BannerID, active[0].BannerID)
}

func TestBannerPartialUpdateKeepsStatus(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, user.UserID, time.Hour)

	banner := bannerModel.BannerModel{Title: "Old title", ImagePath: "banners/x.webp", Status: constants.BannerActive}
	require.NoError(t, db.Create(&banner).Error)

	resp, err := app.Test(putBanner(token, banner.BannerID, map[string]string{"title": "New title"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored bannerModel.BannerModel
	require.NoError(t, db.First(&stored, banner.BannerID).Error)
	assert.Equal(t, "New title", stored.Title)
	assert.Equal(t, constants.BannerActive, stored.Status)
}

func TestBannerUpdateUnknownID(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	user, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, user.UserID, time.Hour)

	resp, err := app.Test(putBanner(token, 424242, map[string]string{"status": "active"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
