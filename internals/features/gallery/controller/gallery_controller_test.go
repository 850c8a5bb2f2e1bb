package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncb_backend/internals/constants"
	galleryModel "ncb_backend/internals/features/gallery/model"
	"ncb_backend/internals/testutils"
)

func fetchGallery(t *testing.T, app *fiber.App) []any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/public/gallery", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope["data"].([]any)
}

func TestPublicGalleryIsCached(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	require.NoError(t, db.Create(&galleryModel.GalleryImageModel{
		Title: "First", ImagePath: "gallery/first.webp",
	}).Error)

	require.Len(t, fetchGallery(t, app), 1)

	// A row added behind the cache's back stays invisible until the TTL
	// lapses or a mutation clears the cache.
	require.NoError(t, db.Create(&galleryModel.GalleryImageModel{
		Title: "Second", ImagePath: "gallery/second.webp",
	}).Error)

	assert.Len(t, fetchGallery(t, app), 1)
}

func TestAdminDeleteClearsPublicCache(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	admin, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, admin.UserID, time.Hour)

	image := galleryModel.GalleryImageModel{Title: "Doomed", ImagePath: "gallery/doomed.webp"}
	require.NoError(t, db.Create(&image).Error)

	require.Len(t, fetchGallery(t, app), 1)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/gallery/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Empty(t, fetchGallery(t, app))
}
