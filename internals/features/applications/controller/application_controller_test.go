package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncb_backend/internals/constants"
	applicationModel "ncb_backend/internals/features/applications/model"
	appService "ncb_backend/internals/features/applications/service"
	"ncb_backend/internals/testutils"
)

var memberIDPattern = regexp.MustCompile(`^NCB\d{2}\d{4}$`)

func applicationForm(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/public/applications", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validForm() map[string]string {
	return map[string]string{
		"full_name":      "Rahim Uddin",
		"email":          "rahim@example.org",
		"phone":          "+82-10-0000-0000",
		"visa_type":      "D-2",
		"transaction_id": "TX-1234",
		"interests":      "sports, culture",
	}
}

func TestGenerateMemberIDFormat(t *testing.T) {
	db := testutils.NewTestDB(t)

	id, err := appService.GenerateMemberID(db)
	require.NoError(t, err)
	assert.Regexp(t, memberIDPattern, id)
	assert.Equal(t, "NCB"+time.Now().Format("06"), id[:5])
}

func TestSubmitApplication(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	resp, err := app.Test(applicationForm(t, validForm()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	data := envelope["data"].(map[string]any)
	assert.Regexp(t, memberIDPattern, data["member_id"])
	assert.Equal(t, constants.ApplicationPending, data["status"])

	var stored applicationModel.MembershipApplicationModel
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Rahim Uddin", stored.FullName)

	var interests []string
	require.NoError(t, json.Unmarshal(stored.Interests, &interests))
	assert.Equal(t, []string{"sports", "culture"}, interests)
}

func TestSubmitApplicationMissingFields(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	fields := validForm()
	delete(fields, "transaction_id")

	resp, err := app.Test(applicationForm(t, fields))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitApplicationRejectsBadEmail(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	fields := validForm()
	fields["email"] = "definitely-not-an-email"

	resp, err := app.Test(applicationForm(t, fields))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&applicationModel.MembershipApplicationModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitApplicationDuplicateEmail(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	resp, err := app.Test(applicationForm(t, validForm()))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(applicationForm(t, validForm()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestReviewTransitions(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	admin, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, admin.UserID, time.Hour)

	application := applicationModel.MembershipApplicationModel{
		FullName: "Applicant", Email: "a@example.org", Phone: "1",
		VisaType: "D-2", TransactionID: "TX-1",
		Status: constants.ApplicationPending, MemberID: "NCB260001",
	}
	require.NoError(t, db.Create(&application).Error)

	put := func(payload map[string]string) *http.Response {
		raw, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPut,
			fmt.Sprintf("/api/admin/membership-applications/%d", application.ApplicationID),
			bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := put(map[string]string{"status": "verified"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored applicationModel.MembershipApplicationModel
	require.NoError(t, db.First(&stored, application.ApplicationID).Error)
	assert.Equal(t, constants.ApplicationVerified, stored.Status)
	require.NotNil(t, stored.VerifiedDate)

	resp = put(map[string]string{"status": "rejected", "rejection_reason": "payment not found"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&stored, application.ApplicationID).Error)
	assert.Equal(t, constants.ApplicationRejected, stored.Status)
	require.NotNil(t, stored.RejectedDate)
	assert.Equal(t, "payment not found", stored.RejectionReason)
}

func TestReviewUnknownApplication(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp(t, db, testutils.NewTestConfig(t))

	admin, _ := testutils.SeedAdmin(t, db, constants.RoleAdmin)
	token := testutils.SeedSession(t, db, admin.UserID, time.Hour)

	raw, _ := json.Marshal(map[string]string{"status": "verified"})
	req := httptest.NewRequest(http.MethodPut, "/api/admin/membership-applications/999", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
