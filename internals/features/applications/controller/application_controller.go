package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/applications/dto"
	"ncb_backend/internals/features/applications/model"
	appService "ncb_backend/internals/features/applications/service"
	helper "ncb_backend/internals/helpers"
	"ncb_backend/internals/helpers/storage"
	authMw "ncb_backend/internals/middlewares/auth"
)

type ApplicationController struct {
	DB    *gorm.DB
	Store *storage.Store
}

func NewApplicationController(db *gorm.DB, store *storage.Store) *ApplicationController {
	return &ApplicationController{DB: db, Store: store}
}

// interestsJSON normalizes the interests form value: either a JSON array
// or a comma-separated list.
func interestsJSON(raw string) datatypes.JSON {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				arr = append(arr, p)
			}
		}
	}
	data, err := json.Marshal(arr)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

/* ===============================
   Public endpoint
=================================*/

// POST /api/public/applications — the multipart membership form. The
// payment screenshot is optional; when present it is validated and stored
// before the row is written and removed again if the insert fails.
func (ctrl *ApplicationController) SubmitApplication(c *fiber.Ctx) error {
	fullName := strings.TrimSpace(c.FormValue("full_name"))
	email := strings.TrimSpace(c.FormValue("email"))
	phone := strings.TrimSpace(c.FormValue("phone"))
	visaType := strings.TrimSpace(c.FormValue("visa_type"))
	transactionID := strings.TrimSpace(c.FormValue("transaction_id"))
	if fullName == "" || email == "" || phone == "" || visaType == "" || transactionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"full_name, email, phone, visa_type and transaction_id are required")
	}
	if err := helper.ValidateStruct(&struct {
		Email string `validate:"required,email"`
	}{Email: email}); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid email address")
	}

	var dupe int64
	if err := ctrl.DB.Model(&model.MembershipApplicationModel{}).
		Where("email = ? AND status IN ?", email,
			[]string{constants.ApplicationPending, constants.ApplicationVerified}).
		Count(&dupe).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}
	if dupe > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"An application with this email is already on file")
	}

	screenshotPath := ""
	if fh, err := c.FormFile("payment_screenshot"); err == nil {
		screenshotPath, err = ctrl.Store.Save(fh, "payments")
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrFileTooLarge):
				return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Screenshot exceeds the maximum upload size")
			case errors.Is(err, storage.ErrExtNotAllowed), errors.Is(err, storage.ErrContentMismatch):
				return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "File type is not allowed")
			default:
				log.Printf("[ERROR] screenshot upload: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store screenshot")
			}
		}
	}

	memberID, err := appService.GenerateMemberID(ctrl.DB)
	if err != nil {
		if screenshotPath != "" {
			_ = ctrl.Store.Remove(screenshotPath)
		}
		log.Printf("[ERROR] member id allocation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	application := model.MembershipApplicationModel{
		FullName:          fullName,
		Email:             email,
		Phone:             phone,
		University:        strings.TrimSpace(c.FormValue("university")),
		VisaType:          visaType,
		OtherVisa:         strings.TrimSpace(c.FormValue("other_visa")),
		TransactionID:     transactionID,
		PaymentScreenshot: screenshotPath,
		Interests:         interestsJSON(c.FormValue("interests")),
		Status:            constants.ApplicationPending,
		MemberID:          memberID,
		IPAddress:         c.IP(),
	}
	if v := strings.TrimSpace(c.FormValue("arrival_date")); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			application.ArrivalDate = &d
		}
	}

	if err := ctrl.DB.Create(&application).Error; err != nil {
		if screenshotPath != "" {
			if rmErr := ctrl.Store.Remove(screenshotPath); rmErr != nil {
				log.Printf("[WARN] orphan upload cleanup: %v", rmErr)
			}
		}
		log.Printf("[ERROR] create application: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	activityService.LogActivity(ctrl.DB, nil, "Membership application submitted: "+memberID, c.IP())
	// Mail delivery is not wired yet; the admin team watches the log.
	log.Printf("📩 new membership application %s from %s", memberID, email)

	return helper.JsonCreated(c, "Application submitted", fiber.Map{
		"application_id": application.ApplicationID,
		"member_id":      application.MemberID,
		"status":         application.Status,
	})
}

/* ===============================
   Admin endpoints
=================================*/

// GET /api/admin/membership-applications — optionally filtered by status.
func (ctrl *ApplicationController) GetApplications(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	status := strings.TrimSpace(c.Query("status"))

	countQ := ctrl.DB.Model(&model.MembershipApplicationModel{})
	listQ := ctrl.DB.Model(&model.MembershipApplicationModel{})
	if status != "" {
		countQ = countQ.Where("status = ?", status)
		listQ = listQ.Where("status = ?", status)
	}

	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	var applications []model.MembershipApplicationModel
	err := listQ.
		Order("application_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&applications).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	return helper.JsonList(c, "Applications fetched", applications, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/admin/membership-applications — manual entry for applications
// received outside the website form.
func (ctrl *ApplicationController) CreateApplication(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	memberID, err := appService.GenerateMemberID(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create application")
	}

	application := model.MembershipApplicationModel{
		FullName:      req.FullName,
		Email:         strings.TrimSpace(req.Email),
		Phone:         req.Phone,
		University:    req.University,
		VisaType:      req.VisaType,
		OtherVisa:     req.OtherVisa,
		TransactionID: req.TransactionID,
		Status:        constants.ApplicationPending,
		MemberID:      memberID,
		IPAddress:     c.IP(),
	}
	if req.ArrivalDate != "" {
		if d, err := time.Parse("2006-01-02", req.ArrivalDate); err == nil {
			application.ArrivalDate = &d
		}
	}
	if len(req.Interests) > 0 {
		if data, err := json.Marshal(req.Interests); err == nil {
			application.Interests = datatypes.JSON(data)
		}
	}

	if err := ctrl.DB.Create(&application).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create application")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Recorded membership application: "+memberID, c.IP())
	}

	return helper.JsonCreated(c, "Application created", application)
}

// PUT /api/admin/membership-applications/:id — status review. Verifying
// stamps verified_date; rejecting stamps rejected_date and stores the
// reason.
func (ctrl *ApplicationController) UpdateApplication(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var application model.MembershipApplicationModel
	if err := ctrl.DB.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update application")
	}

	updates := map[string]any{"status": req.Status}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}
	now := time.Now()
	switch req.Status {
	case constants.ApplicationVerified:
		updates["verified_date"] = now
		updates["rejected_date"] = nil
		updates["rejection_reason"] = ""
	case constants.ApplicationRejected:
		updates["rejected_date"] = now
		updates["rejection_reason"] = req.RejectionReason
	}

	if err := ctrl.DB.Model(&application).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update application")
	}

	var stored model.MembershipApplicationModel
	if err := ctrl.DB.First(&stored, application.ApplicationID).Error; err != nil {
		stored = application
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID,
			"Reviewed application "+stored.MemberID+": "+req.Status, c.IP())
	}

	return helper.JsonUpdated(c, "Application updated", stored)
}
