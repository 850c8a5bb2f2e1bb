package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/notices/dto"
	"ncb_backend/internals/features/notices/model"
	helper "ncb_backend/internals/helpers"
	authMw "ncb_backend/internals/middlewares/auth"
)

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

/* ===============================
   Admin endpoints
=================================*/

// GET /api/admin/notices — published notices, newest first, with the
// author's username joined in.
func (ctrl *NoticeController) GetNotices(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NoticeModel{}).
		Where("status = ?", constants.NoticePublished).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notices")
	}

	var rows []dto.NoticeItem
	err := ctrl.DB.Model(&model.NoticeModel{}).
		Where("notices.status = ?", constants.NoticePublished).
		Select("notices.notice_id, notices.title, notices.content, notices.event_date, notices.created_by, notices.status, notices.created_at, users.username AS author").
		Joins("LEFT JOIN users ON users.user_id = notices.created_by").
		Order("notices.created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notices")
	}

	return helper.JsonList(c, "Notices fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/admin/notices — creates a Published notice attributed to the
// caller and returns the stored row.
func (ctrl *NoticeController) CreateNotice(c *fiber.Ctx) error {
	var req dto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	notice := model.NoticeModel{
		Title:   req.Title,
		Content: req.Content,
		Status:  constants.NoticePublished,
	}
	if req.EventDate != "" {
		if d, err := time.Parse("2006-01-02", req.EventDate); err == nil {
			notice.EventDate = &d
		}
	}
	if userID, ok := authMw.CurrentUserID(c); ok {
		notice.CreatedBy = &userID
	}

	if err := ctrl.DB.Create(&notice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notice")
	}

	// Re-read with the author joined so the response matches the listing
	// shape.
	var stored dto.NoticeItem
	err := ctrl.DB.Model(&model.NoticeModel{}).
		Select("notices.notice_id, notices.title, notices.content, notices.event_date, notices.created_by, notices.status, notices.created_at, users.username AS author").
		Joins("LEFT JOIN users ON users.user_id = notices.created_by").
		Where("notices.notice_id = ?", notice.NoticeID).
		First(&stored).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notice")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Created notice: "+stored.Title, c.IP())
	}

	return helper.JsonCreated(c, "Notice created", stored)
}

// DELETE /api/admin/notices/:id
func (ctrl *NoticeController) DeleteNotice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}

	var notice model.NoticeModel
	if err := ctrl.DB.First(&notice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notice")
	}

	if err := ctrl.DB.Delete(&notice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notice")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Deleted notice: "+notice.Title, c.IP())
	}

	return helper.JsonDeleted(c, "Notice deleted", fiber.Map{"notice_id": notice.NoticeID})
}

/* ===============================
   Public endpoints
=================================*/

// GET /api/public/news
func (ctrl *NoticeController) GetNews(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := ctrl.DB.Model(&model.NoticeModel{}).
		Where("status = ?", constants.NoticePublished).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}

	var rows []dto.NewsItem
	err := ctrl.DB.Model(&model.NoticeModel{}).
		Where("status = ?", constants.NoticePublished).
		Select("notice_id, title, content, event_date, created_at").
		Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}

	return helper.JsonList(c, "News fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/public/news/:id — published notices only; drafts 404.
func (ctrl *NoticeController) GetNewsDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid news id")
	}

	var row dto.NewsItem
	err = ctrl.DB.Model(&model.NoticeModel{}).
		Select("notice_id, title, content, event_date, created_at").
		Where("notice_id = ? AND status = ?", id, constants.NoticePublished).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "News item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news item")
	}

	return helper.JsonOK(c, "News item fetched", row)
}
