package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/banners/dto"
	"ncb_backend/internals/features/banners/model"
	helper "ncb_backend/internals/helpers"
	"ncb_backend/internals/helpers/storage"
	authMw "ncb_backend/internals/middlewares/auth"
)

type BannerController struct {
	DB    *gorm.DB
	Store *storage.Store
}

func NewBannerController(db *gorm.DB, store *storage.Store) *BannerController {
	return &BannerController{DB: db, Store: store}
}

// GET /api/admin/banners — active first, then newest.
func (ctrl *BannerController) GetBanners(c *fiber.Ctx) error {
	var banners []dto.BannerItem
	err := ctrl.DB.Model(&model.BannerModel{}).
		Select("banners.banner_id, banners.title, banners.image_path, banners.status, banners.uploaded_by, banners.uploaded_at, users.username AS uploader").
		Joins("LEFT JOIN users ON users.user_id = banners.uploaded_by").
		Order("CASE WHEN banners.status = 'active' THEN 0 ELSE 1 END, banners.uploaded_at DESC").
		Scan(&banners).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch banners")
	}
	return helper.JsonOK(c, "Banners fetched", banners)
}

// POST /api/admin/banners — multipart upload; new banners start inactive.
func (ctrl *BannerController) UploadBanner(c *fiber.Ctx) error {
	title := c.FormValue("title")
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title is required")
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Banner image is required")
	}

	relPath, err := ctrl.Store.Save(fh, "banners")
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Image exceeds the maximum upload size")
		case errors.Is(err, storage.ErrExtNotAllowed), errors.Is(err, storage.ErrContentMismatch):
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "File type is not allowed")
		default:
			log.Printf("[ERROR] banner upload: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store banner")
		}
	}

	banner := model.BannerModel{
		Title:     title,
		ImagePath: relPath,
		Status:    constants.BannerInactive,
	}
	if userID, ok := authMw.CurrentUserID(c); ok {
		banner.UploadedBy = &userID
	}

	if err := ctrl.DB.Create(&banner).Error; err != nil {
		if rmErr := ctrl.Store.Remove(relPath); rmErr != nil {
			log.Printf("[WARN] orphan upload cleanup: %v", rmErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save banner")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Uploaded banner: "+banner.Title, c.IP())
	}

	return helper.JsonCreated(c, "Banner uploaded", banner)
}

// PUT /api/admin/banners/:id — partial update. Activating a banner
// deactivates every other banner inside the same transaction, so at most
// one is ever active.
func (ctrl *BannerController) UpdateBanner(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid banner id")
	}

	var req dto.UpdateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Title == nil && req.Status == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	var banner model.BannerModel
	if err := ctrl.DB.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Banner not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update banner")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Status != nil {
			if *req.Status == constants.BannerActive {
				if err := tx.Model(&model.BannerModel{}).
					Where("banner_id <> ?", banner.BannerID).
					Update("status", constants.BannerInactive).Error; err != nil {
					return err
				}
			}
			updates["status"] = *req.Status
		}
		return tx.Model(&banner).Updates(updates).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update banner")
	}

	var stored model.BannerModel
	if err := ctrl.DB.First(&stored, banner.BannerID).Error; err != nil {
		stored = banner
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Updated banner: "+stored.Title, c.IP())
	}

	return helper.JsonUpdated(c, "Banner updated", stored)
}

// DELETE /api/admin/banners/:id — removes the row and the file.
func (ctrl *BannerController) DeleteBanner(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid banner id")
	}

	var banner model.BannerModel
	if err := ctrl.DB.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Banner not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete banner")
	}

	if err := ctrl.DB.Delete(&banner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete banner")
	}
	if err := ctrl.Store.Remove(banner.ImagePath); err != nil {
		log.Printf("[WARN] delete banner file: %v", err)
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Deleted banner: "+banner.Title, c.IP())
	}

	return helper.JsonDeleted(c, "Banner deleted", fiber.Map{"banner_id": banner.BannerID})
}
