package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/gallery/dto"
	"ncb_backend/internals/features/gallery/model"
	helper "ncb_backend/internals/helpers"
	"ncb_backend/internals/helpers/cache"
	"ncb_backend/internals/helpers/storage"
	authMw "ncb_backend/internals/middlewares/auth"
)

const publicGalleryCacheKey = "public_gallery"

type GalleryController struct {
	DB    *gorm.DB
	Store *storage.Store
	Cache *cache.Cache
}

func NewGalleryController(db *gorm.DB, store *storage.Store, c *cache.Cache) *GalleryController {
	return &GalleryController{DB: db, Store: store, Cache: c}
}

const gallerySelect = "image_gallery.image_id, image_gallery.title, image_gallery.description, image_gallery.image_path, image_gallery.uploaded_by, image_gallery.uploaded_at, image_gallery.related_event, image_gallery.related_member, users.username AS uploader, events.title AS event_title, members.full_name AS member_name"

/* ===============================
   Admin endpoints
=================================*/

// GET /api/admin/gallery
func (ctrl *GalleryController) GetImages(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.GalleryImageModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch gallery")
	}

	var rows []dto.GalleryItem
	err := ctrl.DB.Model(&model.GalleryImageModel{}).
		Select(gallerySelect).
		Joins("LEFT JOIN users ON users.user_id = image_gallery.uploaded_by").
		Joins("LEFT JOIN events ON events.event_id = image_gallery.related_event").
		Joins("LEFT JOIN members ON members.member_id = image_gallery.related_member").
		Order("image_gallery.uploaded_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch gallery")
	}

	return helper.JsonList(c, "Gallery fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/admin/gallery — multipart upload; the file is validated and
// stored before the row is written, and removed again if the insert fails.
func (ctrl *GalleryController) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file is required")
	}

	relPath, err := ctrl.Store.Save(fh, "gallery")
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Image exceeds the maximum upload size")
		case errors.Is(err, storage.ErrExtNotAllowed), errors.Is(err, storage.ErrContentMismatch):
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "File type is not allowed")
		default:
			log.Printf("[ERROR] gallery upload: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store image")
		}
	}

	image := model.GalleryImageModel{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		ImagePath:   relPath,
	}
	if v, err := strconv.Atoi(c.FormValue("related_event")); err == nil && v > 0 {
		id := uint(v)
		image.RelatedEvent = &id
	}
	if v, err := strconv.Atoi(c.FormValue("related_member")); err == nil && v > 0 {
		id := uint(v)
		image.RelatedMember = &id
	}
	if userID, ok := authMw.CurrentUserID(c); ok {
		image.UploadedBy = &userID
	}

	if err := ctrl.DB.Create(&image).Error; err != nil {
		if rmErr := ctrl.Store.Remove(relPath); rmErr != nil {
			log.Printf("[WARN] orphan upload cleanup: %v", rmErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save image")
	}

	ctrl.Cache.Delete(publicGalleryCacheKey)

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Uploaded gallery image: "+relPath, c.IP())
	}

	return helper.JsonCreated(c, "Image uploaded", image)
}

// DELETE /api/admin/gallery/:id — removes the row and the file.
func (ctrl *GalleryController) DeleteImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid image id")
	}

	var image model.GalleryImageModel
	if err := ctrl.DB.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete image")
	}

	if err := ctrl.DB.Delete(&image).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete image")
	}
	if err := ctrl.Store.Remove(image.ImagePath); err != nil {
		log.Printf("[WARN] delete gallery file: %v", err)
	}

	ctrl.Cache.Delete(publicGalleryCacheKey)

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Deleted gallery image: "+image.ImagePath, c.IP())
	}

	return helper.JsonDeleted(c, "Image deleted", fiber.Map{"image_id": image.ImageID})
}

/* ===============================
   Public endpoints
=================================*/

// GET /api/public/gallery — served from the filesystem cache when fresh.
func (ctrl *GalleryController) GetPublicGallery(c *fiber.Ctx) error {
	var rows []dto.PublicGalleryItem
	if ctrl.Cache.Get(publicGalleryCacheKey, &rows) {
		return helper.JsonOK(c, "Gallery fetched", rows)
	}

	err := ctrl.DB.Model(&model.GalleryImageModel{}).
		Select("image_gallery.image_id, image_gallery.title, image_gallery.description, image_gallery.image_path, image_gallery.uploaded_at, events.title AS event_title").
		Joins("LEFT JOIN events ON events.event_id = image_gallery.related_event").
		Order("image_gallery.uploaded_at DESC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch gallery")
	}
	for i := range rows {
		rows[i].URL = "/uploads/" + rows[i].ImagePath
	}

	ctrl.Cache.Set(publicGalleryCacheKey, rows)
	return helper.JsonOK(c, "Gallery fetched", rows)
}
