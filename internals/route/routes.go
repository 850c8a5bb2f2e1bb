package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/configs"
	"ncb_backend/internals/helpers/cache"
	"ncb_backend/internals/helpers/storage"
)

// SetupRoutes mounts the admin and public API groups and the uploads
// static directory.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	store := storage.New(cfg.UploadDir, cfg.MaxUploadSize, cfg.AllowedExts)
	fsCache := cache.New(cfg.CacheDir, cfg.CacheTTL)

	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")
	AdminRoutes(api.Group("/admin"), db, cfg, store, fsCache)
	PublicRoutes(api.Group("/public"), db, store, fsCache)
}
