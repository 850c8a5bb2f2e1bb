package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/configs"
	"ncb_backend/internals/constants"
	activityController "ncb_backend/internals/features/activity/controller"
	applicationController "ncb_backend/internals/features/applications/controller"
	bannerController "ncb_backend/internals/features/banners/controller"
	committeeController "ncb_backend/internals/features/committee/controller"
	dashboardController "ncb_backend/internals/features/dashboard/controller"
	eventController "ncb_backend/internals/features/events/controller"
	galleryController "ncb_backend/internals/features/gallery/controller"
	memberController "ncb_backend/internals/features/members/controller"
	noticeController "ncb_backend/internals/features/notices/controller"
	paymentController "ncb_backend/internals/features/payments/controller"
	authController "ncb_backend/internals/features/users/auth/controller"
	userController "ncb_backend/internals/features/users/user/controller"
	"ncb_backend/internals/helpers/cache"
	"ncb_backend/internals/helpers/storage"
	middlewares "ncb_backend/internals/middlewares"
	authMw "ncb_backend/internals/middlewares/auth"
)

// AdminRoutes wires the dashboard API. Everything except login and
// logout sits behind SessionAuth; role gates are applied per group.
func AdminRoutes(admin fiber.Router, db *gorm.DB, cfg *configs.Config, store *storage.Store, fsCache *cache.Cache) {
	auth := authController.NewAuthController(db, cfg)
	notices := noticeController.NewNoticeController(db)
	events := eventController.NewEventController(db)
	members := memberController.NewMemberController(db)
	users := userController.NewUserController(db)
	gallery := galleryController.NewGalleryController(db, store, fsCache)
	banners := bannerController.NewBannerController(db, store)
	committee := committeeController.NewCommitteeController(db)
	applications := applicationController.NewApplicationController(db, store)
	payments := paymentController.NewPaymentController(db)
	dashboard := dashboardController.NewDashboardController(db)
	activity := activityController.NewActivityController(db)

	admin.Post("/login", middlewares.LoginRateLimiter(), auth.Login)
	// Logout succeeds no matter what token (if any) arrives, so it sits
	// outside the session gate.
	admin.Post("/logout", auth.Logout)

	protected := admin.Group("", authMw.SessionAuth(db))

	staff := protected.Group("", authMw.OnlyRoles("Admin access required", constants.AdminAndAbove...))

	staff.Get("/dashboard", dashboard.GetDashboard)

	staff.Get("/notices", notices.GetNotices)
	staff.Post("/notices", notices.CreateNotice)
	staff.Delete("/notices/:id", notices.DeleteNotice)

	staff.Get("/events", events.GetEvents)
	staff.Post("/events", events.CreateEvent)
	staff.Delete("/events/:id", events.DeleteEvent)

	staff.Get("/members", members.GetMembers)
	staff.Post("/members", members.CreateMember)

	staff.Get("/users", users.GetUsers)
	staff.Get("/admins", users.GetAdmins)
	protected.Post("/admins",
		authMw.OnlyRoles("Only a Super Admin can create admin accounts", constants.SuperAdminOnly...),
		users.CreateAdmin)

	staff.Get("/gallery", gallery.GetImages)
	staff.Post("/gallery", gallery.UploadImage)
	staff.Delete("/gallery/:id", gallery.DeleteImage)

	staff.Get("/banners", banners.GetBanners)
	staff.Post("/banners", banners.UploadBanner)
	staff.Put("/banners/:id", banners.UpdateBanner)
	staff.Delete("/banners/:id", banners.DeleteBanner)

	staff.Get("/committee", committee.GetCommittee)

	staff.Get("/membership-applications", applications.GetApplications)
	staff.Post("/membership-applications", applications.CreateApplication)
	staff.Put("/membership-applications/:id", applications.UpdateApplication)

	staff.Get("/payments", payments.GetPayments)
	staff.Get("/activity-logs", activity.GetLogs)
}
