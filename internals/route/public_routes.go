package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationController "ncb_backend/internals/features/applications/controller"
	committeeController "ncb_backend/internals/features/committee/controller"
	eventController "ncb_backend/internals/features/events/controller"
	galleryController "ncb_backend/internals/features/gallery/controller"
	memberController "ncb_backend/internals/features/members/controller"
	noticeController "ncb_backend/internals/features/notices/controller"
	searchController "ncb_backend/internals/features/search/controller"
	"ncb_backend/internals/helpers/cache"
	"ncb_backend/internals/helpers/storage"
)

// PublicRoutes wires the marketing-site API. No authentication; the
// global rate limiter still applies.
func PublicRoutes(public fiber.Router, db *gorm.DB, store *storage.Store, fsCache *cache.Cache) {
	notices := noticeController.NewNoticeController(db)
	events := eventController.NewEventController(db)
	members := memberController.NewMemberController(db)
	gallery := galleryController.NewGalleryController(db, store, fsCache)
	committee := committeeController.NewCommitteeController(db)
	applications := applicationController.NewApplicationController(db, store)
	search := searchController.NewSearchController(db)

	public.Get("/news", notices.GetNews)
	public.Get("/news/:id", notices.GetNewsDetail)

	public.Get("/events", events.GetPublicEvents)
	public.Post("/rsvp", events.Rsvp)
	// GET kept as a manual-testing fallback.
	public.Get("/rsvp", events.Rsvp)

	public.Get("/members", members.GetPublicMembers)
	public.Get("/gallery", gallery.GetPublicGallery)

	public.Get("/committee", committee.GetCommittee)
	public.Get("/committee/:id", committee.GetCommitteeMember)
	public.Post("/committee", committee.CreateCommitteeMember)
	public.Put("/committee/:id", committee.UpdateCommitteeMember)
	public.Delete("/committee/:id", committee.DeleteCommitteeMember)

	public.Post("/applications", applications.SubmitApplication)

	public.Get("/search", search.Search)
}
