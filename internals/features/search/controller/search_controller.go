package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	committeeModel "ncb_backend/internals/features/committee/model"
	eventModel "ncb_backend/internals/features/events/model"
	galleryModel "ncb_backend/internals/features/gallery/model"
	memberModel "ncb_backend/internals/features/members/model"
	noticeModel "ncb_backend/internals/features/notices/model"
	helper "ncb_backend/internals/helpers"
)

type SearchController struct {
	DB *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{DB: db}
}

// SearchResult is one hit; Type tags which collection it came from.
type SearchResult struct {
	Type    string `json:"type"`
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

const perCollectionLimit = 5

func snippet(s string) string {
	const max = 160
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// GET /api/public/search?q= — case-insensitive substring match across
// news, events, gallery, members and committee, capped per collection.
func (ctrl *SearchController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Search query is required")
	}
	pattern := "%" + strings.ToLower(q) + "%"

	results := make([]SearchResult, 0, 5*perCollectionLimit)

	var notices []noticeModel.NoticeModel
	if err := ctrl.DB.
		Where("status = ? AND (LOWER(title) LIKE ? OR LOWER(content) LIKE ?)",
			constants.NoticePublished, pattern, pattern).
		Order("created_at DESC").
		Limit(perCollectionLimit).
		Find(&notices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, n := range notices {
		results = append(results, SearchResult{
			Type: "news", ID: n.NoticeID, Title: n.Title, Snippet: snippet(n.Content),
		})
	}

	var events []eventModel.EventModel
	if err := ctrl.DB.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("start_date DESC").
		Limit(perCollectionLimit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, e := range events {
		results = append(results, SearchResult{
			Type: "event", ID: e.EventID, Title: e.Title, Snippet: snippet(e.Description),
		})
	}

	var images []galleryModel.GalleryImageModel
	if err := ctrl.DB.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("uploaded_at DESC").
		Limit(perCollectionLimit).
		Find(&images).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, img := range images {
		results = append(results, SearchResult{
			Type: "gallery", ID: img.ImageID, Title: img.Title, Snippet: snippet(img.Description),
		})
	}

	var members []memberModel.MemberModel
	if err := ctrl.DB.
		Where("status = ? AND (LOWER(full_name) LIKE ? OR LOWER(designation) LIKE ?)",
			constants.StatusActive, pattern, pattern).
		Limit(perCollectionLimit).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, m := range members {
		results = append(results, SearchResult{
			Type: "member", ID: m.MemberID, Title: m.FullName, Snippet: snippet(m.Designation),
		})
	}

	var roles []struct {
		RoleID    uint
		RoleTitle string
		FullName  string
	}
	if err := ctrl.DB.Model(&committeeModel.CommitteeRoleModel{}).
		Select("committee_roles.role_id, committee_roles.role_title, members.full_name").
		Joins("JOIN members ON members.member_id = committee_roles.member_id").
		Where("committee_roles.status = ? AND (LOWER(committee_roles.role_title) LIKE ? OR LOWER(members.full_name) LIKE ?)",
			constants.StatusActive, pattern, pattern).
		Limit(perCollectionLimit).
		Scan(&roles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, r := range roles {
		results = append(results, SearchResult{
			Type: "committee", ID: r.RoleID, Title: r.FullName, Snippet: snippet(r.RoleTitle),
		})
	}

	return helper.JsonOK(c, "Search completed", fiber.Map{
		"query":   q,
		"results": results,
	})
}
