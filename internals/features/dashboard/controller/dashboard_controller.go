package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	activityModel "ncb_backend/internals/features/activity/model"
	eventModel "ncb_backend/internals/features/events/model"
	memberModel "ncb_backend/internals/features/members/model"
	noticeModel "ncb_backend/internals/features/notices/model"
	helper "ncb_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type recentActivity struct {
	LogID     uint      `json:"log_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Username  *string   `json:"username"`
}

// GET /api/admin/dashboard — the landing page counters plus the ten most
// recent activities and the next five upcoming events.
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	var totalMembers, totalEvents, totalNotices int64

	if err := ctrl.DB.Model(&memberModel.MemberModel{}).
		Where("status = ?", constants.StatusActive).
		Count(&totalMembers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}
	if err := ctrl.DB.Model(&eventModel.EventModel{}).Count(&totalEvents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}
	if err := ctrl.DB.Model(&noticeModel.NoticeModel{}).
		Where("status = ?", constants.NoticePublished).
		Count(&totalNotices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	var activities []recentActivity
	if err := ctrl.DB.Model(&activityModel.ActivityLogModel{}).
		Select("activity_logs.log_id, activity_logs.action, activity_logs.timestamp, users.username").
		Joins("LEFT JOIN users ON users.user_id = activity_logs.user_id").
		Order("activity_logs.timestamp DESC").
		Limit(10).
		Scan(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	var upcoming []eventModel.EventModel
	if err := ctrl.DB.
		Where("status = ? AND start_date > ?", constants.EventUpcoming, time.Now()).
		Order("start_date ASC").
		Limit(5).
		Find(&upcoming).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	return helper.JsonOK(c, "Dashboard fetched", fiber.Map{
		"total_members":     totalMembers,
		"total_events":      totalEvents,
		"total_notices":     totalNotices,
		"recent_activities": activities,
		"upcoming_events":   upcoming,
	})
}
