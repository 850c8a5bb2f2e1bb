package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/features/activity/model"
	helper "ncb_backend/internals/helpers"
)

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// ActivityItem joins the acting user's username; anonymous rows keep it
// null.
type ActivityItem struct {
	LogID     uint      `json:"log_id"`
	UserID    *uint     `json:"user_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ip_address"`
	Username  *string   `json:"username"`
}

// GET /api/admin/activity-logs — newest first, optionally filtered by
// ?user_id=.
func (ctrl *ActivityController) GetLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var userFilter *uint
	if v := c.Query("user_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user_id filter")
		}
		id := uint(n)
		userFilter = &id
	}

	countQ := ctrl.DB.Model(&model.ActivityLogModel{})
	listQ := ctrl.DB.Model(&model.ActivityLogModel{})
	if userFilter != nil {
		countQ = countQ.Where("user_id = ?", *userFilter)
		listQ = listQ.Where("activity_logs.user_id = ?", *userFilter)
	}

	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity logs")
	}

	var rows []ActivityItem
	err := listQ.
		Select("activity_logs.log_id, activity_logs.user_id, activity_logs.action, activity_logs.timestamp, activity_logs.ip_address, users.username").
		Joins("LEFT JOIN users ON users.user_id = activity_logs.user_id").
		Order("activity_logs.timestamp DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity logs")
	}

	return helper.JsonList(c, "Activity logs fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}
