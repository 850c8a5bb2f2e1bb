package service

import (
	"log"

	"gorm.io/gorm"

	"ncb_backend/internals/features/activity/model"
)

// LogActivity records one audit row. Best-effort: a logging failure must
// never fail the operation being logged, so errors only hit the app log.
func LogActivity(db *gorm.DB, userID *uint, action, ipAddress string) {
	entry := model.ActivityLogModel{
		UserID:    userID,
		Action:    action,
		IPAddress: ipAddress,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[WARN] activity log failed (%s): %v", action, err)
	}
}
