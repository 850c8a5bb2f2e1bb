package database

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ncb_backend/internals/configs"
	"ncb_backend/internals/constants"
	activityModel "ncb_backend/internals/features/activity/model"
	applicationModel "ncb_backend/internals/features/applications/model"
	bannerModel "ncb_backend/internals/features/banners/model"
	committeeModel "ncb_backend/internals/features/committee/model"
	eventModel "ncb_backend/internals/features/events/model"
	galleryModel "ncb_backend/internals/features/gallery/model"
	memberModel "ncb_backend/internals/features/members/model"
	noticeModel "ncb_backend/internals/features/notices/model"
	paymentModel "ncb_backend/internals/features/payments/model"
	authModel "ncb_backend/internals/features/users/auth/model"
	userModel "ncb_backend/internals/features/users/user/model"
)

// Migrate runs the whole schema once at startup. Request handlers never
// touch the schema (no probe-create, no runtime ALTER).
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] Running migrations...")
	return db.AutoMigrate(
		&memberModel.MemberModel{},
		&userModel.UserModel{},
		&authModel.SessionModel{},
		&committeeModel.CommitteeRoleModel{},
		&activityModel.ActivityLogModel{},
		&eventModel.EventModel{},
		&noticeModel.NoticeModel{},
		&galleryModel.GalleryImageModel{},
		&bannerModel.BannerModel{},
		&applicationModel.MembershipApplicationModel{},
		&paymentModel.PaymentModel{},
	)
}

// SeedSuperAdmin creates the first login when the users table is empty.
// Skipped when SEED_ADMIN_PASSWORD is unset.
func SeedSuperAdmin(db *gorm.DB, cfg *configs.Config) error {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || cfg.SeedAdminPassword == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	member := memberModel.MemberModel{
		FullName:   cfg.SeedAdminUsername,
		Email:      cfg.SeedAdminEmail,
		JoinedDate: time.Now(),
		Status:     constants.StatusActive,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		user := userModel.UserModel{
			Username: cfg.SeedAdminUsername,
			Email:    cfg.SeedAdminEmail,
			Password: string(hash),
			Role:     constants.RoleSuperAdmin,
			MemberID: &member.MemberID,
			Status:   constants.StatusActive,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("[INFO] Seeded super admin %q", user.Email)
		return nil
	})
}
