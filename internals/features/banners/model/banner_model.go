package model

import (
	"time"

	userModel "ncb_backend/internals/features/users/user/model"
)

// At most one banner is "active" at a time; activation deactivates the
// rest inside one transaction (policy, not a uniqueness constraint).
type BannerModel struct {
	BannerID   uint      `gorm:"column:banner_id;primaryKey;autoIncrement"      json:"banner_id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null"        json:"title"`
	ImagePath  string    `gorm:"column:image_path;type:varchar(255);not null"   json:"image_path"`
	Status     string    `gorm:"column:status;type:varchar(20);default:inactive" json:"status"`
	UploadedBy *uint     `gorm:"column:uploaded_by"                             json:"uploaded_by"`
	UploadedAt time.Time `gorm:"column:uploaded_at;autoCreateTime"              json:"uploaded_at"`

	Uploader *userModel.UserModel `gorm:"foreignKey:UploadedBy;references:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (BannerModel) TableName() string {
	return "banners"
}
