package model

import (
	"time"

	eventModel "ncb_backend/internals/features/events/model"
	memberModel "ncb_backend/internals/features/members/model"
	userModel "ncb_backend/internals/features/users/user/model"
)

type GalleryImageModel struct {
	ImageID       uint      `gorm:"column:image_id;primaryKey;autoIncrement"   json:"image_id"`
	Title         string    `gorm:"column:title;type:varchar(255)"             json:"title"`
	Description   string    `gorm:"column:description;type:text"               json:"description"`
	ImagePath     string    `gorm:"column:image_path;type:varchar(255);not null" json:"image_path"`
	UploadedBy    *uint     `gorm:"column:uploaded_by"                         json:"uploaded_by"`
	UploadedAt    time.Time `gorm:"column:uploaded_at;autoCreateTime"          json:"uploaded_at"`
	RelatedEvent  *uint     `gorm:"column:related_event"                       json:"related_event"`
	RelatedMember *uint     `gorm:"column:related_member"                      json:"related_member"`

	Uploader *userModel.UserModel     `gorm:"foreignKey:UploadedBy;references:UserID;constraint:OnDelete:SET NULL"      json:"-"`
	Event    *eventModel.EventModel   `gorm:"foreignKey:RelatedEvent;references:EventID;constraint:OnDelete:SET NULL"   json:"-"`
	Member   *memberModel.MemberModel `gorm:"foreignKey:RelatedMember;references:MemberID;constraint:OnDelete:SET NULL" json:"-"`
}

func (GalleryImageModel) TableName() string {
	return "image_gallery"
}
