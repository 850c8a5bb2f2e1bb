package model

import (
	"time"

	userModel "ncb_backend/internals/features/users/user/model"
)

type NoticeModel struct {
	NoticeID  uint       `gorm:"column:notice_id;primaryKey;autoIncrement"      json:"notice_id"`
	Title     string     `gorm:"column:title;type:varchar(255);not null"        json:"title"`
	Content   string     `gorm:"column:content;type:text"                       json:"content"`
	EventDate *time.Time `gorm:"column:event_date"                              json:"event_date"`
	CreatedBy *uint      `gorm:"column:created_by"                              json:"created_by"`
	Status    string     `gorm:"column:status;type:varchar(20);default:Draft"   json:"status"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"               json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"               json:"updated_at"`

	Author *userModel.UserModel `gorm:"foreignKey:CreatedBy;references:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (NoticeModel) TableName() string {
	return "notices"
}
