package model

import (
	"time"

	userModel "ncb_backend/internals/features/users/user/model"
)

// UserID is nullable: anonymous actions (public RSVPs) log without an
// actor.
type ActivityLogModel struct {
	LogID     uint      `gorm:"column:log_id;primaryKey;autoIncrement" json:"log_id"`
	UserID    *uint     `gorm:"column:user_id"                         json:"user_id"`
	Action    string    `gorm:"column:action;type:text"                json:"action"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime"        json:"timestamp"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45)"     json:"ip_address"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
