package model

import (
	"time"

	userModel "ncb_backend/internals/features/users/user/model"
)

// SessionModel holds only identity + expiry. Role and display fields are
// joined from the live user/member rows on every request, so a role change
// takes effect immediately instead of at the next login.
type SessionModel struct {
	SessionID uint      `gorm:"column:session_id;primaryKey;autoIncrement"     json:"session_id"`
	Token     string    `gorm:"column:token;type:varchar(64);uniqueIndex;not null" json:"token"`
	UserID    uint      `gorm:"column:user_id;not null"                        json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"               json:"created_at"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"                     json:"expires_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SessionModel) TableName() string {
	return "user_sessions"
}
