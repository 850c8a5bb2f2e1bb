package model

import (
	"time"

	memberModel "ncb_backend/internals/features/members/model"
)

type UserModel struct {
	UserID    uint       `gorm:"column:user_id;primaryKey;autoIncrement"        json:"user_id"`
	Username  string     `gorm:"column:username;type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"column:email;type:varchar(255);uniqueIndex;not null"   json:"email"`
	Password  string     `gorm:"column:password;type:varchar(255);not null"     json:"-"`
	Role      string     `gorm:"column:role;type:varchar(20);default:Member"    json:"role"`
	MemberID  *uint      `gorm:"column:member_id"                               json:"member_id"`
	Status    string     `gorm:"column:status;type:varchar(20);default:Active"  json:"status"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"               json:"created_at"`
	LastLogin *time.Time `gorm:"column:last_login"                              json:"last_login"`

	Member *memberModel.MemberModel `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:SET NULL" json:"member,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
