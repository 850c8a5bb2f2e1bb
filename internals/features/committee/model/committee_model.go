package model

import (
	"time"

	memberModel "ncb_backend/internals/features/members/model"
)

type CommitteeRoleModel struct {
	RoleID        uint       `gorm:"column:role_id;primaryKey;autoIncrement"        json:"role_id"`
	MemberID      uint       `gorm:"column:member_id;not null"                      json:"member_id"`
	RoleTitle     string     `gorm:"column:role_title;type:varchar(100);not null"   json:"role_title"`
	CommitteeType string     `gorm:"column:committee_type;type:varchar(20);default:Associate" json:"committee_type"`
	Status        string     `gorm:"column:status;type:varchar(20);default:Active"  json:"status"`
	StartDate     *time.Time `gorm:"column:start_date"                              json:"start_date"`
	EndDate       *time.Time `gorm:"column:end_date"                                json:"end_date"`

	Member *memberModel.MemberModel `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommitteeRoleModel) TableName() string {
	return "committee_roles"
}
