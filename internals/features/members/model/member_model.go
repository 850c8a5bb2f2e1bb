package model

import "time"

type MemberModel struct {
	MemberID       uint      `gorm:"column:member_id;primaryKey;autoIncrement"           json:"member_id"`
	FullName       string    `gorm:"column:full_name;type:varchar(255);not null"         json:"full_name"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex"          json:"email"`
	Phone          string    `gorm:"column:phone;type:varchar(50)"                       json:"phone"`
	Address        string    `gorm:"column:address;type:text"                            json:"address"`
	Designation    string    `gorm:"column:designation;type:varchar(100)"                json:"designation"`
	MembershipType string    `gorm:"column:membership_type;type:varchar(50);default:General" json:"membership_type"`
	ProfileImage   string    `gorm:"column:profile_image;type:varchar(255)"              json:"profile_image"`
	JoinedDate     time.Time `gorm:"column:joined_date"                                  json:"joined_date"`
	Status         string    `gorm:"column:status;type:varchar(20);default:Active"       json:"status"`
}

func (MemberModel) TableName() string {
	return "members"
}
