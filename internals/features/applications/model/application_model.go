package model

import (
	"time"

	"gorm.io/datatypes"
)

type MembershipApplicationModel struct {
	ApplicationID     uint           `gorm:"column:application_id;primaryKey;autoIncrement" json:"application_id"`
	FullName          string         `gorm:"column:full_name;type:varchar(255);not null"    json:"full_name"`
	Email             string         `gorm:"column:email;type:varchar(255);not null"        json:"email"`
	Phone             string         `gorm:"column:phone;type:varchar(50);not null"         json:"phone"`
	University        string         `gorm:"column:university;type:varchar(255)"            json:"university"`
	VisaType          string         `gorm:"column:visa_type;type:varchar(50);not null"     json:"visa_type"`
	OtherVisa         string         `gorm:"column:other_visa;type:varchar(50)"             json:"other_visa"`
	ArrivalDate       *time.Time     `gorm:"column:arrival_date"                            json:"arrival_date"`
	TransactionID     string         `gorm:"column:transaction_id;type:varchar(100);not null;index" json:"transaction_id"`
	PaymentScreenshot string         `gorm:"column:payment_screenshot;type:varchar(255)"    json:"payment_screenshot"`
	Interests         datatypes.JSON `gorm:"column:interests"                               json:"interests"`
	ApplicationDate   time.Time      `gorm:"column:application_date;autoCreateTime"         json:"application_date"`
	Status            string         `gorm:"column:status;type:varchar(20);default:pending;index" json:"status"`

	// Human-facing membership number ("NCB" + 2-digit year + 4 digits),
	// distinct from the members table surrogate key.
	MemberID string `gorm:"column:member_id;type:varchar(20);uniqueIndex;not null" json:"member_id"`

	IPAddress       string     `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	Notes           string     `gorm:"column:notes;type:text"             json:"notes"`
	RejectionReason string     `gorm:"column:rejection_reason;type:text"  json:"rejection_reason"`
	VerifiedDate    *time.Time `gorm:"column:verified_date"               json:"verified_date"`
	RejectedDate    *time.Time `gorm:"column:rejected_date"               json:"rejected_date"`
}

func (MembershipApplicationModel) TableName() string {
	return "membership_applications"
}
