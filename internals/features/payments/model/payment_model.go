package model

import (
	"time"

	memberModel "ncb_backend/internals/features/members/model"
)

type PaymentModel struct {
	PaymentID     uint       `gorm:"column:payment_id;primaryKey;autoIncrement"     json:"payment_id"`
	MemberID      uint       `gorm:"column:member_id;not null"                      json:"member_id"`
	Amount        float64    `gorm:"column:amount;type:decimal(10,2);not null"      json:"amount"`
	PaymentDate   *time.Time `gorm:"column:payment_date"                            json:"payment_date"`
	PaymentMethod string     `gorm:"column:payment_method;type:varchar(50)"         json:"payment_method"`
	PaymentType   string     `gorm:"column:payment_type;type:varchar(50)"           json:"payment_type"`
	Description   string     `gorm:"column:description;type:text"                   json:"description"`
	Status        string     `gorm:"column:status;type:varchar(20);default:Pending" json:"status"`

	Member *memberModel.MemberModel `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
