package model

import (
	"time"

	memberModel "ncb_backend/internals/features/members/model"
)

type EventModel struct {
	EventID     uint      `gorm:"column:event_id;primaryKey;autoIncrement"       json:"event_id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"        json:"title"`
	Description string    `gorm:"column:description;type:text"                   json:"description"`
	Location    string    `gorm:"column:location;type:varchar(255)"              json:"location"`
	StartDate   time.Time `gorm:"column:start_date"                              json:"start_date"`
	EndDate     time.Time `gorm:"column:end_date"                                json:"end_date"`
	OrganizedBy *uint     `gorm:"column:organized_by"                            json:"organized_by"`
	Status      string    `gorm:"column:status;type:varchar(20);default:Upcoming" json:"status"`

	// Provisioned by migration, never by a runtime ALTER.
	RsvpCount       int `gorm:"column:rsvp_count;not null;default:0"           json:"rsvp_count"`
	MaxParticipants int `gorm:"column:max_participants;not null;default:100"   json:"max_participants"`

	Organizer *memberModel.MemberModel `gorm:"foreignKey:OrganizedBy;references:MemberID;constraint:OnDelete:SET NULL" json:"-"`
}

func (EventModel) TableName() string {
	return "events"
}
