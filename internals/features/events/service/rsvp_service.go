package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/events/model"
)

var ErrEventNotFound = errors.New("event not found")

// Rsvp increments the event's rsvp_count and returns the new count.
// Counts are unbounded and anonymous: no dedup, no capacity cutoff — the
// site shows spots_available hitting zero but keeps accepting interest.
func Rsvp(db *gorm.DB, eventID uint, ipAddress string) (int, error) {
	var count int

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.EventModel{}).
			Where("event_id = ?", eventID).
			Update("rsvp_count", gorm.Expr("rsvp_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEventNotFound
		}

		var event model.EventModel
		if err := tx.Select("event_id, title, rsvp_count").
			First(&event, eventID).Error; err != nil {
			return err
		}
		count = event.RsvpCount

		// Public RSVPs carry no actor.
		activityService.LogActivity(tx, nil,
			fmt.Sprintf("RSVP for event: %s (total %d)", event.Title, event.RsvpCount), ipAddress)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
