package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncb_backend/internals/constants"
	activityModel "ncb_backend/internals/features/activity/model"
	eventModel "ncb_backend/internals/features/events/model"
	"ncb_backend/internals/features/events/service"
	"ncb_backend/internals/testutils"
)

func TestRsvpIncrements(t *testing.T) {
	db := testutils.NewTestDB(t)

	event := eventModel.EventModel{
		Title:           "Picnic",
		StartDate:       time.Now().Add(48 * time.Hour),
		EndDate:         time.Now().Add(52 * time.Hour),
		Status:          constants.EventUpcoming,
		MaxParticipants: 100,
	}
	require.NoError(t, db.Create(&event).Error)

	count, err := service.Rsvp(db, event.EventID, "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = service.Rsvp(db, event.EventID, "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var stored eventModel.EventModel
	require.NoError(t, db.First(&stored, event.EventID).Error)
	assert.Equal(t, 2, stored.RsvpCount)

	// Each RSVP logs an anonymous activity row.
	var logs []activityModel.ActivityLogModel
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Nil(t, logs[0].UserID)
	assert.Equal(t, "203.0.113.9", logs[0].IPAddress)
}

func TestRsvpKeepsCountingPastCapacity(t *testing.T) {
	db := testutils.NewTestDB(t)

	event := eventModel.EventModel{
		Title:           "Tiny workshop",
		StartDate:       time.Now().Add(24 * time.Hour),
		EndDate:         time.Now().Add(26 * time.Hour),
		Status:          constants.EventUpcoming,
		MaxParticipants: 2,
	}
	require.NoError(t, db.Create(&event).Error)

	// Interest is unbounded; the count may exceed max_participants.
	for i := 0; i < 3; i++ {
		_, err := service.Rsvp(db, event.EventID, "198.51.100.1")
		require.NoError(t, err)
	}

	var stored eventModel.EventModel
	require.NoError(t, db.First(&stored, event.EventID).Error)
	assert.Equal(t, 3, stored.RsvpCount)
}

func TestRsvpUnknownEvent(t *testing.T) {
	db := testutils.NewTestDB(t)

	_, err := service.Rsvp(db, 9999, "198.51.100.1")
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}
