package dto

import "time"

type CreateEventRequest struct {
	Title           string `json:"title"            validate:"required,min=1,max=255"`
	Description     string `json:"description"      validate:"omitempty"`
	Location        string `json:"location"         validate:"omitempty,max=255"`
	StartDate       string `json:"start_date"       validate:"required"`
	EndDate         string `json:"end_date"         validate:"omitempty"`
	Status          string `json:"status"           validate:"omitempty,oneof=Upcoming Ongoing Completed Cancelled"`
	MaxParticipants int    `json:"max_participants" validate:"omitempty,min=1"`
}

type RsvpRequest struct {
	EventID uint `json:"event_id" validate:"required,min=1"`
}

// EventItem is the admin listing row with the organizer's name joined.
type EventItem struct {
	EventID         uint      `json:"event_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	OrganizedBy     *uint     `json:"organized_by"`
	Status          string    `json:"status"`
	RsvpCount       int       `json:"rsvp_count"`
	MaxParticipants int       `json:"max_participants"`
	Organizer       *string   `json:"organizer"`
}

// PublicEventItem adds the derived spots_available field.
type PublicEventItem struct {
	EventID         uint      `json:"event_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Status          string    `json:"status"`
	RsvpCount       int       `json:"rsvp_count"`
	MaxParticipants int       `json:"max_participants"`
	SpotsAvailable  int       `json:"spots_available"`
}
