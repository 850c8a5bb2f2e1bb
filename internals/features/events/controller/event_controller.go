package controller

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/events/dto"
	"ncb_backend/internals/features/events/model"
	eventService "ncb_backend/internals/features/events/service"
	helper "ncb_backend/internals/helpers"
	authMw "ncb_backend/internals/middlewares/auth"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// Accepted datetime layouts for event dates, most specific first.
var eventDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventDate(value string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

/* ===============================
   Admin endpoints
=================================*/

// GET /api/admin/events — newest first, organizer name joined in.
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	var rows []dto.EventItem
	err := ctrl.DB.Model(&model.EventModel{}).
		Select("events.event_id, events.title, events.description, events.location, events.start_date, events.end_date, events.organized_by, events.status, events.rsvp_count, events.max_participants, members.full_name AS organizer").
		Joins("LEFT JOIN members ON members.member_id = events.organized_by").
		Order("events.start_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	return helper.JsonList(c, "Events fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/admin/events — the caller's linked member becomes the
// organizer when none is given.
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	startDate, err := parseEventDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start_date")
	}
	endDate := startDate
	if req.EndDate != "" {
		if endDate, err = parseEventDate(req.EndDate); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end_date")
		}
	}

	event := model.EventModel{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      constants.EventUpcoming,
	}
	if req.Status != "" {
		event.Status = req.Status
	}
	if req.MaxParticipants > 0 {
		event.MaxParticipants = req.MaxParticipants
	} else {
		event.MaxParticipants = 100
	}
	if memberID, ok := authMw.CurrentMemberID(c); ok {
		event.OrganizedBy = &memberID
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	var stored model.EventModel
	if err := ctrl.DB.First(&stored, event.EventID).Error; err != nil {
		stored = event
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Created event: "+stored.Title, c.IP())
	}

	return helper.JsonCreated(c, "Event created", stored)
}

// DELETE /api/admin/events/:id
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	if err := ctrl.DB.Delete(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Deleted event: "+event.Title, c.IP())
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": event.EventID})
}

/* ===============================
   Public endpoints
=================================*/

// GET /api/public/events — upcoming and ongoing events; when none exist
// the full list is returned so the site never shows an empty page.
func (ctrl *EventController) GetPublicEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	err := ctrl.DB.
		Where("status IN ?", []string{constants.EventUpcoming, constants.EventOngoing}).
		Order("start_date ASC").
		Find(&events).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	if len(events) == 0 {
		if err := ctrl.DB.Order("start_date DESC").Find(&events).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
		}
	}

	rows := make([]dto.PublicEventItem, 0, len(events))
	for _, e := range events {
		spots := e.MaxParticipants - e.RsvpCount
		if spots < 0 {
			spots = 0
		}
		rows = append(rows, dto.PublicEventItem{
			EventID:         e.EventID,
			Title:           e.Title,
			Description:     e.Description,
			Location:        e.Location,
			StartDate:       e.StartDate,
			EndDate:         e.EndDate,
			Status:          e.Status,
			RsvpCount:       e.RsvpCount,
			MaxParticipants: e.MaxParticipants,
			SpotsAvailable:  spots,
		})
	}

	return helper.JsonOK(c, "Events fetched", rows)
}

// POST /api/public/rsvp
func (ctrl *EventController) Rsvp(c *fiber.Ctx) error {
	var req dto.RsvpRequest
	if err := c.BodyParser(&req); err != nil || req.EventID == 0 {
		// GET-with-query fallback kept for easy manual testing.
		if v, convErr := strconv.Atoi(c.Query("event_id")); convErr == nil && v > 0 {
			req.EventID = uint(v)
		} else {
			return helper.JsonError(c, fiber.StatusBadRequest, "event_id is required")
		}
	}

	count, err := eventService.Rsvp(ctrl.DB, req.EventID, c.IP())
	if err != nil {
		if errors.Is(err, eventService.ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "RSVP failed")
	}

	return helper.JsonOK(c, "RSVP recorded", fiber.Map{
		"event_id":   req.EventID,
		"rsvp_count": count,
	})
}
