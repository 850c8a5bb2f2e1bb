package dto

import "time"

type CreateNoticeRequest struct {
	Title     string `json:"title"      validate:"required,min=1,max=255"`
	Content   string `json:"content"    validate:"required"`
	EventDate string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
}

// NoticeItem is the admin listing row: the notice plus its author's
// username resolved through a join.
type NoticeItem struct {
	NoticeID  uint       `json:"notice_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	EventDate *time.Time `json:"event_date"`
	CreatedBy *uint      `json:"created_by"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	Author    *string    `json:"author"`
}

// NewsItem is the public shape: published notices only, no author id.
type NewsItem struct {
	NoticeID  uint       `json:"notice_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	EventDate *time.Time `json:"event_date"`
	CreatedAt time.Time  `json:"created_at"`
}
