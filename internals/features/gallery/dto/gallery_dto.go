package dto

import "time"

// GalleryItem joins the uploader's username and the related event title
// onto the image row.
type GalleryItem struct {
	ImageID       uint      `json:"image_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImagePath     string    `json:"image_path"`
	UploadedBy    *uint     `json:"uploaded_by"`
	UploadedAt    time.Time `json:"uploaded_at"`
	RelatedEvent  *uint     `json:"related_event"`
	RelatedMember *uint     `json:"related_member"`
	Uploader      *string   `json:"uploader"`
	EventTitle    *string   `json:"event_title"`
	MemberName    *string   `json:"member_name"`
}

// PublicGalleryItem is the cached public shape; URL is derived from the
// stored relative path.
type PublicGalleryItem struct {
	ImageID     uint      `json:"image_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	URL         string    `json:"url"`
	UploadedAt  time.Time `json:"uploaded_at"`
	EventTitle  *string   `json:"event_title"`
}
