package dto

import "time"

type UpdateBannerRequest struct {
	Title  *string `json:"title"  validate:"omitempty,min=1,max=255"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// BannerItem is the listing row with the uploader's username joined.
type BannerItem struct {
	BannerID   uint      `json:"banner_id"`
	Title      string    `json:"title"`
	ImagePath  string    `json:"image_path"`
	Status     string    `json:"status"`
	UploadedBy *uint     `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
	Uploader   *string   `json:"uploader"`
}
