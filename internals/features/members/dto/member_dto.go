package dto

import "time"

type CreateMemberRequest struct {
	FullName       string `json:"full_name"       validate:"required,min=1,max=255"`
	Email          string `json:"email"           validate:"omitempty,email"`
	Phone          string `json:"phone"           validate:"omitempty,max=50"`
	Address        string `json:"address"         validate:"omitempty"`
	Designation    string `json:"designation"     validate:"omitempty,max=100"`
	MembershipType string `json:"membership_type" validate:"omitempty,max=50"`
	JoinedDate     string `json:"joined_date"     validate:"omitempty,datetime=2006-01-02"`
}

// PublicMemberItem exposes only directory-safe fields, with the member's
// current committee role joined in when they hold one.
type PublicMemberItem struct {
	MemberID     uint      `json:"member_id"`
	FullName     string    `json:"full_name"`
	Designation  string    `json:"designation"`
	ProfileImage string    `json:"profile_image"`
	JoinedDate   time.Time `json:"joined_date"`
	RoleTitle    *string   `json:"role_title"`
}
