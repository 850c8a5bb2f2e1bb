package dto

import "time"

type CreateCommitteeMemberRequest struct {
	FullName      string `json:"full_name"      validate:"required,min=1,max=255"`
	Email         string `json:"email"          validate:"omitempty,email"`
	Phone         string `json:"phone"          validate:"omitempty,max=50"`
	Designation   string `json:"designation"    validate:"omitempty,max=100"`
	RoleTitle     string `json:"role_title"     validate:"required,min=1,max=100"`
	CommitteeType string `json:"committee_type" validate:"omitempty,oneof=Founder Executive Associate"`
}

type UpdateCommitteeMemberRequest struct {
	FullName      *string `json:"full_name"      validate:"omitempty,min=1,max=255"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Phone         *string `json:"phone"          validate:"omitempty,max=50"`
	Designation   *string `json:"designation"    validate:"omitempty,max=100"`
	RoleTitle     *string `json:"role_title"     validate:"omitempty,min=1,max=100"`
	CommitteeType *string `json:"committee_type" validate:"omitempty,oneof=Founder Executive Associate"`
}

// CommitteeItem is the joined row used by both the admin and the public
// listings.
type CommitteeItem struct {
	RoleID        uint       `json:"role_id"`
	MemberID      uint       `json:"member_id"`
	RoleTitle     string     `json:"role_title"`
	CommitteeType string     `json:"committee_type"`
	Status        string     `json:"status"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Designation   string     `json:"designation"`
	ProfileImage  string     `json:"profile_image"`
}
