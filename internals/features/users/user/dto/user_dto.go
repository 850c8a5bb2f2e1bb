package dto

import "time"

type CreateAdminRequest struct {
	Username string `json:"username"  validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Phone    string `json:"phone"     validate:"omitempty,max=50"`
	Role     string `json:"role"      validate:"omitempty,oneof=Admin 'Super Admin'"`
	MemberID *uint  `json:"member_id" validate:"omitempty,min=1"`
}

// UserItem is the listing row; the password hash never leaves the model.
type UserItem struct {
	UserID    uint       `json:"user_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	MemberID  *uint      `json:"member_id"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
	FullName  *string    `json:"full_name"`
}
