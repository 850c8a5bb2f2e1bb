package dto

import (
	"time"

	userModel "ncb_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	UserID    uint       `json:"user_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	MemberID  *uint      `json:"member_id"`
	FullName  string     `json:"full_name"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"last_login"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      LoginUser `json:"user"`
}

func ToLoginUser(u *userModel.UserModel) LoginUser {
	out := LoginUser{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		MemberID:  u.MemberID,
		Status:    u.Status,
		LastLogin: u.LastLogin,
	}
	if u.Member != nil {
		out.FullName = u.Member.FullName
	}
	return out
}
