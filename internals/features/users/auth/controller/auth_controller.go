package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ncb_backend/internals/configs"
	"ncb_backend/internals/constants"
	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/users/auth/dto"
	authService "ncb_backend/internals/features/users/auth/service"
	userModel "ncb_backend/internals/features/users/user/model"
	helper "ncb_backend/internals/helpers"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /api/admin/login
//
// The failure message is identical for a missing user, an inactive user
// and a wrong password.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	var user userModel.UserModel
	err := ctrl.DB.Preload("Member").
		Where("email = ? AND status = ?", strings.TrimSpace(req.Email), constants.StatusActive).
		First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] login lookup: %v", err)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	session, err := authService.CreateSession(ctrl.DB, user.UserID, ctrl.Cfg.SessionTTL)
	if err != nil {
		log.Printf("[ERROR] create session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&user).Update("last_login", now).Error; err != nil {
		log.Printf("[WARN] last_login update: %v", err)
	}
	user.LastLogin = &now

	activityService.LogActivity(ctrl.DB, &user.UserID, "User logged in", c.IP())

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      dto.ToLoginUser(&user),
	})
}

// POST /api/admin/logout — always succeeds, even for an unknown token.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if parts := strings.SplitN(auth, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		if token := strings.TrimSpace(parts[1]); token != "" {
			if err := authService.DeleteSession(ctrl.DB, token); err != nil {
				log.Printf("[WARN] logout delete: %v", err)
			}
		}
	}
	return helper.JsonOK(c, "Logout successful", nil)
}
