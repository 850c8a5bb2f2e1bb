package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionModel "ncb_backend/internals/features/users/auth/model"
	userModel "ncb_backend/internals/features/users/user/model"
)

// Locals keys set by SessionAuth.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalEmail    = "email"
	LocalRole     = "role"
	LocalMemberID = "member_id"
	LocalFullName = "full_name"
)

// SessionAuth resolves the bearer token against user_sessions and joins
// the live user row. Expired rows are treated as absent (they are not
// purged here). Role and display fields come from the user/member record,
// not from anything stored at login time.
func SessionAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractBearerToken(c)
		if err != nil {
			return unauthorized(c)
		}

		var session sessionModel.SessionModel
		if err := db.Where("token = ? AND expires_at > ?", token, time.Now()).
			First(&session).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[ERROR] session lookup: %v", err)
			}
			return unauthorized(c)
		}

		var user userModel.UserModel
		if err := db.Preload("Member").
			Where("user_id = ? AND status = ?", session.UserID, "Active").
			First(&user).Error; err != nil {
			return unauthorized(c)
		}

		c.Locals(LocalUserID, user.UserID)
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalRole, user.Role)
		if user.MemberID != nil {
			c.Locals(LocalMemberID, *user.MemberID)
		}
		if user.Member != nil {
			c.Locals(LocalFullName, user.Member.FullName)
		}

		return c.Next()
	}
}

// OnlyRoles gates a route group on the roles resolved by SessionAuth.
func OnlyRoles(forbiddenMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    fiber.StatusUnauthorized,
				"status":  "error",
				"message": "Unauthorized: missing role information",
			})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		if forbiddenMessage == "" {
			forbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"code":    fiber.StatusForbidden,
			"status":  "error",
			"message": forbiddenMessage,
		})
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    fiber.StatusUnauthorized,
		"status":  "error",
		"message": "Unauthorized",
	})
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h == "" {
		return "", errors.New("missing Authorization header")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// CurrentUserID reads the authenticated user id set by SessionAuth.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalUserID).(uint)
	return id, ok
}

// CurrentMemberID reads the linked member id, when the user has one.
func CurrentMemberID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalMemberID).(uint)
	return id, ok
}
