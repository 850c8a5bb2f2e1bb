package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	activityService "ncb_backend/internals/features/activity/service"
	memberModel "ncb_backend/internals/features/members/model"
	"ncb_backend/internals/features/users/user/dto"
	"ncb_backend/internals/features/users/user/model"
	helper "ncb_backend/internals/helpers"
	authMw "ncb_backend/internals/middlewares/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

const userSelect = "users.user_id, users.username, users.email, users.role, users.member_id, users.status, users.created_at, users.last_login, members.full_name"

// GET /api/admin/users — every account, regardless of role.
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	var rows []dto.UserItem
	err := ctrl.DB.Model(&model.UserModel{}).
		Select(userSelect).
		Joins("LEFT JOIN members ON members.member_id = users.member_id").
		Order("users.created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c, "Users fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/admin/admins — staff accounts only.
func (ctrl *UserController) GetAdmins(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("role IN ?", constants.AdminAndAbove).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}

	var rows []dto.UserItem
	err := ctrl.DB.Model(&model.UserModel{}).
		Select(userSelect).
		Joins("LEFT JOIN members ON members.member_id = users.member_id").
		Where("users.role IN ?", constants.AdminAndAbove).
		Order("users.created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}

	return helper.JsonList(c, "Admins fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/admin/admins — Super Admin only (enforced in the route).
// Creates the member profile and the login account in one transaction.
func (ctrl *UserController) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	role := req.Role
	if role == "" {
		role = constants.RoleAdmin
	}

	var dupe int64
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("username = ? OR email = ?", req.Username, strings.TrimSpace(req.Email)).
		Count(&dupe).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}
	if dupe > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username or email already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hash admin password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	var created model.UserModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		memberID := req.MemberID
		if memberID == nil {
			member := memberModel.MemberModel{
				FullName:       req.FullName,
				Email:          strings.TrimSpace(req.Email),
				Phone:          req.Phone,
				Designation:    role,
				MembershipType: "Staff",
				JoinedDate:     time.Now(),
				Status:         constants.StatusActive,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
			memberID = &member.MemberID
		} else {
			var exists int64
			if err := tx.Model(&memberModel.MemberModel{}).
				Where("member_id = ?", *memberID).Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		created = model.UserModel{
			Username: req.Username,
			Email:    strings.TrimSpace(req.Email),
			Password: string(hash),
			Role:     role,
			MemberID: memberID,
			Status:   constants.StatusActive,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Linked member not found")
		}
		log.Printf("[ERROR] create admin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Created admin account: "+created.Username, c.IP())
	}

	return helper.JsonCreated(c, "Admin created", fiber.Map{
		"user_id":   created.UserID,
		"username":  created.Username,
		"email":     created.Email,
		"role":      created.Role,
		"member_id": created.MemberID,
	})
}
