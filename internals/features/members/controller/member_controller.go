package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/members/dto"
	"ncb_backend/internals/features/members/model"
	helper "ncb_backend/internals/helpers"
	authMw "ncb_backend/internals/middlewares/auth"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

/* ===============================
   Admin endpoints
=================================*/

// GET /api/admin/members — active members, most recent joiners first.
func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.MemberModel{}).
		Where("status = ?", constants.StatusActive).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	var members []model.MemberModel
	err := ctrl.DB.
		Where("status = ?", constants.StatusActive).
		Order("joined_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&members).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	return helper.JsonList(c, "Members fetched", members, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/admin/members
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	joined := time.Now()
	if req.JoinedDate != "" {
		if d, err := time.Parse("2006-01-02", req.JoinedDate); err == nil {
			joined = d
		}
	}
	membershipType := req.MembershipType
	if membershipType == "" {
		membershipType = "General"
	}

	member := model.MemberModel{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Designation:    req.Designation,
		MembershipType: membershipType,
		JoinedDate:     joined,
		Status:         constants.StatusActive,
	}
	if err := ctrl.DB.Create(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create member")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Created member: "+member.FullName, c.IP())
	}

	return helper.JsonCreated(c, "Member created", member)
}

/* ===============================
   Public endpoints
=================================*/

// GET /api/public/members — the public directory: active members with
// their active committee role, if any.
func (ctrl *MemberController) GetPublicMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.MemberModel{}).
		Where("status = ?", constants.StatusActive).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	var rows []dto.PublicMemberItem
	err := ctrl.DB.Model(&model.MemberModel{}).
		Select("members.member_id, members.full_name, members.designation, members.profile_image, members.joined_date, committee_roles.role_title").
		Joins("LEFT JOIN committee_roles ON committee_roles.member_id = members.member_id AND committee_roles.status = ?", constants.StatusActive).
		Where("members.status = ?", constants.StatusActive).
		Order("members.joined_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch members")
	}

	return helper.JsonList(c, "Members fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}
