package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/constants"
	activityService "ncb_backend/internals/features/activity/service"
	"ncb_backend/internals/features/committee/dto"
	"ncb_backend/internals/features/committee/model"
	memberModel "ncb_backend/internals/features/members/model"
	helper "ncb_backend/internals/helpers"
	authMw "ncb_backend/internals/middlewares/auth"
)

type CommitteeController struct {
	DB *gorm.DB
}

func NewCommitteeController(db *gorm.DB) *CommitteeController {
	return &CommitteeController{DB: db}
}

const committeeSelect = "committee_roles.role_id, committee_roles.member_id, committee_roles.role_title, committee_roles.committee_type, committee_roles.status, committee_roles.start_date, committee_roles.end_date, members.full_name, members.email, members.phone, members.designation, members.profile_image"

// Founders first, then executives, then associates.
const committeeOrder = "CASE committee_roles.committee_type WHEN 'Founder' THEN 1 WHEN 'Executive' THEN 2 WHEN 'Associate' THEN 3 ELSE 4 END, members.full_name ASC"

func (ctrl *CommitteeController) listActive() ([]dto.CommitteeItem, error) {
	var rows []dto.CommitteeItem
	err := ctrl.DB.Model(&model.CommitteeRoleModel{}).
		Select(committeeSelect).
		Joins("JOIN members ON members.member_id = committee_roles.member_id").
		Where("committee_roles.status = ? AND members.status = ?", constants.StatusActive, constants.StatusActive).
		Order(committeeOrder).
		Scan(&rows).Error
	return rows, err
}

// GET /api/admin/committee and /api/public/committee
func (ctrl *CommitteeController) GetCommittee(c *fiber.Ctx) error {
	rows, err := ctrl.listActive()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch committee")
	}
	return helper.JsonOK(c, "Committee fetched", rows)
}

// GET /api/public/committee/:id
func (ctrl *CommitteeController) GetCommitteeMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid committee role id")
	}

	var row dto.CommitteeItem
	err = ctrl.DB.Model(&model.CommitteeRoleModel{}).
		Select(committeeSelect).
		Joins("JOIN members ON members.member_id = committee_roles.member_id").
		Where("committee_roles.role_id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch committee member")
	}

	return helper.JsonOK(c, "Committee member fetched", row)
}

// POST /api/public/committee — creates the member profile and the role in
// one transaction.
func (ctrl *CommitteeController) CreateCommitteeMember(c *fiber.Ctx) error {
	var req dto.CreateCommitteeMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	committeeType := req.CommitteeType
	if committeeType == "" {
		committeeType = constants.CommitteeAssociate
	}

	var role model.CommitteeRoleModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		member := memberModel.MemberModel{
			FullName:       req.FullName,
			Email:          req.Email,
			Phone:          req.Phone,
			Designation:    req.Designation,
			MembershipType: "Committee",
			JoinedDate:     time.Now(),
			Status:         constants.StatusActive,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		now := time.Now()
		role = model.CommitteeRoleModel{
			MemberID:      member.MemberID,
			RoleTitle:     req.RoleTitle,
			CommitteeType: committeeType,
			Status:        constants.StatusActive,
			StartDate:     &now,
		}
		return tx.Create(&role).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add committee member")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Added committee member: "+req.FullName, c.IP())
	}

	return helper.JsonCreated(c, "Committee member added", fiber.Map{
		"role_id":   role.RoleID,
		"member_id": role.MemberID,
	})
}

// PUT /api/public/committee/:id — partial update across the role and its
// member row.
func (ctrl *CommitteeController) UpdateCommitteeMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid committee role id")
	}

	var req dto.UpdateCommitteeMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var role model.CommitteeRoleModel
	if err := ctrl.DB.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update committee member")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		roleUpdates := map[string]any{}
		if req.RoleTitle != nil {
			roleUpdates["role_title"] = *req.RoleTitle
		}
		if req.CommitteeType != nil {
			roleUpdates["committee_type"] = *req.CommitteeType
		}
		if len(roleUpdates) > 0 {
			if err := tx.Model(&role).Updates(roleUpdates).Error; err != nil {
				return err
			}
		}

		memberUpdates := map[string]any{}
		if req.FullName != nil {
			memberUpdates["full_name"] = *req.FullName
		}
		if req.Email != nil {
			memberUpdates["email"] = *req.Email
		}
		if req.Phone != nil {
			memberUpdates["phone"] = *req.Phone
		}
		if req.Designation != nil {
			memberUpdates["designation"] = *req.Designation
		}
		if len(memberUpdates) > 0 {
			if err := tx.Model(&memberModel.MemberModel{}).
				Where("member_id = ?", role.MemberID).
				Updates(memberUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update committee member")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Updated committee role", c.IP())
	}

	return helper.JsonUpdated(c, "Committee member updated", fiber.Map{"role_id": role.RoleID})
}

// DELETE /api/public/committee/:id — soft delete: the role and its member
// row are both set Inactive, nothing is removed.
func (ctrl *CommitteeController) DeleteCommitteeMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid committee role id")
	}

	var role model.CommitteeRoleModel
	if err := ctrl.DB.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Committee member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove committee member")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&role).Updates(map[string]any{
			"status":   constants.StatusInactive,
			"end_date": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&memberModel.MemberModel{}).
			Where("member_id = ?", role.MemberID).
			Update("status", constants.StatusInactive).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove committee member")
	}

	if userID, ok := authMw.CurrentUserID(c); ok {
		activityService.LogActivity(ctrl.DB, &userID, "Removed committee role", c.IP())
	}

	return helper.JsonDeleted(c, "Committee member removed", fiber.Map{"role_id": role.RoleID})
}
