package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ncb_backend/internals/features/payments/model"
	helper "ncb_backend/internals/helpers"
)

// Payments are read-only for now: rows arrive via membership verification
// done directly in the database. Recording endpoints come with the
// treasury workflow.
type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

type paymentItem struct {
	PaymentID     uint    `json:"payment_id"`
	MemberID      uint    `json:"member_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentType   string  `json:"payment_type"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	MemberName    *string `json:"member_name"`
}

// GET /api/admin/payments
func (ctrl *PaymentController) GetPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PaymentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	var rows []paymentItem
	err := ctrl.DB.Model(&model.PaymentModel{}).
		Select("payments.payment_id, payments.member_id, payments.amount, payments.payment_method, payments.payment_type, payments.description, payments.status, members.full_name AS member_name").
		Joins("LEFT JOIN members ON members.member_id = payments.member_id").
		Order("payments.payment_id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.JsonList(c, "Payments fetched", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}
