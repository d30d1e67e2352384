package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-console/internal/api/dto"
	"github.com/spec-kit/ops-console/internal/auth"
	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/service"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

// MerchantsHandler manages merchant onboarding and review endpoints.
type MerchantsHandler struct {
	service *service.MerchantService
}

// NewMerchantsHandler constructs handler.
func NewMerchantsHandler(merchantService *service.MerchantService) *MerchantsHandler {
	return &MerchantsHandler{service: merchantService}
}

// ListMerchants GET /merchants.
func (h *MerchantsHandler) ListMerchants(c *fiber.Ctx) error {
	merchants, err := h.service.List(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMerchantListResponse(merchants)})
}

// CreateMerchant POST /merchants submits the onboarding form.
func (h *MerchantsHandler) CreateMerchant(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.MerchantCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.MerchantCreateInput{
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Address:      req.Address,
		TaxID:        req.TaxID,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IDProof:      req.IDProof,
		License:      req.License,
	}
	merchant, err := h.service.Create(c.Context(), *sess, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewMerchantResponse(*merchant)})
}

// ReviewMerchant POST /merchants/:id/review approves or rejects a pending merchant.
func (h *MerchantsHandler) ReviewMerchant(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.MerchantReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Status.IsValid() {
		return apperrors.NewValidationError("unknown status", fiber.Map{"status": string(req.Status)})
	}
	if req.Status == domain.MerchantStatusPending {
		return apperrors.NewValidationError("review must target active or rejected", nil)
	}

	merchant, err := h.service.Review(c.Context(), *sess, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMerchantResponse(*merchant)})
}
