package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-console/internal/api/dto"
	"github.com/spec-kit/ops-console/internal/auth"
	"github.com/spec-kit/ops-console/internal/service"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

// AdminHandler manages the operator directory.
type AdminHandler struct {
	service *service.DirectoryService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(directoryService *service.DirectoryService) *AdminHandler {
	return &AdminHandler{service: directoryService}
}

// ListOperators GET /admin/operators.
func (h *AdminHandler) ListOperators(c *fiber.Ctx) error {
	operators, err := h.service.ListOperators(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOperatorListResponse(operators)})
}

// ChangeRole PATCH /admin/operators/:id/role. The new role takes effect
// on the operator's next login; live sessions keep the role they carry.
func (h *AdminHandler) ChangeRole(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Role.IsValid() {
		return apperrors.NewValidationError("unknown role", fiber.Map{"role": string(req.Role)})
	}

	operator, err := h.service.ChangeRole(c.Context(), *sess, c.Params("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOperatorResponse(*operator)})
}
