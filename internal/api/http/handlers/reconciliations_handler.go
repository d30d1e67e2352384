package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ops-console/internal/api/dto"
	"github.com/spec-kit/ops-console/internal/auth"
	"github.com/spec-kit/ops-console/internal/service"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

// ReconciliationsHandler manages payment reconciliation endpoints.
type ReconciliationsHandler struct {
	service *service.ReconciliationService
}

// NewReconciliationsHandler constructs handler.
func NewReconciliationsHandler(reconciliationService *service.ReconciliationService) *ReconciliationsHandler {
	return &ReconciliationsHandler{service: reconciliationService}
}

// ListRecords GET /reconciliations.
func (h *ReconciliationsHandler) ListRecords(c *fiber.Ctx) error {
	records, err := h.service.List(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReconciliationListResponse(records)})
}

// Summary GET /reconciliations/summary.
func (h *ReconciliationsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summarize(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// Reconcile POST /reconciliations/reconcile settles the selected records.
// A partial failure still returns 200 with the remaining ids; the records
// settled before the failure stay settled.
func (h *ReconciliationsHandler) Reconcile(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	var req dto.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.service.ReconcileSelected(c.Context(), *sess, req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReconcileResponse(result)})
}
