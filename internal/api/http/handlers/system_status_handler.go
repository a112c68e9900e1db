package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equipment-support/internal/api/dto"
	"github.com/spec-kit/equipment-support/internal/api/validation"
	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/service"
	apperrors "github.com/spec-kit/equipment-support/pkg/util"
)

// SystemStatusHandler serves integration health rows.
type SystemStatusHandler struct {
	service  *service.SystemStatusService
	validate *validator.Validate
}

// NewSystemStatusHandler constructs handler.
func NewSystemStatusHandler(statusService *service.SystemStatusService, validate *validator.Validate) *SystemStatusHandler {
	return &SystemStatusHandler{service: statusService, validate: validate}
}

// List GET /api/system-status.
func (h *SystemStatusHandler) List(c *fiber.Ctx) error {
	rows, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSystemNotificationResponses(rows)})
}

// Update PATCH /api/system-status/:id.
func (h *SystemStatusHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateSystemNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	input := service.UpdateSystemNotificationInput{
		LastActivity: req.LastActivity,
	}
	if req.Status != nil {
		status := domain.IntegrationStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSystemNotificationResponse(updated)})
}
