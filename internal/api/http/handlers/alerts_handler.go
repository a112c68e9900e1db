package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equipment-support/internal/api/dto"
	"github.com/spec-kit/equipment-support/internal/api/validation"
	"github.com/spec-kit/equipment-support/internal/service"
	apperrors "github.com/spec-kit/equipment-support/pkg/util"
)

// AlertsHandler handles emergency broadcasts and the inbound messaging
// integration webhook.
type AlertsHandler struct {
	service  *service.RequestService
	validate *validator.Validate
}

// NewAlertsHandler constructs handler.
func NewAlertsHandler(requestService *service.RequestService, validate *validator.Validate) *AlertsHandler {
	return &AlertsHandler{service: requestService, validate: validate}
}

// EmergencyAlert POST /api/emergency-alert.
func (h *AlertsHandler) EmergencyAlert(c *fiber.Ctx) error {
	var req dto.EmergencyAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	h.service.RaiseEmergencyAlert(c.Context(), req.Message, req.Location)
	return c.JSON(fiber.Map{"data": fiber.Map{
		"message": "emergency alerts sent to all available technicians",
	}})
}

// IntegrationWebhook POST /api/integration-webhook.
func (h *AlertsHandler) IntegrationWebhook(c *fiber.Ctx) error {
	var req dto.IntegrationWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	input := service.IntegrationMessageInput{
		Message:      req.Message,
		Phone:        req.Phone,
		DeviceSerial: req.DeviceSerial,
	}
	created, err := h.service.CreateFromIntegration(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.IntegrationWebhookResponse{
		RequestID: created.ID,
		Message:   fmt.Sprintf("support request #%d created", created.ID),
	}})
}
