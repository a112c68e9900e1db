package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equipment-support/internal/api/dto"
	"github.com/spec-kit/equipment-support/internal/api/validation"
	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/service"
	apperrors "github.com/spec-kit/equipment-support/pkg/util"
)

// RequestsHandler manages support request endpoints.
type RequestsHandler struct {
	service  *service.RequestService
	validate *validator.Validate
}

// NewRequestsHandler constructs handler.
func NewRequestsHandler(requestService *service.RequestService, validate *validator.Validate) *RequestsHandler {
	return &RequestsHandler{service: requestService, validate: validate}
}

// Create POST /api/support-requests.
func (h *RequestsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSupportRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	input := service.CreateRequestInput{
		SerialNumber:  req.SerialNumber,
		Priority:      domain.RequestPriority(req.Priority),
		Description:   req.Description,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
		SubmittedBy:   req.SubmittedBy,
	}
	created, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewSupportRequestResponse(created)})
}

// List GET /api/support-requests.
func (h *RequestsHandler) List(c *fiber.Ctx) error {
	requests, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSupportRequestResponses(requests)})
}

// Get GET /api/support-requests/:id.
func (h *RequestsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSupportRequestResponse(req)})
}

// Update PATCH /api/support-requests/:id.
func (h *RequestsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateSupportRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	input := service.UpdateRequestInput{
		AssignedTechnician: req.AssignedTechnician,
		Description:        req.Description,
		Location:           req.Location,
		ContactNumber:      req.ContactNumber,
	}
	if req.Status != nil {
		status := domain.RequestStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.RequestPriority(*req.Priority)
		input.Priority = &priority
	}

	updated, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSupportRequestResponse(updated)})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
