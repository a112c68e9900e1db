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

// TechniciansHandler manages technician roster endpoints.
type TechniciansHandler struct {
	service  *service.TechnicianService
	validate *validator.Validate
}

// NewTechniciansHandler constructs handler.
func NewTechniciansHandler(technicianService *service.TechnicianService, validate *validator.Validate) *TechniciansHandler {
	return &TechniciansHandler{service: technicianService, validate: validate}
}

// Create POST /api/technicians.
func (h *TechniciansHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	input := service.CreateTechnicianInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Status:    domain.TechnicianStatus(req.Status),
	}
	created, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTechnicianResponse(created)})
}

// List GET /api/technicians.
func (h *TechniciansHandler) List(c *fiber.Ctx) error {
	techs, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTechnicianResponses(techs)})
}

// Update PATCH /api/technicians/:id.
func (h *TechniciansHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(h.validate, req); err != nil {
		return err
	}

	input := service.UpdateTechnicianInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Specialty:      req.Specialty,
		ActiveRequests: req.ActiveRequests,
	}
	if req.Status != nil {
		status := domain.TechnicianStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTechnicianResponse(updated)})
}
