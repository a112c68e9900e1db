package service

import (
	"context"
	"strings"

	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/repository"
	apperrors "github.com/spec-kit/equipment-support/pkg/util"
)

// TechnicianService manages the technician roster.
type TechnicianService struct {
	technicians repository.TechnicianRepository
}

// CreateTechnicianInput describes a new roster entry.
type CreateTechnicianInput struct {
	Name      string
	Email     string
	Phone     *string
	Specialty string
	Status    domain.TechnicianStatus
}

// UpdateTechnicianInput describes a partial update; nil fields are untouched.
type UpdateTechnicianInput struct {
	Name           *string
	Phone          *string
	Specialty      *string
	Status         *domain.TechnicianStatus
	ActiveRequests *int
}

// NewTechnicianService constructs the service.
func NewTechnicianService(technicians repository.TechnicianRepository) *TechnicianService {
	return &TechnicianService{technicians: technicians}
}

// Create registers a technician. Email must be unique across the roster.
func (s *TechnicianService) Create(ctx context.Context, input CreateTechnicianInput) (*domain.Technician, error) {
	tech := &domain.Technician{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     input.Phone,
		Specialty: strings.TrimSpace(input.Specialty),
		Status:    input.Status,
	}
	if tech.Status == "" {
		tech.Status = domain.TechnicianStatusAvailable
	}

	if err := s.technicians.Create(ctx, tech); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": tech.Email})
		}
		return nil, apperrors.MapError(err)
	}
	return tech, nil
}

// Update applies a partial update to a roster entry.
func (s *TechnicianService) Update(ctx context.Context, id int64, input UpdateTechnicianInput) (*domain.Technician, error) {
	patch := repository.TechnicianPatch{
		Name:           input.Name,
		Phone:          input.Phone,
		Specialty:      input.Specialty,
		Status:         input.Status,
		ActiveRequests: input.ActiveRequests,
	}

	tech, err := s.technicians.Update(ctx, id, patch)
	if err != nil {
		return nil, notFoundOr(err, "technician", id)
	}
	return tech, nil
}

// Get fetches one technician by id.
func (s *TechnicianService) Get(ctx context.Context, id int64) (*domain.Technician, error) {
	tech, err := s.technicians.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "technician", id)
	}
	return tech, nil
}

// List returns the full roster.
func (s *TechnicianService) List(ctx context.Context) ([]domain.Technician, error) {
	result, err := s.technicians.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}
