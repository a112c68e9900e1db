package dto

import (
	"github.com/spec-kit/equipment-support/internal/domain"
)

// CreateTechnicianRequest payload for seeding the roster.
type CreateTechnicianRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	Specialty string  `json:"specialty" validate:"required"`
	Status    string  `json:"status" validate:"omitempty,oneof=available busy off_duty"`
}

// UpdateTechnicianRequest payload; absent fields are left untouched.
type UpdateTechnicianRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Phone          *string `json:"phone"`
	Specialty      *string `json:"specialty" validate:"omitempty,min=1"`
	Status         *string `json:"status" validate:"omitempty,oneof=available busy off_duty"`
	ActiveRequests *int    `json:"activeRequests" validate:"omitempty,min=0"`
}

// TechnicianResponse mirrors the stored record.
type TechnicianResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	Specialty      string  `json:"specialty"`
	Status         string  `json:"status"`
	ActiveRequests int     `json:"activeRequests"`
}

// NewTechnicianResponse maps a domain record.
func NewTechnicianResponse(tech *domain.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:             tech.ID,
		Name:           tech.Name,
		Email:          tech.Email,
		Phone:          tech.Phone,
		Specialty:      tech.Specialty,
		Status:         string(tech.Status),
		ActiveRequests: tech.ActiveRequests,
	}
}

// NewTechnicianResponses maps a list of domain records.
func NewTechnicianResponses(techs []domain.Technician) []TechnicianResponse {
	items := make([]TechnicianResponse, 0, len(techs))
	for i := range techs {
		items = append(items, NewTechnicianResponse(&techs[i]))
	}
	return items
}
