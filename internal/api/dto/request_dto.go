package dto

import (
	"time"

	"github.com/spec-kit/equipment-support/internal/domain"
)

// CreateSupportRequestRequest payload.
type CreateSupportRequestRequest struct {
	SerialNumber  string  `json:"serialNumber" validate:"required"`
	Priority      string  `json:"priority" validate:"required,oneof=low medium high"`
	Description   string  `json:"description" validate:"required,min=10"`
	Location      string  `json:"location" validate:"required"`
	ContactNumber *string `json:"contactNumber"`
	SubmittedBy   string  `json:"submittedBy" validate:"required"`
}

// UpdateSupportRequestRequest payload; absent fields are left untouched.
// Status is freely settable, there is no transition guard.
type UpdateSupportRequestRequest struct {
	Status             *string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	AssignedTechnician *string `json:"assignedTechnician"`
	Priority           *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Description        *string `json:"description" validate:"omitempty,min=10"`
	Location           *string `json:"location" validate:"omitempty,min=1"`
	ContactNumber      *string `json:"contactNumber"`
}

// SupportRequestResponse mirrors the stored record.
type SupportRequestResponse struct {
	ID                 int64   `json:"id"`
	SerialNumber       string  `json:"serialNumber"`
	Priority           string  `json:"priority"`
	Description        string  `json:"description"`
	Location           string  `json:"location"`
	ContactNumber      *string `json:"contactNumber"`
	Status             string  `json:"status"`
	AssignedTechnician *string `json:"assignedTechnician"`
	SubmittedBy        string  `json:"submittedBy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// NewSupportRequestResponse maps a domain record.
func NewSupportRequestResponse(req *domain.SupportRequest) SupportRequestResponse {
	return SupportRequestResponse{
		ID:                 req.ID,
		SerialNumber:       req.SerialNumber,
		Priority:           string(req.Priority),
		Description:        req.Description,
		Location:           req.Location,
		ContactNumber:      req.ContactNumber,
		Status:             string(req.Status),
		AssignedTechnician: req.AssignedTechnician,
		SubmittedBy:        req.SubmittedBy,
		CreatedAt:          req.CreatedAt,
		UpdatedAt:          req.UpdatedAt,
	}
}

// NewSupportRequestResponses maps a list of domain records.
func NewSupportRequestResponses(reqs []domain.SupportRequest) []SupportRequestResponse {
	items := make([]SupportRequestResponse, 0, len(reqs))
	for i := range reqs {
		items = append(items, NewSupportRequestResponse(&reqs[i]))
	}
	return items
}
