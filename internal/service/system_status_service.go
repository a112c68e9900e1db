package service

import (
	"context"
	"time"

	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/repository"
	apperrors "github.com/spec-kit/equipment-support/pkg/util"
)

// SystemStatusService surfaces integration health rows.
type SystemStatusService struct {
	rows repository.SystemNotificationRepository
}

// UpdateSystemNotificationInput describes a partial health row update.
type UpdateSystemNotificationInput struct {
	Status       *domain.IntegrationStatus
	LastActivity *time.Time
}

// NewSystemStatusService constructs the service.
func NewSystemStatusService(rows repository.SystemNotificationRepository) *SystemStatusService {
	return &SystemStatusService{rows: rows}
}

// List returns all integration health rows.
func (s *SystemStatusService) List(ctx context.Context) ([]domain.SystemNotification, error) {
	result, err := s.rows.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// Update applies a partial update to one health row.
func (s *SystemStatusService) Update(ctx context.Context, id int64, input UpdateSystemNotificationInput) (*domain.SystemNotification, error) {
	patch := repository.SystemNotificationPatch{
		Status:       input.Status,
		LastActivity: input.LastActivity,
	}
	row, err := s.rows.Update(ctx, id, patch)
	if err != nil {
		return nil, notFoundOr(err, "system notification", id)
	}
	return row, nil
}
