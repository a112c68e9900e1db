package dto

import (
	"time"

	"github.com/spec-kit/equipment-support/internal/domain"
)

// UpdateSystemNotificationRequest payload; absent fields are left untouched.
type UpdateSystemNotificationRequest struct {
	Status       *string    `json:"status" validate:"omitempty,oneof=active inactive warning"`
	LastActivity *time.Time `json:"lastActivity"`
}

// SystemNotificationResponse mirrors one integration health row.
type SystemNotificationResponse struct {
	ID           int64      `json:"id"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	LastActivity *time.Time `json:"lastActivity"`
}

// NewSystemNotificationResponse maps a domain record.
func NewSystemNotificationResponse(row *domain.SystemNotification) SystemNotificationResponse {
	return SystemNotificationResponse{
		ID:           row.ID,
		Type:         string(row.Type),
		Status:       string(row.Status),
		LastActivity: row.LastActivity,
	}
}

// NewSystemNotificationResponses maps a list of domain records.
func NewSystemNotificationResponses(rows []domain.SystemNotification) []SystemNotificationResponse {
	items := make([]SystemNotificationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, NewSystemNotificationResponse(&rows[i]))
	}
	return items
}
