package domain

import "time"

// IntegrationType identifies a notification transport integration.
type IntegrationType string

const (
	IntegrationTypeEmail  IntegrationType = "email"
	IntegrationTypeSMS    IntegrationType = "sms"
	IntegrationTypeSystem IntegrationType = "system"
)

// IntegrationStatus is the reported health of an integration.
type IntegrationStatus string

const (
	IntegrationStatusActive   IntegrationStatus = "active"
	IntegrationStatusInactive IntegrationStatus = "inactive"
	IntegrationStatusWarning  IntegrationStatus = "warning"
)

// Valid reports whether the status is a known value.
func (s IntegrationStatus) Valid() bool {
	switch s {
	case IntegrationStatusActive, IntegrationStatusInactive, IntegrationStatusWarning:
		return true
	}
	return false
}

// SystemNotification is one integration health row shown on the dashboard.
type SystemNotification struct {
	ID           int64
	Type         IntegrationType
	Status       IntegrationStatus
	LastActivity *time.Time
}
