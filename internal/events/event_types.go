package events

import (
	"time"

	"github.com/spec-kit/equipment-support/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRequestCreated EventType = "request_created"
	EventEmergencyAlert EventType = "emergency_alert"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RequestCreatedPayload carries the persisted request for notification fan-out.
type RequestCreatedPayload struct {
	Request domain.SupportRequest `json:"request"`
}

// EmergencyAlertPayload carries an ad-hoc alert raised from the dashboard.
type EmergencyAlertPayload struct {
	Message  string `json:"message"`
	Location string `json:"location"`
}
