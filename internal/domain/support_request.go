package domain

import "time"

// RequestStatus enumerates lifecycle states for support requests.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusResolved   RequestStatus = "resolved"
	RequestStatusClosed     RequestStatus = "closed"
)

// Valid reports whether the status is a known value.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusResolved, RequestStatusClosed:
		return true
	}
	return false
}

// Active reports whether the request still needs technician attention.
func (s RequestStatus) Active() bool {
	return s == RequestStatusOpen || s == RequestStatusInProgress
}

// RequestPriority enumerates urgency levels.
type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "low"
	RequestPriorityMedium RequestPriority = "medium"
	RequestPriorityHigh   RequestPriority = "high"
)

// Valid reports whether the priority is a known value.
func (p RequestPriority) Valid() bool {
	switch p {
	case RequestPriorityLow, RequestPriorityMedium, RequestPriorityHigh:
		return true
	}
	return false
}

// SupportRequest is the aggregate for device issue reports. AssignedTechnician
// holds a display name, not a technician row reference.
type SupportRequest struct {
	ID                 int64
	SerialNumber       string
	Priority           RequestPriority
	Description        string
	Location           string
	ContactNumber      *string
	Status             RequestStatus
	AssignedTechnician *string
	SubmittedBy        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
