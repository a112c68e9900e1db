package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/events"
	"github.com/spec-kit/equipment-support/internal/repository"
	apperrors "github.com/spec-kit/equipment-support/pkg/util"
)

// IntegrationSubmitter is the fixed identity recorded on requests created
// through the messaging integration webhook.
const IntegrationSubmitter = "Integration Bot"

// RequestService coordinates the support request lifecycle.
type RequestService struct {
	requests   repository.RequestRepository
	systemRows repository.SystemNotificationRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// RequestDependencies bundles collaborators for the request service.
type RequestDependencies struct {
	RequestRepo            repository.RequestRepository
	SystemNotificationRepo repository.SystemNotificationRepository
	Dispatcher             events.Dispatcher
	Logger                 *zap.Logger
}

// CreateRequestInput describes a validated request creation payload.
type CreateRequestInput struct {
	SerialNumber  string
	Priority      domain.RequestPriority
	Description   string
	Location      string
	ContactNumber *string
	SubmittedBy   string
}

// UpdateRequestInput describes a partial update; nil fields are untouched.
type UpdateRequestInput struct {
	Status             *domain.RequestStatus
	AssignedTechnician *string
	Priority           *domain.RequestPriority
	Description        *string
	Location           *string
	ContactNumber      *string
}

// IntegrationMessageInput carries an inbound webhook message.
type IntegrationMessageInput struct {
	Message      string
	Phone        *string
	DeviceSerial string
}

// NewRequestService constructs the service.
func NewRequestService(deps RequestDependencies) *RequestService {
	return &RequestService{
		requests:   deps.RequestRepo,
		systemRows: deps.SystemNotificationRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Create persists a new support request and triggers notification fan-out to
// available technicians. Creation succeeds regardless of delivery outcome.
func (s *RequestService) Create(ctx context.Context, input CreateRequestInput) (*domain.SupportRequest, error) {
	req := &domain.SupportRequest{
		SerialNumber:  strings.TrimSpace(input.SerialNumber),
		Priority:      input.Priority,
		Description:   strings.TrimSpace(input.Description),
		Location:      strings.TrimSpace(input.Location),
		ContactNumber: input.ContactNumber,
		Status:        domain.RequestStatusOpen,
		SubmittedBy:   strings.TrimSpace(input.SubmittedBy),
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventRequestCreated,
		Payload: events.RequestCreatedPayload{Request: *req},
	})
	return req, nil
}

// CreateFromIntegration synthesizes a medium-priority request from an inbound
// webhook message. Notification fan-out is intentionally skipped: the sender
// is an automation, not a staff member waiting on a technician page.
func (s *RequestService) CreateFromIntegration(ctx context.Context, input IntegrationMessageInput) (*domain.SupportRequest, error) {
	serial := strings.TrimSpace(input.DeviceSerial)
	if serial == "" {
		serial = "Unknown"
	}

	req := &domain.SupportRequest{
		SerialNumber:  serial,
		Priority:      domain.RequestPriorityMedium,
		Description:   "Request via messaging integration: " + strings.TrimSpace(input.Message),
		Location:      "Remote/Integration",
		ContactNumber: input.Phone,
		Status:        domain.RequestStatusOpen,
		SubmittedBy:   IntegrationSubmitter,
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, apperrors.MapError(err)
	}

	if err := s.systemRows.TouchActivity(ctx, domain.IntegrationTypeSystem); err != nil {
		s.logger.Warn("failed to touch integration activity", zap.Error(err))
	}
	return req, nil
}

// Update applies a partial update and refreshes updated_at. Any status may be
// set from any other; there is no transition guard.
func (s *RequestService) Update(ctx context.Context, id int64, input UpdateRequestInput) (*domain.SupportRequest, error) {
	patch := repository.RequestPatch{
		Status:             input.Status,
		AssignedTechnician: input.AssignedTechnician,
		Priority:           input.Priority,
		Description:        input.Description,
		Location:           input.Location,
		ContactNumber:      input.ContactNumber,
	}

	req, err := s.requests.Update(ctx, id, patch)
	if err != nil {
		return nil, notFoundOr(err, "support request", id)
	}
	return req, nil
}

// Get fetches one request by id.
func (s *RequestService) Get(ctx context.Context, id int64) (*domain.SupportRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "support request", id)
	}
	return req, nil
}

// List returns all requests, most recent first.
func (s *RequestService) List(ctx context.Context) ([]domain.SupportRequest, error) {
	result, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// RaiseEmergencyAlert broadcasts an ad-hoc alert to available technicians.
func (s *RequestService) RaiseEmergencyAlert(ctx context.Context, message, location string) {
	s.publishEvent(ctx, events.Event{
		Type: events.EventEmergencyAlert,
		Payload: events.EmergencyAlertPayload{
			Message:  strings.TrimSpace(message),
			Location: strings.TrimSpace(location),
		},
	})
}

func (s *RequestService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
