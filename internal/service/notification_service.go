package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/events"
	"github.com/spec-kit/equipment-support/internal/notify"
	"github.com/spec-kit/equipment-support/internal/repository"
)

// NotificationService fans out advisory notifications to technicians when
// requests are created or emergency alerts are raised. Delivery is best
// effort: a failed recipient never aborts the remaining ones.
type NotificationService struct {
	technicians repository.TechnicianRepository
	systemRows  repository.SystemNotificationRepository
	sender      notify.Sender
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NotificationDependencies bundles collaborators.
type NotificationDependencies struct {
	TechnicianRepo         repository.TechnicianRepository
	SystemNotificationRepo repository.SystemNotificationRepository
	Sender                 notify.Sender
	Dispatcher             events.Dispatcher
	Logger                 *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(deps NotificationDependencies) *NotificationService {
	return &NotificationService{
		technicians: deps.TechnicianRepo,
		systemRows:  deps.SystemNotificationRepo,
		sender:      deps.Sender,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRequestCreated, n.handleRequestCreated)
	n.dispatcher.Subscribe(events.EventEmergencyAlert, n.handleEmergencyAlert)
}

func (n *NotificationService) handleRequestCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RequestCreatedPayload)
	if !ok {
		return nil
	}
	req := payload.Request

	techs, err := n.technicians.ListAvailable(ctx)
	if err != nil {
		n.logger.Warn("could not load available technicians for fan-out", zap.Error(err))
		return err
	}

	subject := fmt.Sprintf("New Support Request #%d", req.ID)
	body := fmt.Sprintf("New %s priority support request for device %s in %s. Description: %s",
		req.Priority, req.SerialNumber, req.Location, req.Description)

	var emailed, texted bool
	for _, tech := range techs {
		if n.sender.Send(ctx, notify.ChannelEmail, tech.Email, subject, body) {
			emailed = true
		}
		if req.Priority == domain.RequestPriorityHigh && hasPhone(tech) {
			urgent := fmt.Sprintf("Device %s in %s needs immediate attention.", req.SerialNumber, req.Location)
			if n.sender.Send(ctx, notify.ChannelSMS, *tech.Phone, "URGENT Support Request", urgent) {
				texted = true
			}
		}
	}

	n.logger.Info("request fan-out complete",
		zap.Int64("request_id", req.ID),
		zap.String("priority", string(req.Priority)),
		zap.Int("recipients", len(techs)))
	n.touchIntegrations(ctx, emailed, texted)
	return nil
}

func (n *NotificationService) handleEmergencyAlert(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EmergencyAlertPayload)
	if !ok {
		return nil
	}

	techs, err := n.technicians.ListAvailable(ctx)
	if err != nil {
		n.logger.Warn("could not load available technicians for alert", zap.Error(err))
		return err
	}

	body := fmt.Sprintf("EMERGENCY ALERT: %s at %s. Immediate response required.",
		payload.Message, payload.Location)

	var emailed, texted bool
	for _, tech := range techs {
		if n.sender.Send(ctx, notify.ChannelEmail, tech.Email, "EMERGENCY ALERT", body) {
			emailed = true
		}
		if hasPhone(tech) {
			if n.sender.Send(ctx, notify.ChannelSMS, *tech.Phone, "EMERGENCY", body) {
				texted = true
			}
		}
	}

	n.logger.Info("emergency alert fan-out complete", zap.Int("recipients", len(techs)))
	n.touchIntegrations(ctx, emailed, texted)
	return nil
}

// touchIntegrations refreshes the integration health rows for channels that
// saw successful traffic. Best effort, failures only logged.
func (n *NotificationService) touchIntegrations(ctx context.Context, emailed, texted bool) {
	if emailed {
		if err := n.systemRows.TouchActivity(ctx, domain.IntegrationTypeEmail); err != nil {
			n.logger.Warn("failed to touch email integration activity", zap.Error(err))
		}
	}
	if texted {
		if err := n.systemRows.TouchActivity(ctx, domain.IntegrationTypeSMS); err != nil {
			n.logger.Warn("failed to touch sms integration activity", zap.Error(err))
		}
	}
}

func hasPhone(tech domain.Technician) bool {
	return tech.Phone != nil && *tech.Phone != ""
}
