package worker

import (
	"github.com/spec-kit/equipment-support/internal/service"
)

// StartNotificationWorker registers notification fan-out handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
