package dto

// EmergencyAlertRequest payload.
type EmergencyAlertRequest struct {
	Message  string `json:"message" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// IntegrationWebhookRequest is the inbound payload from the messaging
// integration. DeviceSerial is optional; unknown devices are accepted.
type IntegrationWebhookRequest struct {
	Message      string  `json:"message" validate:"required"`
	Phone        *string `json:"phone"`
	DeviceSerial string  `json:"deviceSerial"`
}

// IntegrationWebhookResponse acknowledges the synthesized request.
type IntegrationWebhookResponse struct {
	RequestID int64  `json:"requestId"`
	Message   string `json:"message"`
}
