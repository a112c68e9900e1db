package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/equipment-support/internal/config"
)

// SMSCarrier sends short messages through the external carrier.
type SMSCarrier interface {
	Send(ctx context.Context, phone, message string) error
}

// simulatedCarrier logs the message and reports success. Callers must behave
// identically against a real carrier, so the contract is a no-op success.
type simulatedCarrier struct {
	sender string
	logger *zap.Logger
}

// NewSimulatedCarrier builds the stand-in SMS transport.
func NewSimulatedCarrier(cfg config.SMSConfig, logger *zap.Logger) SMSCarrier {
	return &simulatedCarrier{sender: cfg.SenderName, logger: logger}
}

func (c *simulatedCarrier) Send(ctx context.Context, phone, message string) error {
	c.logger.Info("simulated sms send",
		zap.String("sender", c.sender),
		zap.String("phone", phone),
		zap.String("message", message))
	return nil
}
