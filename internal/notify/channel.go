package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/equipment-support/internal/observability"
)

// Channel identifies a delivery transport.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Sender delivers one notification over a channel. Implementations never
// return an error: delivery is advisory, failures are reported as false.
type Sender interface {
	Send(ctx context.Context, channel Channel, recipient, subject, body string) bool
}

// Dispatcher routes notifications to the configured transports. One delivery
// attempt per call, bounded by a timeout; no retry, no queueing.
type Dispatcher struct {
	mailer  Mailer
	carrier SMSCarrier
	timeout time.Duration
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewDispatcher constructs the dispatcher.
func NewDispatcher(mailer Mailer, carrier SMSCarrier, timeout time.Duration, logger *zap.Logger, metrics *observability.Metrics) *Dispatcher {
	return &Dispatcher{
		mailer:  mailer,
		carrier: carrier,
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
	}
}

// Send delivers a single notification. All transport failures are caught,
// logged and converted to a false return.
func (d *Dispatcher) Send(ctx context.Context, channel Channel, recipient, subject, body string) bool {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	var err error
	switch channel {
	case ChannelEmail:
		err = d.mailer.Send(ctx, recipient, subject, body)
	case ChannelSMS:
		err = d.carrier.Send(ctx, recipient, fmt.Sprintf("%s: %s", subject, body))
	default:
		err = fmt.Errorf("unknown channel %q", channel)
	}

	ok := err == nil
	d.metrics.RecordDelivery(string(channel), ok)
	if !ok {
		d.logger.Warn("notification delivery failed",
			zap.String("channel", string(channel)),
			zap.String("recipient", recipient),
			zap.Error(err))
	}
	return ok
}
