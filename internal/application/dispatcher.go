package application

import (
	"context"
	"errors"
	"io"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
	"github.com/sirupsen/logrus"
)

// Dispatcher turns change events into notifications. Delivery failures are
// logged and counted, never returned: a denied or missing notification surface
// must not stop a cycle.
type Dispatcher struct {
	notifier ports.Notifier
	clock    ports.Clock
	logger   logrus.FieldLogger
	metrics  ports.Metrics
}

func NewDispatcher(notifier ports.Notifier, clock ports.Clock, logger logrus.FieldLogger, metrics ports.Metrics) *Dispatcher {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = discardLogger()
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &Dispatcher{
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		metrics:  metrics,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event domain.ChangeEvent, partner string) {
	notification := ports.Notification{
		ID:    int32(d.clock.Now().UnixMilli()),
		Title: domain.NotificationTitle,
		Body:  domain.FormatMessage(partner, event),
	}

	fields := logrus.Fields{
		"partner": partner,
		"event":   string(event.Kind),
	}

	if err := d.notifier.Post(ctx, notification); err != nil {
		d.metrics.DispatchFailed(event.Kind)

		entry := d.logger.WithFields(fields).WithError(err)
		switch {
		case errors.Is(err, ports.ErrNotificationDenied):
			entry.Warn("notification permission denied")
		case errors.Is(err, ports.ErrNotifierUnavailable):
			entry.Warn("notification surface unavailable")
		default:
			entry.Warn("post notification")
		}
		return
	}

	d.metrics.EventDispatched(event.Kind)
	d.logger.WithFields(fields).Debug(notification.Body)
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
