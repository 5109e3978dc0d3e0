package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/together-notify/internal/ports"
)

// Notifier posts to a primary surface and falls back to a second one when the
// primary fails for any reason other than cancellation.
type Notifier struct {
	primary  ports.Notifier
	fallback ports.Notifier
}

var _ ports.Notifier = (*Notifier)(nil)

var (
	errNilPrimaryNotifier  = errors.New("primary notifier is nil")
	errNilFallbackNotifier = errors.New("fallback notifier is nil")
)

func NewNotifier(primary ports.Notifier, fallback ports.Notifier) (*Notifier, error) {
	if primary == nil {
		return nil, errNilPrimaryNotifier
	}
	if fallback == nil {
		return nil, errNilFallbackNotifier
	}

	return &Notifier{primary: primary, fallback: fallback}, nil
}

func (n *Notifier) Post(ctx context.Context, notification ports.Notification) error {
	err := n.primary.Post(ctx, notification)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := n.fallback.Post(ctx, notification)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary notifier failed: %w; fallback notifier failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
