package ports

import (
	"context"
	"errors"
)

var (
	ErrNotificationDenied  = errors.New("notification permission denied")
	ErrNotifierUnavailable = errors.New("notifier unavailable")
)

type Notification struct {
	ID    int32
	Title string
	Body  string
}

type Notifier interface {
	Post(ctx context.Context, notification Notification) error
}
