package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/together-notify/internal/ports"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

type payload struct {
	ID    int32  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier delivers notifications as JSON POSTs, e.g. to a push relay.
type Notifier struct {
	client *resty.Client
	url    string
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(url string) (*Notifier, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("webhook url is empty")
	}

	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json")

	return &Notifier{client: client, url: url}, nil
}

func (n *Notifier) Post(ctx context.Context, notification ports.Notification) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(payload{ID: notification.ID, Title: notification.Title, Body: notification.Body}).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %w", ports.ErrNotifierUnavailable, n.url, err)
	}

	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return fmt.Errorf("%w: POST %s: status %d", ports.ErrNotificationDenied, n.url, resp.StatusCode())
	default:
		return fmt.Errorf("POST %s: status %d: %s", n.url, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
}
