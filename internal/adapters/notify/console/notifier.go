package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/together-notify/internal/ports"
)

// Notifier prints notifications, one per line, to a writer.
type Notifier struct {
	out io.Writer
	mu  sync.Mutex
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Post(ctx context.Context, notification ports.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintf(n.out, "%s: %s\n", notification.Title, notification.Body); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
