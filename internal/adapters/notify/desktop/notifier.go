package desktop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/together-notify/internal/ports"
)

const (
	DefaultCommand = "notify-send"
	appName        = "Together"
)

type runFunc func(ctx context.Context, command string, args ...string) (stderr string, err error)

// Notifier posts through a notify-send compatible command.
type Notifier struct {
	command string
	run     runFunc
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(command string) *Notifier {
	command = strings.TrimSpace(command)
	if command == "" {
		command = DefaultCommand
	}

	return &Notifier{command: command, run: runCommand}
}

func (n *Notifier) Post(ctx context.Context, notification ports.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	args := []string{
		"--app-name=" + appName,
		"--urgency=normal",
		"--",
		notification.Title,
		notification.Body,
	}

	stderr, err := n.run(ctx, n.command, args...)
	if err != nil {
		return formatError(n.command, err, stderr)
	}

	return nil
}

func runCommand(ctx context.Context, command string, args ...string) (string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ports.ErrNotifierUnavailable
		}
		return "", fmt.Errorf("locate %s: %w", command, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

// formatError classifies a refused post (non-zero exit) as a denied
// notification so the dispatcher can log it and move on.
func formatError(command string, err error, stderr string) error {
	if errors.Is(err, ports.ErrNotifierUnavailable) {
		return fmt.Errorf("%s: %w", command, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = fmt.Errorf("%w: %w", ports.ErrNotificationDenied, err)
	}

	if stderr == "" {
		return fmt.Errorf("%s: %w", command, err)
	}
	return fmt.Errorf("%s: %w: %s", command, err, stderr)
}
