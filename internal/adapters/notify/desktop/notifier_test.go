package desktop

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/bnema/together-notify/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierPostBuildsNotifySendArgs(t *testing.T) {
	t.Parallel()

	called := false
	notifier := &Notifier{
		command: DefaultCommand,
		run: func(ctx context.Context, command string, args ...string) (string, error) {
			called = true
			assert.Equal(t, "notify-send", command)
			assert.Equal(t, []string{
				"--app-name=Together",
				"--urgency=normal",
				"--",
				"Together Update",
				"alice is sleeping 😴",
			}, args)
			return "", nil
		},
	}

	err := notifier.Post(context.Background(), ports.Notification{ID: 42, Title: "Together Update", Body: "alice is sleeping 😴"})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestNotifierPostKeepsDashLeadingTextAsPositional(t *testing.T) {
	t.Parallel()

	var got []string
	notifier := &Notifier{
		command: DefaultCommand,
		run: func(ctx context.Context, command string, args ...string) (string, error) {
			got = args
			return "", nil
		},
	}

	err := notifier.Post(context.Background(), ports.Notification{ID: 7, Title: "Together Update", Body: "-u critical is sleeping 😴"})
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "--", got[2])
	assert.Equal(t, []string{"Together Update", "-u critical is sleeping 😴"}, got[3:])
}

func TestNotifierPostMissingCommandIsUnavailable(t *testing.T) {
	t.Parallel()

	notifier := &Notifier{
		command: "notify-send",
		run: func(ctx context.Context, command string, args ...string) (string, error) {
			return "", ports.ErrNotifierUnavailable
		},
	}

	err := notifier.Post(context.Background(), ports.Notification{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, ports.ErrNotifierUnavailable)
	assert.NotErrorIs(t, err, ports.ErrNotificationDenied)
}

func TestNotifierPostExitFailureIsDenied(t *testing.T) {
	t.Parallel()

	notifier := &Notifier{
		command: "notify-send",
		run: func(ctx context.Context, command string, args ...string) (string, error) {
			return "", &exec.ExitError{}
		},
	}

	err := notifier.Post(context.Background(), ports.Notification{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, ports.ErrNotificationDenied)
}

func TestNotifierPostIncludesStderr(t *testing.T) {
	t.Parallel()

	notifier := &Notifier{
		command: "notify-send",
		run: func(ctx context.Context, command string, args ...string) (string, error) {
			return "could not connect to dbus", errors.New("boom")
		},
	}

	err := notifier.Post(context.Background(), ports.Notification{Title: "t", Body: "b"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not connect to dbus")
}

func TestNewNotifierDefaultsCommand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultCommand, NewNotifier(" ").command)
	assert.Equal(t, "dunstify", NewNotifier("dunstify").command)
}
