package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	chainnotify "github.com/bnema/together-notify/internal/adapters/notify/chain"
	consolenotify "github.com/bnema/together-notify/internal/adapters/notify/console"
	desktopnotify "github.com/bnema/together-notify/internal/adapters/notify/desktop"
	webhooknotify "github.com/bnema/together-notify/internal/adapters/notify/webhook"
	fileprofile "github.com/bnema/together-notify/internal/adapters/profile/file"
	"github.com/bnema/together-notify/internal/adapters/remote"
	statusadapter "github.com/bnema/together-notify/internal/adapters/render/status"
	memorysnapshot "github.com/bnema/together-notify/internal/adapters/snapshot/memory"
	redissnapshot "github.com/bnema/together-notify/internal/adapters/snapshot/redis"
	tomlsnapshot "github.com/bnema/together-notify/internal/adapters/snapshot/toml"
	"github.com/bnema/together-notify/internal/application"
	"github.com/bnema/together-notify/internal/config"
	"github.com/bnema/together-notify/internal/logging"
	"github.com/bnema/together-notify/internal/ports"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	logger         *logrus.Logger
	profiles       *fileprofile.Store
	snapshots      ports.SnapshotStore
	statusRenderer func(application.Status, statusadapter.RenderOptions) (string, error)
	clock          ports.Clock
	closers        []io.Closer
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	a := &app{
		cfg:            cfg,
		logger:         logger,
		profiles:       fileprofile.NewStore(cfg.Profile.Path),
		statusRenderer: statusadapter.Render,
		clock:          ports.SystemClock{},
	}

	snapshots, err := a.wireSnapshotStore()
	if err != nil {
		return nil, err
	}
	a.snapshots = snapshots

	return a, nil
}

func (a *app) wireSnapshotStore() (ports.SnapshotStore, error) {
	switch a.cfg.Snapshot.Backend {
	case config.SnapshotMemory:
		return memorysnapshot.NewStore(), nil
	case config.SnapshotRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr: a.cfg.Redis.Addr,
			DB:   a.cfg.Redis.DB,
		})
		store, err := redissnapshot.NewStore(client, a.cfg.Redis.Prefix)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("wire snapshot store: %w", err)
		}
		a.closers = append(a.closers, client)
		return store, nil
	default:
		storeCfg := viper.New()
		storeCfg.Set(tomlsnapshot.PathKey, a.cfg.Snapshot.Path)
		store, err := tomlsnapshot.NewStore(storeCfg)
		if err != nil {
			return nil, fmt.Errorf("wire snapshot store: %w", err)
		}
		return store, nil
	}
}

// notifier builds the configured notification surface. Console output goes
// to out so commands can redirect it.
func (a *app) notifier(out io.Writer) (ports.Notifier, error) {
	switch a.cfg.Notify.Backend {
	case config.NotifyConsole:
		return consolenotify.NewNotifier(out), nil
	case config.NotifyWebhook:
		return webhooknotify.NewNotifier(a.cfg.Notify.WebhookURL)
	case config.NotifyDesktopWebhook:
		hook, err := webhooknotify.NewNotifier(a.cfg.Notify.WebhookURL)
		if err != nil {
			return nil, err
		}
		return chainnotify.NewNotifier(desktopnotify.NewNotifier(a.cfg.Notify.Command), hook)
	default:
		return desktopnotify.NewNotifier(a.cfg.Notify.Command), nil
	}
}

// engine wires a cycle engine against the remote state source. Commands that
// only read local state pass a nil source.
func (a *app) engine(out io.Writer, source ports.StateSource, metrics ports.Metrics) (*application.Engine, error) {
	notifier, err := a.notifier(out)
	if err != nil {
		return nil, fmt.Errorf("wire notifier: %w", err)
	}

	dispatcher := application.NewDispatcher(notifier, a.clock, a.logger, metrics)
	return application.NewEngine(a.profiles, source, a.snapshots, dispatcher, a.logger, metrics), nil
}

func (a *app) stateSource() (ports.StateSource, error) {
	if err := a.cfg.RequireStateURL(); err != nil {
		return nil, err
	}

	fetcher, err := remote.NewFetcher(a.cfg.State.URL, a.cfg.State.Timeout)
	if err != nil {
		return nil, fmt.Errorf("wire state source: %w", err)
	}
	return fetcher, nil
}

func (a *app) Close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
