package gocron

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

const (
	DefaultInterval       = 15 * time.Minute
	DefaultInitialBackoff = 30 * time.Second
	DefaultMaxBackoff     = time.Hour

	probeTimeout = 5 * time.Second
)

var ErrHostStarted = errors.New("schedule host already started")

// Runner is satisfied by *application.PeriodicRunner.
type Runner interface {
	RunOnce(ctx context.Context) domain.CycleResult
}

// Probe reports whether the network constraint for a run is met.
type Probe func(ctx context.Context) bool

type Options struct {
	Interval       time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Probe          Probe
}

// Host invokes a Runner on a fixed interval. A failed network probe or a Retry
// result reschedules a one-off run with exponential backoff.
type Host struct {
	runner    Runner
	interval  time.Duration
	probe     Probe
	logger    logrus.FieldLogger
	scheduler gocron.Scheduler

	runMu sync.Mutex

	mu      sync.Mutex
	ctx     context.Context
	backoff *backoff.ExponentialBackOff
	retry   gocron.Job
	started bool
}

func NewHost(runner Runner, opts Options, logger logrus.FieldLogger) (*Host, error) {
	if runner == nil {
		return nil, errors.New("schedule host requires a runner")
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = DefaultInitialBackoff
	}
	if opts.MaxBackoff <= 0 {
		opts.MaxBackoff = DefaultMaxBackoff
	}
	if opts.Probe == nil {
		opts.Probe = func(context.Context) bool { return true }
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = opts.InitialBackoff
	policy.MaxInterval = opts.MaxBackoff
	policy.MaxElapsedTime = 0
	policy.Reset()

	return &Host{
		runner:    runner,
		interval:  opts.Interval,
		probe:     opts.Probe,
		logger:    logger,
		scheduler: scheduler,
		backoff:   policy,
	}, nil
}

// Start registers the periodic job, runs it immediately, and returns. Jobs use
// ctx for their cycles; cancelling it does not stop the scheduler.
func (h *Host) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.started {
		return ErrHostStarted
	}

	h.ctx = ctx
	_, err := h.scheduler.NewJob(
		gocron.DurationJob(h.interval),
		gocron.NewTask(func() {
			h.invoke("periodic")
		}),
		gocron.WithName("together-periodic"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("register periodic job: %w", err)
	}

	h.scheduler.Start()
	h.started = true
	h.logger.WithField("interval", h.interval.String()).Info("schedule host started")

	return nil
}

// Shutdown stops the scheduler and waits for a running cycle.
func (h *Host) Shutdown() error {
	if err := h.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	return nil
}

func (h *Host) invoke(trigger string) {
	h.runMu.Lock()
	defer h.runMu.Unlock()

	ctx := h.context()
	logger := h.logger.WithField("trigger", trigger)

	if !h.probe(ctx) {
		h.scheduleRetry(logger, "network unavailable, deferring run")
		return
	}

	result := h.runner.RunOnce(ctx)
	logger = logger.WithField("result", string(result))

	switch result {
	case domain.ResultRetry:
		h.scheduleRetry(logger, "run asked for retry")
	default:
		h.resetRetry()
		logger.Debug("run completed")
	}
}

func (h *Host) context() context.Context {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ctx == nil {
		return context.Background()
	}
	return h.ctx
}

func (h *Host) scheduleRetry(logger logrus.FieldLogger, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeRetryLocked()

	delay := h.backoff.NextBackOff()
	if delay == backoff.Stop {
		logger.Warn("retry budget exhausted, waiting for next period")
		return
	}

	job, err := h.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(delay))),
		gocron.NewTask(func() {
			h.invoke("retry")
		}),
		gocron.WithName("together-retry"),
	)
	if err != nil {
		logger.WithError(err).Warn("schedule retry")
		return
	}

	h.retry = job
	logger.WithField("retry_in", delay.String()).Info(reason)
}

func (h *Host) resetRetry() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.backoff.Reset()
	h.removeRetryLocked()
}

func (h *Host) removeRetryLocked() {
	if h.retry == nil {
		return
	}
	// A one-time job that already fired is gone; the error is expected then.
	_ = h.scheduler.RemoveJob(h.retry.ID())
	h.retry = nil
}

// ResolverProbe reports the network as available when the host of rawURL
// resolves.
func ResolverProbe(rawURL string) Probe {
	return func(ctx context.Context) bool {
		parsed, err := url.Parse(rawURL)
		if err != nil || parsed.Hostname() == "" {
			return false
		}

		host := parsed.Hostname()
		if net.ParseIP(host) != nil {
			return true
		}

		lookupCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()

		addrs, err := net.DefaultResolver.LookupHost(lookupCtx, host)
		return err == nil && len(addrs) > 0
	}
}
