package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/sirupsen/logrus"
)

const DefaultPollInterval = 15 * time.Second

var (
	ErrRunnerAlreadyStarted = errors.New("runner already started")
	ErrRunnerStopped        = errors.New("runner stopped")
)

// CycleRunner is satisfied by *Engine.
type CycleRunner interface {
	RunCycle(ctx context.Context) (CycleReport, error)
}

type RunnerState int

const (
	RunnerIdle RunnerState = iota
	RunnerRunning
	RunnerStopped
)

func (s RunnerState) String() string {
	switch s {
	case RunnerIdle:
		return "idle"
	case RunnerRunning:
		return "running"
	case RunnerStopped:
		return "stopped"
	default:
		return fmt.Sprintf("RunnerState(%d)", int(s))
	}
}

// ContinuousRunner runs a cycle immediately and then once per interval until
// stopped. Cycle errors are logged and the loop keeps its cadence.
type ContinuousRunner struct {
	engine   CycleRunner
	interval time.Duration
	logger   logrus.FieldLogger

	mu     sync.Mutex
	state  RunnerState
	cancel context.CancelFunc
	done   chan struct{}
}

func NewContinuousRunner(engine CycleRunner, interval time.Duration, logger logrus.FieldLogger) *ContinuousRunner {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = discardLogger()
	}

	return &ContinuousRunner{
		engine:   engine,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (r *ContinuousRunner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case RunnerRunning:
		return ErrRunnerAlreadyStarted
	case RunnerStopped:
		return ErrRunnerStopped
	}

	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.state = RunnerRunning

	go r.loop(loopCtx)
	return nil
}

// Stop ends the loop and waits for an in-flight cycle to return. It is safe to
// call more than once.
func (r *ContinuousRunner) Stop() {
	r.mu.Lock()
	if r.state == RunnerIdle {
		r.state = RunnerStopped
		close(r.done)
		r.mu.Unlock()
		return
	}
	if r.state == RunnerRunning {
		r.state = RunnerStopped
		r.cancel()
	}
	r.mu.Unlock()

	<-r.done
}

func (r *ContinuousRunner) State() RunnerState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Done is closed once the loop has exited.
func (r *ContinuousRunner) Done() <-chan struct{} {
	return r.done
}

func (r *ContinuousRunner) loop(ctx context.Context) {
	defer func() {
		r.mu.Lock()
		r.state = RunnerStopped
		r.mu.Unlock()
		close(r.done)
	}()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		report, err := runCycleSafely(ctx, r.engine)
		logCycle(r.logger, report, err)

		timer.Reset(r.interval)
	}
}

// PeriodicRunner adapts the engine to an external scheduler that invokes one
// cycle at a time and reschedules on Retry.
type PeriodicRunner struct {
	engine CycleRunner
	logger logrus.FieldLogger
}

func NewPeriodicRunner(engine CycleRunner, logger logrus.FieldLogger) *PeriodicRunner {
	if logger == nil {
		logger = discardLogger()
	}
	return &PeriodicRunner{engine: engine, logger: logger}
}

func (r *PeriodicRunner) RunOnce(ctx context.Context) domain.CycleResult {
	_, result, _ := r.Run(ctx)
	return result
}

// Run executes one cycle and keeps the report and error for callers that
// print them. The error is non-nil only when the result is Retry.
func (r *PeriodicRunner) Run(ctx context.Context) (CycleReport, domain.CycleResult, error) {
	report, err := runCycleSafely(ctx, r.engine)
	logCycle(r.logger, report, err)
	if err != nil {
		return report, domain.ResultRetry, err
	}
	return report, domain.ResultSuccess, nil
}

func runCycleSafely(ctx context.Context, engine CycleRunner) (report CycleReport, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("cycle panicked: %v", recovered)
		}
	}()

	return engine.RunCycle(ctx)
}

func logCycle(logger logrus.FieldLogger, report CycleReport, err error) {
	entry := logger.WithFields(logrus.Fields{
		"cycle_id": report.ID,
		"partner":  report.Partner,
	})

	if err != nil {
		entry.WithField("result", string(domain.ResultRetry)).WithError(err).Warn("cycle failed")
		return
	}

	entry = entry.WithField("result", string(domain.ResultSuccess))
	switch {
	case report.Skipped:
		entry.Debug("no partner configured")
	case len(report.Events) > 0:
		entry.WithField("events", len(report.Events)).Info("cycle dispatched events")
	default:
		entry.Debug("cycle completed")
	}
}
