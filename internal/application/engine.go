package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CycleReport describes what one cycle observed and dispatched.
type CycleReport struct {
	ID             string
	Partner        string
	Skipped        bool
	PartnerPresent bool
	Unchanged      bool
	BucketCount    int
	Events         []domain.ChangeEvent
}

// Engine runs the fetch, diff, notify and persist cycle shared by both runners.
type Engine struct {
	profiles   ports.ProfileStore
	source     ports.StateSource
	store      ports.SnapshotStore
	dispatcher *Dispatcher
	logger     logrus.FieldLogger
	metrics    ports.Metrics

	locks partnerLocks
}

func NewEngine(
	profiles ports.ProfileStore,
	source ports.StateSource,
	store ports.SnapshotStore,
	dispatcher *Dispatcher,
	logger logrus.FieldLogger,
	metrics ports.Metrics,
) *Engine {
	if logger == nil {
		logger = discardLogger()
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &Engine{
		profiles:   profiles,
		source:     source,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RunCycle performs one cycle. A nil error means the cycle completed, which
// includes the no-op case of a missing profile. Events are always dispatched
// before the snapshot that produced them is written.
func (e *Engine) RunCycle(ctx context.Context) (CycleReport, error) {
	started := time.Now()
	report := CycleReport{ID: uuid.NewString(), BucketCount: domain.NoBucketCount}

	err := e.runCycle(ctx, &report)

	result := domain.ResultSuccess
	if err != nil {
		result = domain.ResultRetry
	}
	e.metrics.ObserveCycle(result, time.Since(started))

	return report, err
}

func (e *Engine) runCycle(ctx context.Context, report *CycleReport) error {
	profile, ok, err := e.profiles.Get(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if !ok || !profile.HasPartner() {
		report.Skipped = true
		return nil
	}

	partner := profile.Partner
	report.Partner = partner

	unlock := e.locks.lock(partner)
	defer unlock()

	logger := e.logger.WithFields(logrus.Fields{"cycle_id": report.ID, "partner": partner})

	state, err := e.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch shared state: %w", err)
	}

	if err := e.checkBucketList(ctx, partner, state, report); err != nil {
		return err
	}

	current, ok := state.Partner(partner)
	if !ok {
		logger.Debug("partner not present in shared state")
		return nil
	}
	report.PartnerPresent = true

	stateKey := domain.PartnerStateKey(partner)
	previousRaw, hadPrevious, err := e.store.Get(ctx, stateKey)
	if err != nil {
		return fmt.Errorf("read partner snapshot: %w", err)
	}
	if hadPrevious && previousRaw == current {
		report.Unchanged = true
		return nil
	}

	var previous *domain.PartnerState
	if hadPrevious {
		parsed := domain.ParsePartnerState(previousRaw)
		previous = &parsed
	}

	events := domain.DetectChanges(partner, profile.Name, domain.ParsePartnerState(current), previous)
	for _, event := range events {
		e.dispatcher.Dispatch(ctx, event, partner)
	}
	report.Events = append(report.Events, events...)

	if err := e.store.Put(ctx, stateKey, current); err != nil {
		return fmt.Errorf("write partner snapshot: %w", err)
	}

	logger.WithField("events", len(events)).Debug("partner snapshot updated")
	return nil
}

func (e *Engine) checkBucketList(ctx context.Context, partner string, state domain.GlobalState, report *CycleReport) error {
	count, ok := state.BucketListCount()
	if !ok {
		return nil
	}
	report.BucketCount = count

	key := domain.BucketCountKey(partner)
	last, err := e.store.GetInt(ctx, key)
	if err != nil {
		return fmt.Errorf("read bucket list count: %w", err)
	}

	if event, added := domain.DetectBucketListChange(last, count); added {
		e.dispatcher.Dispatch(ctx, event, partner)
		report.Events = append(report.Events, event)
	}

	if err := e.store.PutInt(ctx, key, count); err != nil {
		return fmt.Errorf("write bucket list count: %w", err)
	}
	return nil
}

type partnerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (p *partnerLocks) lock(partner string) func() {
	p.mu.Lock()
	if p.locks == nil {
		p.locks = make(map[string]*sync.Mutex)
	}
	m, ok := p.locks[partner]
	if !ok {
		m = &sync.Mutex{}
		p.locks[partner] = m
	}
	p.mu.Unlock()

	m.Lock()
	return m.Unlock
}
