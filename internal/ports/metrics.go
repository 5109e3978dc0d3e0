package ports

import (
	"time"

	"github.com/bnema/together-notify/internal/domain"
)

type Metrics interface {
	ObserveCycle(result domain.CycleResult, duration time.Duration)
	EventDispatched(kind domain.ChangeKind)
	DispatchFailed(kind domain.ChangeKind)
}

type NopMetrics struct{}

func (NopMetrics) ObserveCycle(domain.CycleResult, time.Duration) {}
func (NopMetrics) EventDispatched(domain.ChangeKind)              {}
func (NopMetrics) DispatchFailed(domain.ChangeKind)               {}
