package prometheus

import (
	"net/http"
	"time"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "together"

// Metrics records cycle and dispatch counters on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	cycleDuration  *prometheus.HistogramVec
	cycleTotal     *prometheus.CounterVec
	eventsTotal    *prometheus.CounterVec
	dispatchFailed *prometheus.CounterVec
	lastSuccess    prometheus.Gauge
}

var _ ports.Metrics = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cycleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cycle_duration_seconds",
				Help:      "Duration of one fetch, diff, notify and persist cycle.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		cycleTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cycles_total",
				Help:      "Cycles run, by result.",
			},
			[]string{"result"}, // success | retry
		),
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_dispatched_total",
				Help:      "Change events delivered to the notifier, by kind.",
			},
			[]string{"kind"},
		),
		dispatchFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_failures_total",
				Help:      "Change events the notifier rejected, by kind.",
			},
			[]string{"kind"},
		),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful cycle.",
		}),
	}

	m.registry.MustRegister(
		m.cycleDuration,
		m.cycleTotal,
		m.eventsTotal,
		m.dispatchFailed,
		m.lastSuccess,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveCycle(result domain.CycleResult, duration time.Duration) {
	m.cycleDuration.WithLabelValues(string(result)).Observe(duration.Seconds())
	m.cycleTotal.WithLabelValues(string(result)).Inc()
	if result == domain.ResultSuccess {
		m.lastSuccess.SetToCurrentTime()
	}
}

func (m *Metrics) EventDispatched(kind domain.ChangeKind) {
	m.eventsTotal.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) DispatchFailed(kind domain.ChangeKind) {
	m.dispatchFailed.WithLabelValues(string(kind)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
