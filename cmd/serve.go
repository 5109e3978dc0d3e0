package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	promadapter "github.com/bnema/together-notify/internal/adapters/metrics/prometheus"
	"github.com/bnema/together-notify/internal/ports"
	"github.com/sirupsen/logrus"
)

const metricsShutdownTimeout = 5 * time.Second

// startMetrics serves /metrics on addr when it is set and returns the
// observer plus a stop function.
func startMetrics(addr string, logger logrus.FieldLogger) (ports.Metrics, func()) {
	if addr == "" {
		return ports.NopMetrics{}, func() {}
	}

	metrics := promadapter.New()
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithField("addr", addr).Info("serving metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("metrics server stopped")
		}
	}()

	return metrics, func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
