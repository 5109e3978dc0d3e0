package cmd

import (
	"time"

	"github.com/bnema/together-notify/internal/application"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	var interval time.Duration
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Check continuously at a short fixed interval until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := app.stateSource()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = app.cfg.Metrics.Addr
			}
			metrics, stopMetrics := startMetrics(metricsAddr, app.logger)
			defer stopMetrics()

			engine, err := app.engine(cmd.OutOrStdout(), source, metrics)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("interval") {
				interval = app.cfg.Poll.Interval
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			runner := application.NewContinuousRunner(engine, interval, app.logger)
			if err := runner.Start(ctx); err != nil {
				return err
			}
			app.logger.WithField("interval", interval.String()).Info("watching for partner updates")

			select {
			case <-ctx.Done():
			case <-runner.Done():
			}
			runner.Stop()

			app.logger.Info("watch stopped")
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", application.DefaultPollInterval, "Time between cycles")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9464)")

	return cmd
}
