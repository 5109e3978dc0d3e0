package cmd

import (
	"fmt"

	gocronhost "github.com/bnema/together-notify/internal/adapters/schedule/gocron"
	"github.com/bnema/together-notify/internal/application"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *app) *cobra.Command {
	var metricsAddr string
	var skipProbe bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Check every periodic.interval while the network is up, backing off on failures",
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

			opts := gocronhost.Options{
				Interval:   app.cfg.Periodic.Interval,
				MaxBackoff: app.cfg.Periodic.BackoffMax,
			}
			if !skipProbe {
				opts.Probe = gocronhost.ResolverProbe(app.cfg.State.URL)
			}

			host, err := gocronhost.NewHost(application.NewPeriodicRunner(engine, app.logger), opts, app.logger)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			if err := host.Start(ctx); err != nil {
				return err
			}

			<-ctx.Done()
			if err := host.Shutdown(); err != nil {
				return fmt.Errorf("stop schedule host: %w", err)
			}

			app.logger.Info("schedule stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9464)")
	cmd.Flags().BoolVar(&skipProbe, "skip-network-check", false, "Run even when the state host does not resolve")

	return cmd
}
