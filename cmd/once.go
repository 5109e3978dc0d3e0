package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/together-notify/internal/application"
	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
	"github.com/spf13/cobra"
)

type cycleEventJSON struct {
	Kind    domain.ChangeKind `json:"kind"`
	Message string            `json:"message"`
}

type cycleJSON struct {
	CycleID   string             `json:"cycle_id"`
	Partner   string             `json:"partner,omitempty"`
	Result    domain.CycleResult `json:"result"`
	Skipped   bool               `json:"skipped"`
	Unchanged bool               `json:"unchanged"`
	Events    []cycleEventJSON   `json:"events"`
	Error     string             `json:"error,omitempty"`
}

func newOnceCmd(app *app) *cobra.Command {
	var asJSON bool
	var noSpinner bool

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Run a single check, notify for any changes, and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := app.stateSource()
			if err != nil {
				return err
			}
			engine, err := app.engine(cmd.OutOrStdout(), source, ports.NopMetrics{})
			if err != nil {
				return err
			}

			runner := application.NewPeriodicRunner(engine, app.logger)

			var outcome cycleOutcome
			if asJSON || noSpinner {
				outcome.report, outcome.result, outcome.err = runner.Run(cmd.Context())
			} else {
				outcome, err = runCycleSpinner(cmd.Context(), cmd.ErrOrStderr(), runner)
				if err != nil {
					return err
				}
			}

			if err := writeCycleOutput(cmd, outcome, asJSON); err != nil {
				return err
			}
			if outcome.result == domain.ResultRetry {
				return fmt.Errorf("cycle needs retry: %w", outcome.err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the cycle report as JSON")
	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Do not show a progress spinner")

	return cmd
}

func writeCycleOutput(cmd *cobra.Command, outcome cycleOutcome, asJSON bool) error {
	report, result, cycleErr := outcome.report, outcome.result, outcome.err

	if asJSON {
		out := cycleJSON{
			CycleID:   report.ID,
			Partner:   report.Partner,
			Result:    result,
			Skipped:   report.Skipped,
			Unchanged: report.Unchanged,
			Events:    make([]cycleEventJSON, 0, len(report.Events)),
		}
		for _, event := range report.Events {
			out.Events = append(out.Events, cycleEventJSON{
				Kind:    event.Kind,
				Message: domain.FormatMessage(report.Partner, event),
			})
		}
		if cycleErr != nil {
			out.Error = cycleErr.Error()
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := cmd.OutOrStdout()
	switch {
	case cycleErr != nil:
		_, err := fmt.Fprintf(w, "%s: %v\n", result, cycleErr)
		return err
	case report.Skipped:
		_, err := fmt.Fprintln(w, "no partner configured; nothing to do")
		return err
	case len(report.Events) == 0:
		_, err := fmt.Fprintf(w, "no changes for %s\n", report.Partner)
		return err
	}

	for _, event := range report.Events {
		if _, err := fmt.Fprintf(w, "- %s\n", domain.FormatMessage(report.Partner, event)); err != nil {
			return err
		}
	}
	return nil
}
