package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/together-notify/internal/adapters/render/status"
	"github.com/bnema/together-notify/internal/application"
	"github.com/spf13/cobra"
)

type statusJSON struct {
	Partner     string          `json:"partner,omitempty"`
	User        string          `json:"user,omitempty"`
	Configured  bool            `json:"configured"`
	HasSnapshot bool            `json:"has_snapshot"`
	Snapshot    json.RawMessage `json:"snapshot,omitempty"`
	BucketCount *int            `json:"bucket_count,omitempty"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool
	var studyGoal int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the last partner snapshot notifications were sent for",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := application.NewEngine(app.profiles, nil, app.snapshots, nil, app.logger, nil)

			status, err := engine.Status(cmd.Context())
			if err != nil {
				return err
			}

			return writeStatusOutput(cmd, app, status, studyGoal, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	cmd.Flags().IntVar(&studyGoal, "study-goal", 0, "Show a progress bar towards this many study sessions")

	return cmd
}

func writeStatusOutput(cmd *cobra.Command, app *app, status application.Status, studyGoal int, asJSON bool) error {
	if asJSON {
		out := statusJSON{
			Partner:     status.Profile.Partner,
			User:        status.Profile.Name,
			Configured:  status.Configured,
			HasSnapshot: status.HasSnapshot,
		}
		if status.HasSnapshot {
			out.Snapshot = json.RawMessage(status.Raw)
		}
		if status.Configured && status.BucketCount >= 0 {
			count := status.BucketCount
			out.BucketCount = &count
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	opts := statusadapter.RenderOptions{}
	if studyGoal > 0 {
		opts.BarWidth = 20
		opts.StudyGoal = studyGoal
	}

	rendered, err := app.statusRenderer(status, opts)
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
