package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "together",
		Short:         "together: get notified when your partner's shared state changes",
		Long:          "together polls the shared couple state, compares your partner's part of it with the last snapshot it notified for, and posts a notification for each meaningful change (activity, mood, study, games, coupons, points, bucket list).",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.logger.SetOutput(cmd.ErrOrStderr())
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.Close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProfileCmd(app),
		newStatusCmd(app),
		newOnceCmd(app),
		newWatchCmd(app),
		newScheduleCmd(app),
	)

	return rootCmd
}
