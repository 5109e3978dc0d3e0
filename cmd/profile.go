package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the local pairing profile",
	}

	cmd.AddCommand(
		newProfileSetCmd(app),
		newProfileShowCmd(app),
	)

	return cmd
}

func newProfileSetCmd(app *app) *cobra.Command {
	var name string
	var partner string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set your name and the partner to watch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := domain.Profile{
				Name:    strings.TrimSpace(name),
				Partner: strings.TrimSpace(partner),
			}
			if profile.Name != "" && profile.Name == profile.Partner {
				return errors.New("name and partner must differ")
			}

			if err := app.profiles.Save(cmd.Context(), profile); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", profile.Partner)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your own name as it appears in the shared state")
	cmd.Flags().StringVar(&partner, "partner", "", "Partner name to watch")
	_ = cmd.MarkFlagRequired("partner")

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the local pairing profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, ok, err := app.profiles.Get(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"configured": ok && profile.HasPartner(),
					"name":       profile.Name,
					"partner":    profile.Partner,
				})
			}

			if !ok || !profile.HasPartner() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no partner configured")
				return err
			}

			name := profile.Name
			if name == "" {
				name = "(unset)"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\npartner: %s\n", name, profile.Partner)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print profile as JSON")

	return cmd
}
