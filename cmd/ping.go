/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/motivate-be/service"
)

// pingCmd sends the diagnostic message, the same call GET /api/test makes.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Verify the provider credential with a test message",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		motivation, cleanup, err := newMotivationService(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		text, err := motivation.Diagnose(cmd.Context())
		switch {
		case errors.Is(err, service.ErrMissingCredential):
			return errors.New(service.MsgKeyNotConfigured)
		case service.IsAuthenticationError(err):
			return errors.New(service.MsgInvalidAPIKey)
		case err != nil:
			return fmt.Errorf("%s: %w", service.MsgTestFailed, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s, %s)\n", service.MsgTestSucceeded, cfg.Provider, cfg.Model())
		fmt.Fprintln(out, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
