/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/motivate-be/service"
	"go.uber.org/zap"
)

// askCmd runs the relay once from the terminal.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the motivational coach one question",
	Args:  cobra.MinimumNArgs(1),
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

		text, err := motivation.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			logger.Debug("ask failed", zap.Error(err))
			return fmt.Errorf("%s", service.RelayMessage(service.KindOf(err)))
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
