/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/motivate-be/config"
	"github.com/tieubaoca/motivate-be/service"
	"github.com/tieubaoca/motivate-be/utils"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "motivate-be",
	Short: "Motivational coaching relay in front of an AI provider",
	Long: `motivate-be wraps questions in a motivational coaching prompt, sends them
to the configured AI provider (Anthropic, OpenAI-compatible or Gemini) and
returns the reply.

  motivate-be start                         serve the web UI and JSON API
  motivate-be ask "become a better runner"  ask once from the terminal
  motivate-be ping                          check provider credentials`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.yaml", "config file (missing file means defaults)")
	rootCmd.PersistentFlags().String("provider", "", "override the configured provider (anthropic, openai, gemini)")
	rootCmd.PersistentFlags().String("log-level", "", "override the configured log level")
}

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		cfg.Provider = provider
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return utils.NewLogger(cfg.Log.Level, cfg.Log.Format)
}

// newMotivationService builds the provider and the relay on top of it. A
// missing credential is not fatal: the relay reports it on every call.
func newMotivationService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*service.MotivationService, func(), error) {
	cleanup := func() {}

	ai, err := service.NewAIService(ctx, cfg)
	switch {
	case errors.Is(err, service.ErrMissingCredential):
		logger.Warn("provider credential is not configured; requests will fail until it is set",
			zap.String("provider", cfg.Provider))
		ai = nil
	case err != nil:
		return nil, cleanup, fmt.Errorf("create %s provider: %w", cfg.Provider, err)
	default:
		if closer, ok := ai.(io.Closer); ok {
			cleanup = func() {
				if err := closer.Close(); err != nil {
					logger.Warn("close provider", zap.Error(err))
				}
			}
		}
		logger.Info("provider ready",
			zap.String("provider", cfg.Provider),
			zap.String("model", cfg.Model()))
	}

	motivation := service.NewMotivationService(ai, service.MotivationConfig{
		MaxTokens:           cfg.Relay.MaxTokens,
		DiagnosticMaxTokens: cfg.Relay.DiagnosticMaxTokens,
		RequestTimeout:      cfg.Server.RequestTimeout,
	}, logger)
	return motivation, cleanup, nil
}
