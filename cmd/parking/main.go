package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/EpicMandM/parking-lot/internal/app"
	"github.com/EpicMandM/parking-lot/internal/config"
	"github.com/EpicMandM/parking-lot/internal/logger"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagEnvFile string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "parking",
	Short:         "Reserve and vacate parking spaces from a text form",
	Long:          "Starts an interactive shell over an in-memory parking lot. State is discarded on exit.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runShell,
}

var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "Print every space with its current price and status",
	Args:  cobra.NoArgs,
	RunE:  runSpaces,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "seed catalog TOML file (overrides PARKING_SEED_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", getEnvOrDefault("PARKING_ENV_FILE", ".env"), "optional .env file")

	rootCmd.AddCommand(spacesCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.Run(cmd.Context(), cmd.InOrStdin())
}

func runSpaces(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.PrintSpaces()
}

func newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.LoadWithFile(flagEnvFile)
	if err != nil {
		return nil, err
	}
	if flagConfig != "" {
		cfg.SeedPath = flagConfig
	}

	log := newLogger(cfg.LogOutput, cmd.OutOrStdout(), cmd.ErrOrStderr())
	a := app.New(cfg, log, cmd.OutOrStdout())
	if err := a.Initialize(cmd.Context()); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	return a, nil
}

// newLogger maps PARKING_LOG_OUTPUT to a writer.
func newLogger(target string, stdout, stderr io.Writer) *logger.Logger {
	switch target {
	case config.LogNone:
		return logger.Discard()
	case config.LogStdout:
		return logger.NewWithWriter(stdout)
	default:
		return logger.NewWithWriter(stderr)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
