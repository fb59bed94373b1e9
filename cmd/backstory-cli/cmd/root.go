package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/backstory/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "backstory-cli",
	Short: "Backstory site tooling",
	Long: `backstory-cli inspects and exercises the site without a browser.

Available commands:
  content   Validate and list site content files
  choreo    Print, sample and simulate the scroll choreography
  relay     Send a test message through the configured email relay
  topics    List the events published by the contact forms

Use "backstory-cli [command] --help" for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logging.NewWithWriter(os.Stderr, os.Getenv("LOG_FORMAT"), logLevel))
	},
}

var logLevel string

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
