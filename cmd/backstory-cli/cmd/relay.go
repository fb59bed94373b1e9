package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nfrund/backstory/internal/config"
	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/relay"
)

var (
	relayQuick   bool
	relayEmail   string
	relayMessage string
)

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Work with the email relay",
}

var relaySendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit one test message through the configured relay",
	Long: `Build the relay from the environment (.env is read if present) and submit
one test message through the same validation and dispatch path as the site.

Examples:
  RELAY_PROVIDER=log backstory-cli relay send --email me@example.com
  backstory-cli relay send --quick --email me@example.com --message "Ping"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		// Sessions are a server concern; the CLI never signs a cookie.
		if _, ok := os.LookupEnv("SESSION_SECRET"); !ok {
			os.Setenv("SESSION_SECRET", "cli")
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		r, err := relay.New(cfg, slog.Default())
		if err != nil {
			return err
		}

		form, fields := domain.FormInquiry, contact.Fields{
			Name:    "backstory-cli",
			Email:   relayEmail,
			Subject: "Relay test",
			Message: relayMessage,
		}
		if relayQuick {
			form, fields = domain.FormQuick, contact.Fields{QuickEmail: relayEmail, QuickMessage: relayMessage}
		}

		svc := contact.NewService(r, cfg.GetRelayProvider(),
			contact.Templates{Inquiry: cfg.GetRelayTemplateInquiry(), Quick: cfg.GetRelayTemplateQuick()}, nil)
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GetRelayTimeout()+time.Second)
		defer cancel()

		sub := svc.Submit(ctx, form, fields)
		fmt.Fprintf(cmd.OutOrStdout(), "%s via %s: %s\n", form, cfg.GetRelayProvider(), sub.Status.Message())
		if sub.Status.IsError() {
			if sub.Err != nil {
				return sub.Err
			}
			return fmt.Errorf("submission rejected: %s", sub.Status)
		}
		return nil
	},
}

func init() {
	relaySendCmd.Flags().BoolVar(&relayQuick, "quick", false, "Use the quick message form")
	relaySendCmd.Flags().StringVar(&relayEmail, "email", "", "Sender email address")
	relaySendCmd.Flags().StringVar(&relayMessage, "message", "This is a test message from backstory-cli.", "Message body")
	relayCmd.AddCommand(relaySendCmd)
	rootCmd.AddCommand(relayCmd)
}
