package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nfrund/backstory/cmd/backstory-cli/internal/output"
	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/pubsub"
)

var topicsFormat string

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Inspect the in-process event topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every registered event topic",
	Long: `List the events the site publishes on its in-process bus.

Examples:
  backstory-cli topics list
  backstory-cli topics list --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Referencing the package registers its events.
		_ = contact.EventSent

		topics := pubsub.Topics()
		t := output.Table{Header: []string{"Name", "Description"}}
		for _, tp := range topics {
			t.Rows = append(t.Rows, []any{tp.Name, output.Truncate(tp.Description, 60)})
		}
		return output.Write(cmd.OutOrStdout(), topicsFormat, t, map[string]any{"topics": topics, "count": len(topics)})
	},
}

func init() {
	topicsListCmd.Flags().StringVarP(&topicsFormat, "format", "f", output.FormatTable, "Output format (table, json)")
	topicsCmd.AddCommand(topicsListCmd)
	rootCmd.AddCommand(topicsCmd)
}
