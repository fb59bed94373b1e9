package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/backstory/cmd/backstory-cli/internal/output"
	"github.com/nfrund/backstory/internal/content"
)

var contentFormat string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate and list site content",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a content file the way the server loads it",
	Long: `Parse and validate a TOML content file. Without a path the built-in
content is checked. Exits non-zero when the file would be rejected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		site, err := content.Load(afero.NewOsFs(), path)
		if err != nil {
			return err
		}
		name := path
		if name == "" {
			name = "built-in content"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d journey cards, %d episodes, %d contact details\n",
			name, len(site.Journey.Cards), len(site.Podcast.Episodes), len(site.Contact.Info))
		return nil
	},
}

var contentListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List journey cards and podcast episodes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		site, err := content.Load(afero.NewOsFs(), path)
		if err != nil {
			return err
		}
		t, v := contentTable(site)
		return output.Write(cmd.OutOrStdout(), contentFormat, t, v)
	},
}

type contentItem struct {
	Section string `json:"section"`
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Detail  string `json:"detail"`
}

func contentTable(site *content.Site) (output.Table, []contentItem) {
	var items []contentItem
	for i, c := range site.Journey.Cards {
		items = append(items, contentItem{Section: "journey", Index: i, Title: c.Title, Detail: c.Color})
	}
	for _, tab := range content.Tabs() {
		for i, e := range site.Podcast.Tab(tab) {
			items = append(items, contentItem{Section: "podcast/" + tab, Index: i, Title: e.Title, Detail: e.VideoID})
		}
	}
	for i, c := range site.Contact.Info {
		items = append(items, contentItem{Section: "contact", Index: i, Title: c.Label, Detail: c.Value})
	}

	t := output.Table{Title: site.Meta.Title, Header: []string{"Section", "#", "Title", "Detail"}}
	for _, it := range items {
		t.Rows = append(t.Rows, []any{it.Section, it.Index, output.Truncate(it.Title, 48), it.Detail})
	}
	return t, items
}

func init() {
	contentListCmd.Flags().StringVarP(&contentFormat, "format", "f", output.FormatTable, "Output format (table, json)")
	contentCmd.AddCommand(contentValidateCmd, contentListCmd)
	rootCmd.AddCommand(contentCmd)
}
