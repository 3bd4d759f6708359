package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/ui/browser"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		analytics.Track("/datasets")
		return browser.Run(commandContext(cmd), newSession())
	},
}
