package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dataidea/dataidea-cli/internal/analytics"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "About DataIdea",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		analytics.Track("/about")
		newCatalogUI(cmd).PrintAbout()
	},
}
