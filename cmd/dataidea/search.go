package cmd

import (
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/apperr"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search datasets on the server",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return apperr.User("search query must not be empty")
	}
	analytics.Track("/search?q=" + url.QueryEscape(query))

	spin := startSpinner("Searching")
	results, err := newSession().Search(commandContext(cmd), query)
	spin.Stop(false, "")
	if err != nil {
		return err
	}

	if structured() {
		return writeRecords(cmd, results)
	}
	newCatalogUI(cmd).PrintSearch(query, results)
	return nil
}
