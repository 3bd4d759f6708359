package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/apperr"
	"github.com/dataidea/dataidea-cli/internal/catalog"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List datasets with search, category filter, sorting and paging",
	Args:  cobra.NoArgs,
	RunE:  runDatasets,
}

type datasetsPage struct {
	Page         int               `json:"page" yaml:"page"`
	PageSize     int               `json:"page_size" yaml:"page_size"`
	TotalPages   int               `json:"total_pages" yaml:"total_pages"`
	TotalMatched int               `json:"total_matched" yaml:"total_matched"`
	Datasets     []catalog.Dataset `json:"datasets" yaml:"datasets"`
}

func runDatasets(cmd *cobra.Command, args []string) error {
	sortKey, ok := catalog.ParseSortKey(viper.GetString("datasets.sort"))
	if !ok {
		return apperr.Userf("invalid --sort %q (expected newest|oldest|popular|a-z|z-a)", viper.GetString("datasets.sort"))
	}
	page := viper.GetInt("datasets.page")
	if page < 1 {
		return apperr.Userf("invalid --page %d (must be 1 or greater)", page)
	}
	category := viper.GetString("datasets.category")

	route := "/datasets"
	if category != "" {
		route += "?category=" + category
	}
	analytics.Track(route)

	session := newSession()
	spin := startSpinner("Loading datasets")
	err := session.Load(commandContext(cmd))
	spin.Stop(false, "")
	if err != nil {
		newCatalogUI(cmd).PrintError(session.Err())
		return err
	}

	session.SetQuery(viper.GetString("datasets.search"))
	session.SetCategory(category)
	session.SetSort(sortKey)
	// Set last: the setters above move back to page 1.
	session.SetPage(page)

	res := session.Page()
	p := session.Params()
	if structured() {
		return writeRecords(cmd, datasetsPage{
			Page: p.Page, PageSize: p.PageSize, TotalPages: res.TotalPages,
			TotalMatched: res.TotalMatched, Datasets: res.Page,
		})
	}
	newCatalogUI(cmd).PrintDatasetPage(res, p)
	return nil
}

func init() {
	datasetsCmd.Flags().StringP("search", "s", "", "Free-text filter on title, description and tags")
	datasetsCmd.Flags().StringP("category", "c", "", "Category slug")
	datasetsCmd.Flags().String("sort", "newest", "Sort order: newest|oldest|popular|a-z|z-a")
	datasetsCmd.Flags().IntP("page", "p", 1, "Page number")

	viper.BindPFlag("datasets.search", datasetsCmd.Flags().Lookup("search"))
	viper.BindPFlag("datasets.category", datasetsCmd.Flags().Lookup("category"))
	viper.BindPFlag("datasets.sort", datasetsCmd.Flags().Lookup("sort"))
	viper.BindPFlag("datasets.page", datasetsCmd.Flags().Lookup("page"))
}
