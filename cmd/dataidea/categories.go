package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/catalog"
)

// popularCategoryCount is how many categories the popular section shows.
const popularCategoryCount = 4

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their dataset counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

type categoryRecord struct {
	catalog.Category `yaml:",inline"`
	DatasetCount     int `json:"dataset_count" yaml:"dataset_count"`
}

func runCategories(cmd *cobra.Command, args []string) error {
	analytics.Track("/categories")

	session := newSession()
	spin := startSpinner("Loading categories")
	err := session.Load(commandContext(cmd))
	spin.Stop(false, "")
	if err != nil {
		newCatalogUI(cmd).PrintError(session.Err())
		return err
	}

	datasets := session.Datasets()
	categories := session.Categories()
	counts := catalog.CategoryCounts(datasets)
	query := viper.GetString("categories.search")
	filtered := catalog.FilterCategories(categories, query)

	if structured() {
		out := make([]categoryRecord, 0, len(filtered))
		for _, c := range filtered {
			out = append(out, categoryRecord{Category: c, DatasetCount: counts[c.ID]})
		}
		return writeRecords(cmd, out)
	}

	popular := catalog.PopularCategories(categories, datasets, popularCategoryCount)
	newCatalogUI(cmd).PrintCategories(popular, filtered, counts, query)
	return nil
}

func init() {
	categoriesCmd.Flags().StringP("search", "s", "", "Filter categories by name or description")
	viper.BindPFlag("categories.search", categoriesCmd.Flags().Lookup("search"))
}
