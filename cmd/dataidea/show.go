package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/sources"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a dataset with its source and related datasets",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

type detailRecord struct {
	Dataset  *catalog.Dataset  `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	Related  []catalog.Dataset `json:"related" yaml:"related"`
	Source   *sources.Source   `json:"source,omitempty" yaml:"source,omitempty"`
	External bool              `json:"external" yaml:"external"`
	NotFound bool              `json:"not_found" yaml:"not_found"`
}

func runShow(cmd *cobra.Command, args []string) error {
	slug := args[0]
	analytics.Track("/datasets/" + slug)

	spin := startSpinner("Loading dataset")
	view, err := newSession().Detail(commandContext(cmd), slug)
	spin.Stop(false, "")
	if err != nil {
		return err
	}

	if structured() {
		return writeRecords(cmd, detailRecord{
			Dataset: view.Dataset, Related: view.Related, Source: view.Source,
			External: view.External, NotFound: view.NotFound,
		})
	}

	out := newCatalogUI(cmd)
	if view.NotFound {
		out.PrintNotFound(slug)
		return nil
	}
	out.PrintDetail(view.Dataset, view.Related, view.Source, view.External)
	return nil
}
