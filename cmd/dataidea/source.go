package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/apperr"
	"github.com/dataidea/dataidea-cli/internal/sources"
)

var sourceCmd = &cobra.Command{
	Use:   "source <url>",
	Short: "Show which provider hosts a URL and whether it is external",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := args[0]
		analytics.Track("/source")
		src := sources.Detect(raw)
		external := sources.IsExternalLink(raw)

		if structured() {
			if src == nil {
				return apperr.Userf("%q is not an absolute URL", raw)
			}
			return writeRecords(cmd, struct {
				sources.Source `yaml:",inline"`
				External       bool `json:"external" yaml:"external"`
			}{*src, external})
		}
		newCatalogUI(cmd).PrintSource(raw, src, external)
		if src == nil {
			return apperr.Userf("%q is not an absolute URL", raw)
		}
		return nil
	},
}
