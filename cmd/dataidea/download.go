package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/apperr"
	"github.com/dataidea/dataidea-cli/internal/downloads"
	"github.com/dataidea/dataidea-cli/internal/fetcher"
	"github.com/dataidea/dataidea-cli/internal/sources"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

var downloadCmd = &cobra.Command{
	Use:   "download <slug>",
	Short: "Register a download and print the file location",
	Long:  "Registers a download with the catalog and prints where the file can be fetched. Datasets hosted on external sites ask for confirmation first unless --yes is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownload,
}

type downloadRecord struct {
	Slug          string `json:"slug" yaml:"slug"`
	URL           string `json:"url" yaml:"url"`
	External      bool   `json:"external" yaml:"external"`
	DownloadCount int    `json:"download_count" yaml:"download_count"`
	Registered    bool   `json:"registered" yaml:"registered"`
}

func runDownload(cmd *cobra.Command, args []string) error {
	slug := args[0]
	ctx := commandContext(cmd)
	analytics.Track("/datasets/" + slug + "/download")

	d, err := app.catalog.Dataset(ctx, slug)
	if err != nil {
		if fetcher.IsNotFound(err) {
			newCatalogUI(cmd).PrintNotFound(slug)
			return apperr.Userf("dataset %q not found", slug)
		}
		return err
	}

	link := strings.TrimSpace(d.File)
	if link == "" {
		return apperr.Userf("dataset %q has no file to download", slug)
	}
	external := sources.IsExternalLink(link)

	if external && !viper.GetBool("download.yes") {
		if structured() || app.settings.Quiet() {
			return apperr.User("external download needs confirmation; pass --yes")
		}
		if err := ui.ConfirmExternalDownload(d.Title, link); err != nil {
			return err
		}
	}

	counter := downloads.NewCounter(d.DownloadCount, app.catalog)
	count, ok := counter.Record(ctx, slug)

	if structured() {
		return writeRecords(cmd, downloadRecord{
			Slug: slug, URL: link, External: external, DownloadCount: count, Registered: ok,
		})
	}
	newCatalogUI(cmd).PrintDownload(slug, link, count, ok)
	return nil
}

func init() {
	downloadCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation for external sources")
	viper.BindPFlag("download.yes", downloadCmd.Flags().Lookup("yes"))
}
