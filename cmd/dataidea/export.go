package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/apperr"
	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/export"
	bomio "github.com/dataidea/dataidea-cli/internal/io"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as a CycloneDX BOM",
	Long:  "Exports matching datasets as a CycloneDX BOM with one data component per dataset. Writes to stdout unless --file is given.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	path := viper.GetString("export.file")
	format, err := bomio.ResolveBOMFormat(path, viper.GetString("export.format"))
	if err != nil {
		return apperr.User(err.Error())
	}
	spec := viper.GetString("export.spec")
	if spec != "" {
		if _, ok := bomio.ParseSpecVersion(spec); !ok {
			return apperr.Userf("unsupported --spec %q", spec)
		}
	}
	sortKey, ok := catalog.ParseSortKey(viper.GetString("export.sort"))
	if !ok {
		return apperr.Userf("invalid --sort %q (expected newest|oldest|popular|a-z|z-a)", viper.GetString("export.sort"))
	}
	analytics.Track("/datasets/export")

	session := newSession()
	spin := startSpinner("Loading datasets")
	err = session.Load(commandContext(cmd))
	spin.Stop(false, "")
	if err != nil {
		newCatalogUI(cmd).PrintError(session.Err())
		return err
	}

	matched := catalog.Filter(session.Datasets(), viper.GetString("export.search"), viper.GetString("export.category"))
	catalog.Sort(matched, sortKey)

	bom := export.Build(matched, export.Options{
		SiteURL:     viper.GetString("export.site-url"),
		ToolVersion: export.Version(),
	})

	if path == "" {
		return bomio.EncodeBOM(cmd.OutOrStdout(), bom, format, spec)
	}
	if err := bomio.WriteBOM(bom, path, format, spec); err != nil {
		return err
	}
	if !app.settings.Quiet() {
		fmt.Fprintf(os.Stderr, "%s Wrote %d datasets to %s\n", ui.GetCheckMark(), len(matched), ui.Secondary.Render(path))
	}
	return nil
}

func init() {
	exportCmd.Flags().StringP("file", "f", "", "Write the BOM to this path instead of stdout")
	exportCmd.Flags().String("format", "auto", "BOM format: json|xml|auto (auto follows the file extension)")
	exportCmd.Flags().String("spec", "", "CycloneDX spec version, e.g. 1.6 (default latest)")
	exportCmd.Flags().StringP("search", "s", "", "Only export datasets matching this text")
	exportCmd.Flags().StringP("category", "c", "", "Only export datasets in this category")
	exportCmd.Flags().String("sort", "newest", "Component order: newest|oldest|popular|a-z|z-a")
	exportCmd.Flags().String("site-url", export.DefaultSiteURL, "Public site used for dataset page links")

	for _, name := range []string{"file", "format", "spec", "search", "category", "sort", "site-url"} {
		viper.BindPFlag("export."+name, exportCmd.Flags().Lookup(name))
	}
}
