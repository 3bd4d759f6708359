package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/browse"
	"github.com/dataidea/dataidea-cli/internal/config"
	"github.com/dataidea/dataidea-cli/internal/downloads"
	"github.com/dataidea/dataidea-cli/internal/export"
	"github.com/dataidea/dataidea-cli/internal/fetcher"
	bomio "github.com/dataidea/dataidea-cli/internal/io"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dataidea",
	Short: "Browse the DataIdea dataset catalog from the terminal",
	Long:  longDescription,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return setup()
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return flushAnalytics()
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var (
	cfgFile string
	noColor bool
	version string
)

// app holds what every command needs once flags and config are resolved.
var app struct {
	settings *config.Settings
	catalog  *fetcher.CatalogClient
	courses  *fetcher.CourseFetcher
	views    *analytics.PrometheusSink
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	export.BuildVersion = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dataidea.yaml or ./config/defaults.yaml)")
	pf.String(config.KeyAPIURL, "", "Catalog API base URL (default "+fetcher.DefaultBaseURL+")")
	pf.String(config.KeyCoursesURL, "", "Course API base URL (default "+fetcher.DefaultCoursesBaseURL+")")
	pf.Int(config.KeyTimeout, 0, "HTTP timeout in seconds (0 = none)")
	pf.String(config.KeyLogLevel, "", "Log level: quiet|standard|debug")
	pf.StringP(config.KeyOutput, "o", "", "Output format: text|json|yaml")
	pf.String(config.KeyAnalyticsFile, "", "Write page-view counters to this file (Prometheus text format)")
	pf.Int(config.KeyPageSize, 0, "Datasets per page (default 9)")
	pf.BoolVar(&noColor, "no-color", false, "Disable colours and animations")

	for _, key := range []string{
		config.KeyAPIURL, config.KeyCoursesURL, config.KeyTimeout, config.KeyLogLevel,
		config.KeyOutput, config.KeyAnalyticsFile, config.KeyPageSize,
	} {
		viper.BindPFlag(key, pf.Lookup(key))
	}
	config.SetDefaults(viper.GetViper())

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(
		homeCmd, datasetsCmd, categoriesCmd, showCmd, searchCmd, downloadCmd,
		coursesCmd, sourceCmd, browseCmd, exportCmd, aboutCmd,
	)
}

func initConfig() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Warning.Render(err.Error()))
	}

	// DATAIDEA_API_URL, DATAIDEA_LOG_LEVEL, DATAIDEA_DATASETS_SORT, ...
	viper.SetEnvPrefix("DATAIDEA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
		announceConfig()
		return
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)
	viper.AddConfigPath("./config")

	viper.SetConfigName(".dataidea")
	err = viper.ReadInConfig()

	notFound := &viper.ConfigFileNotFoundError{}
	if err != nil && errors.As(err, notFound) {
		viper.SetConfigName("defaults")
		err = viper.ReadInConfig()
	}

	switch {
	case err != nil && !errors.As(err, notFound):
		cobra.CheckErr(err)
	case err == nil:
		announceConfig()
	}
}

func announceConfig() {
	if strings.EqualFold(viper.GetString(config.KeyLogLevel), "quiet") {
		return
	}
	fmt.Fprintln(os.Stderr, ui.Dim.Render("Using config file: ")+ui.Secondary.Render(viper.ConfigFileUsed()))
}

// setup resolves settings and wires clients, loggers and analytics.
func setup() error {
	s, err := config.Resolve(viper.GetViper())
	if err != nil {
		return err
	}
	app.settings = s

	ui.Init(noColor || os.Getenv("NO_COLOR") != "" || s.Output != "text")

	if s.Debug() {
		fetcher.SetLogger(os.Stderr)
		downloads.SetLogger(os.Stderr)
		browse.SetLogger(os.Stderr)
		analytics.SetLogger(os.Stderr)
		export.SetLogger(os.Stderr)
	}

	httpClient := fetcher.NewClient(s.Timeout, s.UserAgent+"/"+export.Version())
	app.catalog = &fetcher.CatalogClient{Client: httpClient, BaseURL: s.APIURL}
	app.courses = &fetcher.CourseFetcher{Client: httpClient, BaseURL: s.CoursesURL}

	if app.views == nil {
		app.views = analytics.NewPrometheusSink()
		analytics.Init(app.views)
	}
	return nil
}

func flushAnalytics() error {
	if app.settings == nil || app.settings.AnalyticsFile == "" || app.views == nil {
		return nil
	}
	if err := app.views.WriteTextfile(app.settings.AnalyticsFile); err != nil {
		return fmt.Errorf("write analytics file: %w", err)
	}
	return nil
}

// newSession creates a browse session backed by the catalog API.
func newSession() *browse.Session {
	return browse.NewSession(app.catalog, app.settings.PageSize)
}

// newCatalogUI returns the text renderer, silenced for quiet or structured output.
func newCatalogUI(cmd *cobra.Command) *ui.CatalogUI {
	return ui.NewCatalogUI(cmd.OutOrStdout(), app.settings.Quiet() || structured())
}

// structured reports whether records are printed as JSON or YAML instead of text.
func structured() bool {
	return app.settings.Output == "json" || app.settings.Output == "yaml"
}

func writeRecords(cmd *cobra.Command, v any) error {
	return bomio.EncodeRecords(cmd.OutOrStdout(), app.settings.Output, v)
}

// startSpinner shows a spinner on stderr for text output.
func startSpinner(message string) *ui.Spinner {
	s := ui.NewSpinner(os.Stderr, message)
	if !app.settings.Quiet() && !structured() {
		s.Start()
	}
	return s
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

const longDescription = "Browse, search and download datasets from the DataIdea catalog. Datasets hosted on external providers such as Kaggle or GitHub are labelled with their source."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.RenderGradientBanner(ui.BannerASCII) + "\n" + longDescription
}
