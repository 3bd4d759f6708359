package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dataidea/dataidea-cli/internal/analytics"
	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/ui"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show featured datasets, recent additions and courses",
	Args:  cobra.NoArgs,
	RunE:  runHome,
}

type homeRecord struct {
	Featured []catalog.Dataset `json:"featured" yaml:"featured"`
	Recent   []catalog.Dataset `json:"recent" yaml:"recent"`
	Courses  []catalog.Course  `json:"courses" yaml:"courses"`
	Errors   map[string]string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type homeSection struct {
	name  string
	title string
	load  func(ctx context.Context) (int, error)
}

func runHome(cmd *cobra.Command, args []string) error {
	analytics.Track("/")
	ctx := commandContext(cmd)

	var rec homeRecord
	sections := []homeSection{
		{"featured", "Featured datasets", func(ctx context.Context) (n int, err error) {
			rec.Featured, err = app.catalog.Featured(ctx)
			return len(rec.Featured), err
		}},
		{"recent", "Recently added", func(ctx context.Context) (n int, err error) {
			rec.Recent, err = app.catalog.Recent(ctx)
			return len(rec.Recent), err
		}},
		{"courses", "Courses", func(ctx context.Context) (n int, err error) {
			rec.Courses, err = app.courses.Courses(ctx)
			return len(rec.Courses), err
		}},
	}

	var progress io.Writer = os.Stderr
	if structured() || app.settings.Quiet() {
		progress = io.Discard
	}
	wf := ui.NewWorkflow(progress)
	for _, s := range sections {
		wf.AddTask(s.title)
	}
	wf.Start()

	// Sections fail independently, so the goroutines never return an error.
	errs := make([]error, len(sections))
	var g errgroup.Group
	for i, s := range sections {
		g.Go(func() error {
			wf.StartTask(i, "loading")
			n, err := s.load(ctx)
			if err != nil {
				errs[i] = err
				wf.FailTask(i, err.Error())
				return nil
			}
			wf.CompleteTask(i, countOf(n))
			return nil
		})
	}
	g.Wait()
	wf.Stop()

	failed := 0
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed++
		if rec.Errors == nil {
			rec.Errors = map[string]string{}
		}
		rec.Errors[sections[i].name] = err.Error()
	}

	if structured() {
		if err := writeRecords(cmd, rec); err != nil {
			return err
		}
	} else {
		out := newCatalogUI(cmd)
		if errs[0] == nil {
			out.PrintDatasetList("Featured datasets", rec.Featured)
		}
		if errs[1] == nil {
			out.PrintDatasetList("Recently added", rec.Recent)
		}
		if errs[2] == nil {
			out.PrintCourses(rec.Courses)
		}
	}

	if failed == len(sections) {
		return errors.Join(errs...)
	}
	return nil
}

func countOf(n int) string {
	if n == 1 {
		return "1 item"
	}
	return ui.FormatNumber(n) + " items"
}
