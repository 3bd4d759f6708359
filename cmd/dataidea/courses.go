package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dataidea/dataidea-cli/internal/analytics"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List DataIdea school courses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		analytics.Track("/courses")

		spin := startSpinner("Loading courses")
		courses, err := app.courses.Courses(commandContext(cmd))
		spin.Stop(false, "")
		if err != nil {
			return err
		}
		if structured() {
			return writeRecords(cmd, courses)
		}
		newCatalogUI(cmd).PrintCourses(courses)
		return nil
	},
}
