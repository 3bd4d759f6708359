package fetcher

import (
	"context"
	"net/http"

	"github.com/dataidea/dataidea-cli/internal/catalog"
)

// DefaultCoursesBaseURL is the school API root. It is a different host from the catalog.
const DefaultCoursesBaseURL = "https://school.dataidea.org/api"

// CourseFetcher lists courses from the school API.
type CourseFetcher struct {
	Client  *http.Client
	BaseURL string // optional; defaults to DefaultCoursesBaseURL
}

// Courses fetches the course list.
func (f *CourseFetcher) Courses(ctx context.Context) ([]catalog.Course, error) {
	var out []catalog.Course
	base := trimBaseURL(f.BaseURL, DefaultCoursesBaseURL)
	if err := getJSON(ctx, f.Client, base, "/school/courses", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}
