// Package catalog holds the dataset catalog records and the pure query logic applied to
// them on the client: text and category filtering, sorting, pagination, related records
// and category membership counts.
package catalog

import (
	"strings"
	"time"
)

// User is the denormalized author snapshot embedded in a dataset.
type User struct {
	ID        int    `json:"id" yaml:"id"`
	Username  string `json:"username" yaml:"username"`
	Email     string `json:"email" yaml:"email"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
}

// Category groups datasets. Membership lives on the dataset side.
type Category struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Dataset is one catalog entry as returned by the API.
type Dataset struct {
	ID            int        `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Slug          string     `json:"slug" yaml:"slug"`
	Description   string     `json:"description" yaml:"description"`
	File          string     `json:"file" yaml:"file"`
	FileSize      *int64     `json:"file_size,omitempty" yaml:"file_size,omitempty"` // kilobytes
	FileType      string     `json:"file_type,omitempty" yaml:"file_type,omitempty"`
	Categories    []Category `json:"categories" yaml:"categories"`
	Tags          string     `json:"tags" yaml:"tags"`
	Author        User       `json:"author" yaml:"author"`
	SourceURL     string     `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	License       string     `json:"license,omitempty" yaml:"license,omitempty"`
	DownloadCount int        `json:"download_count" yaml:"download_count"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" yaml:"updated_at"`
}

// TagList splits the raw tag string on commas, trimming whitespace and dropping
// empty segments.
func (d Dataset) TagList() []string {
	return splitTags(d.Tags)
}

// HasCategory reports whether the dataset belongs to the category with the given slug.
func (d Dataset) HasCategory(slug string) bool {
	for _, c := range d.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// HasCategoryID reports whether the dataset belongs to the category with the given id.
func (d Dataset) HasCategoryID(id int) bool {
	for _, c := range d.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Course is a learning course listed next to the catalog.
type Course struct {
	ID                int      `json:"id" yaml:"id"`
	Title             string   `json:"title" yaml:"title"`
	Description       string   `json:"description" yaml:"description"`
	Level             string   `json:"level" yaml:"level"`
	Duration          string   `json:"duration" yaml:"duration"`
	Skills            []string `json:"skills" yaml:"skills"`
	FreeResourcesLink string   `json:"free_resources_link,omitempty" yaml:"free_resources_link,omitempty"`
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
