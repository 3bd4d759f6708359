// Package client is the public entry point for programs that want to read the
// DataIdea catalog without the CLI.
package client

import (
	"context"
	"time"

	"github.com/dataidea/dataidea-cli/internal/browse"
	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/downloads"
	"github.com/dataidea/dataidea-cli/internal/fetcher"
	"github.com/dataidea/dataidea-cli/internal/sources"
)

type (
	Dataset     = catalog.Dataset
	Category    = catalog.Category
	Course      = catalog.Course
	User        = catalog.User
	QueryParams = catalog.QueryParams
	Result      = catalog.Result
	SortKey     = catalog.SortKey
	Source      = sources.Source
	Session     = browse.Session
	DetailView  = browse.DetailView
)

const (
	SortNewest  = catalog.SortNewest
	SortOldest  = catalog.SortOldest
	SortPopular = catalog.SortPopular
	SortAZ      = catalog.SortAZ
	SortZA      = catalog.SortZA
)

// Options configure a Client. Zero values select the public defaults.
type Options struct {
	BaseURL    string
	CoursesURL string
	Timeout    time.Duration
	UserAgent  string
	PageSize   int
}

// Client talks to the catalog and course APIs.
type Client struct {
	catalog  *fetcher.CatalogClient
	courses  *fetcher.CourseFetcher
	pageSize int
}

// New returns a Client for opts.
func New(opts Options) *Client {
	hc := fetcher.NewClient(opts.Timeout, opts.UserAgent)
	return &Client{
		catalog:  &fetcher.CatalogClient{Client: hc, BaseURL: opts.BaseURL},
		courses:  &fetcher.CourseFetcher{Client: hc, BaseURL: opts.CoursesURL},
		pageSize: opts.PageSize,
	}
}

func (c *Client) Datasets(ctx context.Context) ([]Dataset, error) { return c.catalog.Datasets(ctx) }

func (c *Client) Dataset(ctx context.Context, slug string) (*Dataset, error) {
	return c.catalog.Dataset(ctx, slug)
}

func (c *Client) Search(ctx context.Context, q string) ([]Dataset, error) {
	return c.catalog.SearchDatasets(ctx, q)
}

func (c *Client) Featured(ctx context.Context) ([]Dataset, error) { return c.catalog.Featured(ctx) }

func (c *Client) Recent(ctx context.Context) ([]Dataset, error) { return c.catalog.Recent(ctx) }

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	return c.catalog.Categories(ctx)
}

func (c *Client) Courses(ctx context.Context) ([]Course, error) { return c.courses.Courses(ctx) }

// NewSession returns a browsing session backed by this client. Call Load before
// reading pages from it.
func (c *Client) NewSession() *Session {
	return browse.NewSession(c.catalog, c.pageSize)
}

// RecordDownload registers a download of d and returns the count to display.
// ok is false when the server did not confirm the new count, in which case the
// dataset's current count is returned.
func (c *Client) RecordDownload(ctx context.Context, d Dataset) (count int, ok bool) {
	return downloads.NewCounter(d.DownloadCount, c.catalog).Record(ctx, d.Slug)
}

// IsNotFound reports whether err is a 404 from the catalog API.
func IsNotFound(err error) bool { return fetcher.IsNotFound(err) }

// Query filters, sorts and paginates records without modifying them.
func Query(records []Dataset, p QueryParams) Result { return catalog.Apply(records, p) }

// ParseSortKey normalises s and reports whether it names a sort order.
func ParseSortKey(s string) (SortKey, bool) { return catalog.ParseSortKey(s) }

// DetectSource returns the provider hosting rawURL, or nil for a relative or invalid URL.
func DetectSource(rawURL string) *Source { return sources.Detect(rawURL) }

// IsExternalLink reports whether rawURL points away from DataIdea.
func IsExternalLink(rawURL string) bool { return sources.IsExternalLink(rawURL) }
