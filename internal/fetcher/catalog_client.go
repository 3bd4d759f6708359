package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dataidea/dataidea-cli/internal/catalog"
)

// DefaultBaseURL is the catalog API root used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api"

// CatalogClient reads datasets and categories from the catalog API and registers
// downloads. It holds no state besides its configuration.
type CatalogClient struct {
	Client  *http.Client
	BaseURL string // optional; defaults to DefaultBaseURL
}

func (c *CatalogClient) base() string { return trimBaseURL(c.BaseURL, DefaultBaseURL) }

// Datasets fetches the full dataset list.
func (c *CatalogClient) Datasets(ctx context.Context) ([]catalog.Dataset, error) {
	var out []catalog.Dataset
	if err := getJSON(ctx, c.Client, c.base(), "/datasets/", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchDatasets runs the server-side text search.
func (c *CatalogClient) SearchDatasets(ctx context.Context, query string) ([]catalog.Dataset, error) {
	var out []catalog.Dataset
	q := url.Values{}
	q.Set("search", query)
	if err := getJSON(ctx, c.Client, c.base(), "/datasets/", q, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dataset fetches one dataset by slug. A missing slug yields an error for which
// IsNotFound reports true.
func (c *CatalogClient) Dataset(ctx context.Context, slug string) (*catalog.Dataset, error) {
	var out catalog.Dataset
	path := fmt.Sprintf("/datasets/%s/", slugPath(slug))
	if err := getJSON(ctx, c.Client, c.base(), path, nil, slug, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Featured fetches the curated dataset list shown on the home page.
func (c *CatalogClient) Featured(ctx context.Context) ([]catalog.Dataset, error) {
	var out []catalog.Dataset
	if err := getJSON(ctx, c.Client, c.base(), "/datasets/featured/", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recent fetches the most recently added datasets.
func (c *CatalogClient) Recent(ctx context.Context) ([]catalog.Dataset, error) {
	var out []catalog.Dataset
	if err := getJSON(ctx, c.Client, c.base(), "/datasets/recent/", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type downloadResponse struct {
	DownloadCount int `json:"download_count"`
}

// IncrementDownload registers a download and returns the server's new counter value.
func (c *CatalogClient) IncrementDownload(ctx context.Context, slug string) (int, error) {
	var out downloadResponse
	path := fmt.Sprintf("/datasets/%s/download/", slugPath(slug))
	if err := getJSON(ctx, c.Client, c.base(), path, nil, slug, &out); err != nil {
		return 0, err
	}
	return out.DownloadCount, nil
}

// Categories fetches every category.
func (c *CatalogClient) Categories(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	if err := getJSON(ctx, c.Client, c.base(), "/categories/", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}
