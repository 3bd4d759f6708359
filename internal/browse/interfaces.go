package browse

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/dataidea/dataidea-cli/internal/catalog"
)

// Catalog is the part of the catalog API a session needs.
// *fetcher.CatalogClient satisfies it.
type Catalog interface {
	Datasets(ctx context.Context) ([]catalog.Dataset, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
	Dataset(ctx context.Context, slug string) (*catalog.Dataset, error)
	SearchDatasets(ctx context.Context, query string) ([]catalog.Dataset, error)
	IncrementDownload(ctx context.Context, slug string) (int, error)
}
