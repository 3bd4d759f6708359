// Package browse keeps the in-memory catalog for one browsing session: the initial
// load, the derived pages, the detail view and download counting. Responses to
// superseded requests are discarded through Generations.
package browse

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/downloads"
	"github.com/dataidea/dataidea-cli/internal/fetcher"
	"github.com/dataidea/dataidea-cli/internal/sources"
)

// LoadErrorMessage is shown when the initial catalog load fails.
const LoadErrorMessage = "Failed to load datasets. Please try again later."

// ErrStale is returned when a response arrived after a newer request was dispatched.
var ErrStale = errors.New("stale response discarded")

// DetailView is everything the dataset detail page renders.
type DetailView struct {
	Dataset  *catalog.Dataset
	Related  []catalog.Dataset
	Source   *sources.Source
	External bool
	NotFound bool
}

// Session owns the loaded records and the browsing state. Every method takes the
// session lock, so the interactive browser may load and query from different goroutines.
type Session struct {
	api Catalog

	mu         sync.Mutex
	datasets   []catalog.Dataset
	categories []catalog.Category
	state      *catalog.QueryState
	loading    bool
	errMsg     string

	searches Generations
	details  Generations
}

// NewSession creates an empty session. pageSize <= 0 uses catalog.DefaultPageSize.
func NewSession(api Catalog, pageSize int) *Session {
	return &Session{api: api, state: catalog.NewQueryState(pageSize)}
}

// Load fetches datasets and categories concurrently. Both must succeed: on failure the
// records stay empty and Err reports LoadErrorMessage.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	var (
		ds []catalog.Dataset
		cs []catalog.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds, err = s.api.Datasets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cs, err = s.api.Categories(gctx)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		logf("", "load failed (%v)", err)
		s.datasets = nil
		s.categories = nil
		s.errMsg = LoadErrorMessage
		return err
	}
	logf("", "loaded datasets=%d categories=%d", len(ds), len(cs))
	s.datasets = ds
	s.categories = cs
	s.state.ResetPage()
	return nil
}

// Loading reports whether a Load is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the user-facing load error, or "".
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Datasets returns a copy of the loaded records.
func (s *Session) Datasets() []catalog.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Dataset(nil), s.datasets...)
}

// Categories returns a copy of the loaded categories.
func (s *Session) Categories() []catalog.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Category(nil), s.categories...)
}

func (s *Session) withState(fn func(*catalog.QueryState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// SetQuery sets the free-text filter. A changed value moves back to page 1.
func (s *Session) SetQuery(q string) { s.withState(func(st *catalog.QueryState) { st.SetQuery(q) }) }

// SetCategory sets the category slug filter. A changed value moves back to page 1.
func (s *Session) SetCategory(slug string) {
	s.withState(func(st *catalog.QueryState) { st.SetCategory(slug) })
}

// SetSort sets the sort order. A changed value moves back to page 1.
func (s *Session) SetSort(k catalog.SortKey) { s.withState(func(st *catalog.QueryState) { st.SetSort(k) }) }

// SetPage selects the page to show.
func (s *Session) SetPage(p int) { s.withState(func(st *catalog.QueryState) { st.SetPage(p) }) }

// ClearFilters drops query, category and sort and returns to page 1.
func (s *Session) ClearFilters() { s.withState(func(st *catalog.QueryState) { st.Clear() }) }

// Params returns a snapshot of the browsing parameters.
func (s *Session) Params() catalog.QueryParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Params()
}

// Page runs the query pipeline over the loaded records with the current parameters.
func (s *Session) Page() catalog.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Apply(s.datasets, s.state.Params())
}

// Detail fetches one dataset and derives its related records and the source badge of
// its file. A missing slug is reported through DetailView.NotFound, not as an error.
func (s *Session) Detail(ctx context.Context, slug string) (*DetailView, error) {
	gen := s.details.Next()
	d, err := s.api.Dataset(ctx, slug)
	if !s.details.Current(gen) {
		logf(slug, "detail response discarded")
		return nil, ErrStale
	}
	if err != nil {
		if fetcher.IsNotFound(err) {
			logf(slug, "not found")
			return &DetailView{NotFound: true}, nil
		}
		return nil, err
	}

	all := s.Datasets()
	if len(all) == 0 {
		// Related records are best effort when the list was never loaded.
		if all, err = s.api.Datasets(ctx); err != nil {
			logf(slug, "related lookup failed (%v)", err)
			all = nil
		}
	}

	view := &DetailView{
		Dataset:  d,
		Related:  catalog.Related(*d, all, catalog.RelatedLimit),
		External: sources.IsExternalLink(d.File),
	}
	if view.External {
		view.Source = sources.Detect(d.File)
	}
	return view, nil
}

// Download registers a download for slug and stores the server's count on the
// in-memory record. ok is false when the server call failed.
func (s *Session) Download(ctx context.Context, slug string) (count int, ok bool) {
	s.mu.Lock()
	current := 0
	for _, d := range s.datasets {
		if d.Slug == slug {
			current = d.DownloadCount
			break
		}
	}
	s.mu.Unlock()

	counter := downloads.NewCounter(current, s.api)
	count, ok = counter.Record(ctx, slug)
	if !ok {
		return count, false
	}

	s.mu.Lock()
	for i := range s.datasets {
		if s.datasets[i].Slug == slug {
			s.datasets[i].DownloadCount = count
		}
	}
	s.mu.Unlock()
	return count, true
}

// Search runs the server-side text search. If another Search was started before this
// one resolved, the result is dropped and ErrStale is returned.
func (s *Session) Search(ctx context.Context, query string) ([]catalog.Dataset, error) {
	gen := s.searches.Next()
	query = strings.TrimSpace(query)
	res, err := s.api.SearchDatasets(ctx, query)
	if !s.searches.Current(gen) {
		logf("", "search %q superseded", query)
		return nil, ErrStale
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
