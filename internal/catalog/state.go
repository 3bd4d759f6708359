package catalog

// QueryState is the caller-side browsing state. Any change to the text query, the
// category or the sort key moves back to page 1 so a narrowed result set never lands
// on an out-of-range page.
type QueryState struct {
	query    string
	category string
	sort     SortKey
	page     int
	pageSize int
}

// NewQueryState starts on page 1 sorted by newest.
func NewQueryState(pageSize int) *QueryState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &QueryState{sort: SortNewest, page: 1, pageSize: pageSize}
}

func (s *QueryState) SetQuery(q string) {
	if q != s.query {
		s.query = q
		s.page = 1
	}
}

func (s *QueryState) SetCategory(slug string) {
	if slug != s.category {
		s.category = slug
		s.page = 1
	}
}

func (s *QueryState) SetSort(k SortKey) {
	if k != s.sort {
		s.sort = k
		s.page = 1
	}
}

// SetPage moves to page p. Values below 1 are ignored.
func (s *QueryState) SetPage(p int) {
	if p >= 1 {
		s.page = p
	}
}

// ResetPage returns to page 1, e.g. after the underlying records were reloaded.
func (s *QueryState) ResetPage() { s.page = 1 }

// Clear drops the text and category filters and restores the default sort.
func (s *QueryState) Clear() {
	s.query = ""
	s.category = ""
	s.sort = SortNewest
	s.page = 1
}

func (s *QueryState) Page() int { return s.page }

// Params snapshots the state for a pipeline run.
func (s *QueryState) Params() QueryParams {
	return QueryParams{
		Query:    s.query,
		Category: s.category,
		Sort:     s.sort,
		Page:     s.page,
		PageSize: s.pageSize,
	}
}
