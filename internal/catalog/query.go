package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize is the number of datasets shown per page when browsing.
const DefaultPageSize = 9

// SortKey selects the ordering applied by the pipeline.
type SortKey string

const (
	SortNewest  SortKey = "newest"
	SortOldest  SortKey = "oldest"
	SortPopular SortKey = "popular"
	SortAZ      SortKey = "a-z"
	SortZA      SortKey = "z-a"
)

// SortKeys lists the recognised keys in display order.
var SortKeys = []SortKey{SortNewest, SortOldest, SortPopular, SortAZ, SortZA}

// ParseSortKey normalises s and reports whether it is a recognised key.
func ParseSortKey(s string) (SortKey, bool) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	return k, slices.Contains(SortKeys, k)
}

// QueryParams are the browsing parameters for one pipeline run.
type QueryParams struct {
	Query    string
	Category string
	Sort     SortKey
	Page     int
	PageSize int
}

// Result is the visible page plus the totals needed to render a pager.
type Result struct {
	Page         []Dataset
	TotalMatched int
	TotalPages   int
}

// Apply runs text filter, category filter, sort and pagination, in that order.
// records is never modified.
func Apply(records []Dataset, p QueryParams) Result {
	matched := Filter(records, p.Query, p.Category)
	Sort(matched, p.Sort)
	return Paginate(matched, p.Page, p.PageSize)
}

// Filter returns a new slice with the records matching the free-text query and the
// category slug. Empty arguments do not filter.
func Filter(records []Dataset, query, category string) []Dataset {
	q := strings.ToLower(query)
	out := make([]Dataset, 0, len(records))
	for _, d := range records {
		if q != "" && !matchesText(d, q) {
			continue
		}
		if category != "" && !d.HasCategory(category) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// matchesText expects q already lower-cased.
func matchesText(d Dataset, q string) bool {
	return strings.Contains(strings.ToLower(d.Title), q) ||
		strings.Contains(strings.ToLower(d.Description), q) ||
		strings.Contains(strings.ToLower(d.Tags), q)
}

// Sort orders records in place. The sort is stable; unknown keys leave the order as is.
func Sort(records []Dataset, key SortKey) {
	switch key {
	case SortNewest:
		slices.SortStableFunc(records, func(a, b Dataset) int { return b.CreatedAt.Compare(a.CreatedAt) })
	case SortOldest:
		slices.SortStableFunc(records, func(a, b Dataset) int { return a.CreatedAt.Compare(b.CreatedAt) })
	case SortPopular:
		slices.SortStableFunc(records, func(a, b Dataset) int { return cmp.Compare(b.DownloadCount, a.DownloadCount) })
	case SortAZ, SortZA:
		col := collate.New(language.English)
		dir := 1
		if key == SortZA {
			dir = -1
		}
		slices.SortStableFunc(records, func(a, b Dataset) int {
			return dir * col.CompareString(a.Title, b.Title)
		})
	}
}

// Paginate returns the 1-based page of records. Pages outside the valid range are empty;
// the page number is never clamped. A non-positive size falls back to DefaultPageSize.
func Paginate(records []Dataset, page, size int) Result {
	if size <= 0 {
		size = DefaultPageSize
	}
	res := Result{
		TotalMatched: len(records),
		TotalPages:   (len(records) + size - 1) / size,
		Page:         []Dataset{},
	}
	if page < 1 {
		return res
	}
	start := (page - 1) * size
	if start >= len(records) {
		return res
	}
	end := min(start+size, len(records))
	res.Page = records[start:end:end]
	return res
}
