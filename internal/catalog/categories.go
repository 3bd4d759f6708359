package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// CategoryCounts counts, per category id, how many datasets list that category.
// A dataset listing the same category twice counts once.
func CategoryCounts(datasets []Dataset) map[int]int {
	counts := make(map[int]int)
	for _, d := range datasets {
		seen := make(map[int]bool, len(d.Categories))
		for _, c := range d.Categories {
			if !seen[c.ID] {
				seen[c.ID] = true
				counts[c.ID]++
			}
		}
	}
	return counts
}

// DatasetCount returns the number of datasets in the category with the given id.
func DatasetCount(datasets []Dataset, categoryID int) int {
	n := 0
	for _, d := range datasets {
		if d.HasCategoryID(categoryID) {
			n++
		}
	}
	return n
}

// FilterCategories keeps categories whose name or description contains q, ignoring case.
func FilterCategories(categories []Category, q string) []Category {
	if q == "" {
		return slices.Clone(categories)
	}
	q = strings.ToLower(q)
	var out []Category
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Description), q) {
			out = append(out, c)
		}
	}
	return out
}

// PopularCategories returns the n categories with the most datasets, ties in input order.
func PopularCategories(categories []Category, datasets []Dataset, n int) []Category {
	counts := CategoryCounts(datasets)
	out := slices.Clone(categories)
	slices.SortStableFunc(out, func(a, b Category) int { return cmp.Compare(counts[b.ID], counts[a.ID]) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
