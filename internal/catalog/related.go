package catalog

import "strings"

// RelatedLimit is the number of related datasets shown on a detail page.
const RelatedLimit = 3

// Related selects up to limit other datasets sharing a category id or a tag with target.
// Tags compare trimmed and case-insensitively. Results keep the order of all; there is
// no relevance ranking.
func Related(target Dataset, all []Dataset, limit int) []Dataset {
	if limit <= 0 {
		return nil
	}
	cats := make(map[int]struct{}, len(target.Categories))
	for _, c := range target.Categories {
		cats[c.ID] = struct{}{}
	}
	tags := make(map[string]struct{})
	for _, t := range target.TagList() {
		tags[strings.ToLower(t)] = struct{}{}
	}

	var out []Dataset
	for _, d := range all {
		if d.ID == target.ID {
			continue
		}
		if sharesCategory(d, cats) || sharesTag(d, tags) {
			out = append(out, d)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func sharesCategory(d Dataset, ids map[int]struct{}) bool {
	for _, c := range d.Categories {
		if _, ok := ids[c.ID]; ok {
			return true
		}
	}
	return false
}

func sharesTag(d Dataset, tags map[string]struct{}) bool {
	for _, t := range d.TagList() {
		if _, ok := tags[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}
