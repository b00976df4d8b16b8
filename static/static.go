// Package static serves dropdown options from an in-memory slice, filtered by
// fuzzy search and paged by offset.
package static

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	paginate "github.com/probablyarth/paginate-go"
)

// Loader returns a LoadOptions over options. label returns the text a
// search is matched against. Each page holds at most pageSize options; a
// pageSize below one returns every match in a single page.
//
// The Additional cursor is the offset of the next page, so the paginator
// should be built with a zero DefaultAdditional.
func Loader[O any](options []O, label func(O) string, pageSize int) paginate.LoadOptions[O, int] {
	all := slices.Clone(options)
	labels := make([]string, len(all))
	for i, option := range all {
		labels[i] = label(option)
	}
	return func(ctx context.Context, inputValue string, _ []O, offset int) (paginate.Response[O, int], error) {
		if err := ctx.Err(); err != nil {
			return paginate.Response[O, int]{}, err
		}
		matches := Match(labels, inputValue)
		start := min(max(offset, 0), len(matches))
		end := len(matches)
		if pageSize > 0 {
			end = min(start+pageSize, len(matches))
		}
		page := make([]O, 0, end-start)
		for _, idx := range matches[start:end] {
			page = append(page, all[idx])
		}
		return paginate.Response[O, int]{
			Options:    page,
			HasMore:    end < len(matches),
			Additional: end,
		}, nil
	}
}

// Match returns the indices of labels matching query, best match first.
// A blank query matches everything in order. Fuzzy matches are ranked by
// distance, ties keep their original order; when nothing matches fuzzily,
// a case-insensitive substring match is used instead.
func Match(labels []string, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		all := make([]int, len(labels))
		for i := range labels {
			all[i] = i
		}
		return all
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
			if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
				return c
			}
			return cmp.Compare(a.OriginalIndex, b.OriginalIndex)
		})
		matches := make([]int, 0, len(ranks))
		for _, rank := range ranks {
			matches = append(matches, rank.OriginalIndex)
		}
		return matches
	}
	lower := strings.ToLower(trimmed)
	matches := make([]int, 0)
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			matches = append(matches, i)
		}
	}
	return matches
}
