package plan

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"doxa/internal/domain"
)

// FilterOptions controls how the catalog is narrowed by a query
type FilterOptions struct {
	// MatchAll makes an empty query return the whole catalog instead of nothing
	MatchAll bool
	// Rank, when set, orders the results by descending score. Ties keep
	// catalog order.
	Rank Ranker
}

// Filter returns the catalog songs matching query that are not already part
// of selection. Matching is a case-insensitive substring test against the
// title, number and theme. A whitespace-only query counts as empty.
func Filter(catalog []domain.Song, query string, selection []domain.Song, opts FilterOptions) []domain.Song {
	query = strings.TrimSpace(query)
	if query == "" && !opts.MatchAll {
		return []domain.Song{}
	}

	selected := make(map[int64]struct{}, len(selection))
	for _, s := range selection {
		selected[s.ID] = struct{}{}
	}

	folder := cases.Fold()
	needle := folder.String(query)

	results := make([]domain.Song, 0)
	for _, song := range catalog {
		if _, ok := selected[song.ID]; ok {
			continue
		}
		if needle != "" && !matches(folder, song, needle) {
			continue
		}
		results = append(results, song)
	}

	if opts.Rank != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return opts.Rank(results[i]) > opts.Rank(results[j])
		})
	}
	return results
}

// MatchSpan locates the first occurrence of query in text using the same
// case folding as Filter. start and end are byte offsets into text.
func MatchSpan(text, query string) (start, end int, ok bool) {
	needle := cases.Fold().String(strings.TrimSpace(query))
	if needle == "" {
		return 0, 0, false
	}
	folder := cases.Fold()
	for i := range text {
		for j := i; j < len(text); {
			_, size := utf8.DecodeRuneInString(text[j:])
			j += size
			folded := folder.String(text[i:j])
			if !strings.HasPrefix(needle, folded) {
				break
			}
			if len(folded) == len(needle) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func matches(folder cases.Caser, song domain.Song, needle string) bool {
	for _, field := range searchableFields(song) {
		if field != "" && strings.Contains(folder.String(field), needle) {
			return true
		}
	}
	return false
}

func searchableFields(song domain.Song) [3]string {
	return [3]string{song.Title, song.Number, song.Theme}
}
