// Package search implements the bookmark matching engine: scoring
// bookmarks against user keywords, ranking the results and deciding
// whether to open, disambiguate or fall back to a web search.
package search

import (
	"sort"

	"github.com/svanberg/goto/internal/model"
)

// Result pairs a bookmark with its score against a keyword set.
type Result struct {
	Bookmark model.Bookmark
	Score    float64
	Matched  []string
}

// Match scores every bookmark against the keywords and returns the
// results with a positive score. Bookmarks with no overlap at all are
// excluded here rather than by the score filter, so lowering the
// minimum score to 0 never resurfaces them. With no keywords every
// bookmark is returned with score 0, which lets a bare `goto select`
// list the whole store.
func Match(bookmarks []model.Bookmark, keywords []string) []Result {
	var results []Result
	for _, b := range bookmarks {
		if len(keywords) == 0 {
			results = append(results, Result{Bookmark: b})
			continue
		}
		score, matched := Score(b, keywords)
		if score == 0 {
			continue
		}
		results = append(results, Result{Bookmark: b, Score: score, Matched: matched})
	}
	return results
}

// Rank sorts results by score descending. Ties are broken by the
// number of matched keywords (more first), then by URL, so repeated
// runs over the same store produce identical orderings.
func Rank(results []Result) []Result {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if len(results[i].Matched) != len(results[j].Matched) {
			return len(results[i].Matched) > len(results[j].Matched)
		}
		return results[i].Bookmark.URL < results[j].Bookmark.URL
	})
	return results
}

// Options filter a ranked result list.
type Options struct {
	// MinScore drops results scoring below it. 0 disables the filter.
	MinScore float64
	// Limit caps the number of results. 0 means unlimited.
	Limit int
}

// Outcome is the selector's decision for an open request.
type Outcome int

const (
	// NoMatch means nothing survived filtering; fall back to a web search.
	NoMatch Outcome = iota
	// Open means exactly one bookmark matched and can be opened directly.
	Open
	// Ambiguous means several bookmarks matched and the user must choose.
	Ambiguous
)

// Decision is the outcome of Choose together with the surviving results.
type Decision struct {
	Outcome Outcome
	Results []Result
}

// Choose filters a ranked list and decides what an open request should
// do: no survivors falls back to search, a single survivor opens
// directly, anything more is handed to interactive disambiguation.
func Choose(ranked []Result, opts Options) Decision {
	filtered := apply(ranked, opts)
	switch len(filtered) {
	case 0:
		return Decision{Outcome: NoMatch}
	case 1:
		return Decision{Outcome: Open, Results: filtered}
	default:
		return Decision{Outcome: Ambiguous, Results: filtered}
	}
}

// ChooseList filters a ranked list for select-mode: the result is
// always the filtered, limited list, regardless of how many survive.
func ChooseList(ranked []Result, opts Options) []Result {
	return apply(ranked, opts)
}

func apply(ranked []Result, opts Options) []Result {
	var filtered []Result
	for _, r := range ranked {
		if r.Score < opts.MinScore {
			continue
		}
		filtered = append(filtered, r)
		if opts.Limit > 0 && len(filtered) == opts.Limit {
			break
		}
	}
	return filtered
}
