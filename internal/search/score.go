package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/svanberg/goto/internal/model"
)

// Match tier weights. The ordering is the contract: an exact tag match
// always outranks a substring match, which always outranks a fuzzy one.
const (
	weightExactTag  = 1.0
	weightSubstring = 0.6
	weightFuzzyMax  = 0.4
)

// Score rates a bookmark against a set of keywords, returning a value
// in [0, 1] and the keywords that matched. Each keyword contributes its
// single best tier:
//
//	exact tag/term match > substring of URL or title > fuzzy subsequence
//
// The total is the per-keyword sum normalized by keyword count. With
// more than one keyword every keyword must match at least the fuzzy
// tier, otherwise the bookmark scores 0 regardless of the rest. A
// bookmark with no overlap at all always scores exactly 0.
func Score(b model.Bookmark, keywords []string) (float64, []string) {
	if len(keywords) == 0 {
		return 0, nil
	}

	terms := b.Terms()
	candidates := fuzzyCandidates(b, terms)

	total := 0.0
	var matched []string
	for _, kw := range keywords {
		contribution := keywordScore(kw, b, terms, candidates)
		if contribution == 0 {
			if len(keywords) > 1 {
				// Every explicit keyword has to match on its own.
				return 0, nil
			}
			continue
		}
		total += contribution
		matched = append(matched, kw)
	}
	if len(matched) == 0 {
		return 0, nil
	}

	score := total / float64(len(keywords))
	if score > 1 {
		score = 1
	}
	return score, matched
}

func keywordScore(keyword string, b model.Bookmark, terms, candidates []string) float64 {
	kw := strings.ToLower(keyword)
	if kw == "" {
		return 0
	}

	for _, term := range terms {
		if kw == strings.ToLower(term) {
			return weightExactTag
		}
	}

	if strings.Contains(strings.ToLower(b.URL), kw) ||
		strings.Contains(strings.ToLower(b.Title), kw) {
		return weightSubstring
	}

	if sim := fuzzySimilarity(kw, candidates); sim > 0 {
		return weightFuzzyMax * sim
	}

	return 0
}

// fuzzyCandidates collects the strings a keyword is fuzzy-matched
// against: tags, terms, title and the URL without its scheme.
func fuzzyCandidates(b model.Bookmark, terms []string) []string {
	candidates := make([]string, 0, len(terms)+2)
	candidates = append(candidates, terms...)
	if b.Title != "" {
		candidates = append(candidates, b.Title)
	}
	candidates = append(candidates, stripScheme(b.URL))
	return candidates
}

// fuzzySimilarity returns the best subsequence similarity of the
// keyword across the candidates, in (0, 1], or 0 when the keyword is
// not a subsequence of any candidate. Similarity is keyword coverage of
// the candidate, so near-complete matches grade higher than a few
// characters scattered through a long string.
func fuzzySimilarity(keyword string, candidates []string) float64 {
	matches := fuzzy.Find(keyword, candidates)
	best := 0.0
	for _, m := range matches {
		if len(m.Str) == 0 {
			continue
		}
		sim := float64(len(m.MatchedIndexes)) / float64(len(m.Str))
		if sim > best {
			best = sim
		}
	}
	return best
}

func stripScheme(url string) string {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return url
}
