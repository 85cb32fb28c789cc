package search

import (
	"net/url"
	"strings"
)

// SearchURL builds the fallback search-engine URL for keywords that
// matched no bookmark. The engine endpoint is expected to end in its
// query parameter, e.g. "https://duckduckgo.com/?q=".
func SearchURL(engine string, keywords []string) string {
	escaped := make([]string, len(keywords))
	for i, kw := range keywords {
		escaped[i] = url.QueryEscape(kw)
	}
	return engine + strings.Join(escaped, "+")
}
