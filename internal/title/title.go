// Package title extracts page titles for newly added bookmarks.
package title

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const fetchTimeout = 5 * time.Second

// Fetch downloads the page at url and returns the text of its first
// <title> element, trimmed. Returns an empty string when the page has
// no title.
func Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %s", url, resp.Status)
	}

	return Parse(resp.Body), nil
}

// Parse scans an HTML document for its first <title> element.
func Parse(r io.Reader) string {
	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if strings.EqualFold(string(name), "title") {
				if tokenizer.Next() == html.TextToken {
					return strings.TrimSpace(tokenizer.Token().Data)
				}
				return ""
			}
		}
	}
}

// FetchAsync starts the title fetch in the background and returns a
// channel delivering the result, so interactive prompts can run while
// the page loads. Fetch failures deliver an empty string.
func FetchAsync(ctx context.Context, url string) <-chan string {
	out := make(chan string, 1)
	go func() {
		title, err := Fetch(ctx, url)
		if err != nil {
			out <- ""
			return
		}
		out <- title
	}()
	return out
}
