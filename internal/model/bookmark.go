package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Bookmark represents a saved URL with an optional title and tag set.
type Bookmark struct {
	URL   string   `yaml:"url"`
	Title string   `yaml:"title,omitempty"`
	Tags  []string `yaml:"tags,omitempty"`
}

// NewBookmark creates a Bookmark from a raw URL string. URLs without a
// scheme are assumed to be https. Tags are normalized and deduplicated.
func NewBookmark(rawURL, title string, tags []string) (Bookmark, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return Bookmark{}, err
	}

	return Bookmark{
		URL:   normalized,
		Title: title,
		Tags:  ParseTags(strings.Join(tags, " ")),
	}, nil
}

// NormalizeURL validates a URL string, prepending https:// when the
// scheme is missing.
func NormalizeURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("empty URL")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", rawURL)
	}

	return u.String(), nil
}

// ID returns the bookmark's identity: the hex sha256 of its URL.
func (b Bookmark) ID() string {
	sum := sha256.Sum256([]byte(b.URL))
	return hex.EncodeToString(sum[:])
}

// Domain returns the host portion of the URL, without any port.
func (b Bookmark) Domain() string {
	u, err := url.Parse(b.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// RootDomain returns the second-level label of the domain, e.g.
// "github" for "gist.github.com". Empty when the domain has no dot.
func (b Bookmark) RootDomain() string {
	parts := strings.Split(b.Domain(), ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// Terms returns the searchable terms of the bookmark: its tags plus
// the root domain.
func (b Bookmark) Terms() []string {
	terms := make([]string, 0, len(b.Tags)+1)
	terms = append(terms, b.Tags...)
	if root := NormalizeTag(b.RootDomain()); root != "" && !contains(terms, root) {
		terms = append(terms, root)
	}
	return terms
}

// RelPath returns the record path relative to the data directory:
// <domain>/<id>.yaml.
func (b Bookmark) RelPath() string {
	return path.Join(b.Domain(), b.ID()+".yaml")
}

// Merge combines another bookmark for the same URL into this one.
// A non-empty incoming title replaces the existing one; tags are
// unioned. Bookmarks for a different URL are returned unchanged.
func (b Bookmark) Merge(other Bookmark) Bookmark {
	if b.URL != other.URL {
		return b
	}
	if other.Title != "" {
		b.Title = other.Title
	}
	b.Tags = MergeTags(b.Tags, other.Tags)
	return b
}

func (b Bookmark) String() string {
	if len(b.Tags) == 0 {
		return b.URL
	}
	return b.URL + " - " + strings.Join(b.Tags, " ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
