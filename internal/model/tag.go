package model

import (
	"regexp"
	"sort"
	"strings"
)

var (
	tagSeparator = regexp.MustCompile(`[,\s]+`)
	tagDiscard   = regexp.MustCompile(`[,\s"\\]+`)
)

// NormalizeTag lowercases a tag and strips separators, quotes and
// backslashes. Returns "" when nothing valid remains.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tagDiscard.ReplaceAllString(tag, "")))
}

// ParseTags splits free text on commas and whitespace into a sorted,
// deduplicated set of normalized tags.
func ParseTags(input string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, raw := range tagSeparator.Split(input, -1) {
		tag := NormalizeTag(raw)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// MergeTags returns the sorted union of two tag sets.
func MergeTags(a, b []string) []string {
	return ParseTags(strings.Join(a, " ") + " " + strings.Join(b, " "))
}
