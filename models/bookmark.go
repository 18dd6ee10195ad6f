package models

import "strings"

// Bookmark is one entry of the mirrored collection. It is replaced wholesale
// on every sync and never edited in place.
type Bookmark struct {
	// URL is the bookmarked address.
	URL string `json:"href"`

	// Title is the human-readable description shown in lists.
	Title string `json:"description"`

	// Tags keeps the remote order with duplicates removed.
	Tags []string `json:"tags"`

	// Shared reports whether the bookmark is public.
	Shared bool `json:"shared"`

	// CreatedAt is the remote creation time, kept as an opaque string.
	CreatedAt string `json:"time"`
}

// NewBookmark is a bookmark submitted from a client context to be saved
// remotely.
type NewBookmark struct {
	URL    string   `json:"url"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags,omitempty"`
	Shared bool     `json:"shared"`
}

// ParseTags splits a space-separated tag string, dropping empty fragments
// and duplicates while keeping first-seen order.
func ParseTags(raw string) []string {
	return DedupTags(strings.Split(raw, " "))
}

// DedupTags drops empty and repeated tags, keeping first-seen order.
// The result is never nil.
func DedupTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
