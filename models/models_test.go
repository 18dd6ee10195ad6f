package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty string", "", []string{}},
		{"single", "go", []string{"go"}},
		{"repeated spaces", "go  rust ", []string{"go", "rust"}},
		{"duplicates keep first", "go rust go", []string{"go", "rust"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestRemotePost_ToBookmark(t *testing.T) {
	b := RemotePost{
		Href:        "https://example.com",
		Description: "Example",
		Tags:        "a b",
		Shared:      "no",
		Time:        "2024-01-01T00:00:00Z",
	}.ToBookmark()

	assert.Equal(t, Bookmark{
		URL:       "https://example.com",
		Title:     "Example",
		Tags:      []string{"a", "b"},
		Shared:    false,
		CreatedAt: "2024-01-01T00:00:00Z",
	}, b)

	assert.True(t, RemotePost{Shared: "yes"}.ToBookmark().Shared)
}

func TestCredential_Username(t *testing.T) {
	assert.Equal(t, "alice", Credential("alice:ABC123").Username())
	assert.Equal(t, "alice", Credential("alice:ABC:123").Username())
	assert.Equal(t, "bare", Credential("bare").Username())
	assert.Equal(t, "alice:***", Credential("alice:ABC123").String())
	assert.Equal(t, "", Credential("").String())
}

func TestState_CloneIsIndependent(t *testing.T) {
	s := State{Bookmarks: []Bookmark{{URL: "u", Tags: []string{"a"}}}}
	c := s.Clone()
	c.Bookmarks[0].Tags[0] = "changed"
	c.Bookmarks[0].URL = "other"

	assert.Equal(t, "a", s.Bookmarks[0].Tags[0])
	assert.Equal(t, "u", s.Bookmarks[0].URL)
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")
	assert.Equal(t, "version 1.0.0, built N/A, commit abc", info.String())
}
