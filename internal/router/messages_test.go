package router

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pin-keeper/models"
)

func TestEncode_AddsType(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"no payload", UpdateBookmarks{}, `{"type":"updateBookmarks"}`},
		{"set token", SetToken{Token: "alice:ABC"}, `{"type":"setToken","token":"alice:ABC"}`},
		{"suggest", SuggestTags{URL: "https://example.com"}, `{"type":"suggestTags","url":"https://example.com"}`},
		{
			"add bookmark",
			AddBookmark{Bookmark: models.NewBookmark{URL: "https://example.com", Title: "x", Shared: true}},
			`{"type":"addBookmark","bookmark":{"url":"https://example.com","title":"x","shared":true}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.cmd)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestEncode_Nil(t *testing.T) {
	_, err := Encode(nil)
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestEnvelope_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(Envelope{Command: CheckLoggedIn{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"checkLoggedIn"}`, string(got))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Command
		wantErr error
	}{
		{"update token", `{"type":"updateToken"}`, UpdateToken{}, nil},
		{"update bookmarks", `{"type":"updateBookmarks"}`, UpdateBookmarks{}, nil},
		{"show options", `{"type":"showOptions"}`, ShowOptions{}, nil},
		{"check logged in", `{"type":"checkLoggedIn"}`, CheckLoggedIn{}, nil},
		{"clear token", `{"type":"clearToken"}`, ClearToken{}, nil},
		{"set token", `{"type":"setToken","token":"alice:ABC"}`, SetToken{Token: "alice:ABC"}, nil},
		{"suggest tags", `{"type":"suggestTags","url":"https://e.x"}`, SuggestTags{URL: "https://e.x"}, nil},
		{
			"add bookmark",
			`{"type":"addBookmark","bookmark":{"url":"https://e.x","title":"t","tags":["a"]}}`,
			AddBookmark{Bookmark: models.NewBookmark{URL: "https://e.x", Title: "t", Tags: []string{"a"}}},
			nil,
		},
		{"unknown type", `{"type":"reticulateSplines"}`, nil, ErrUnknownMessage},
		{"missing type", `{}`, nil, ErrUnknownMessage},
		{"not json", `not json`, nil, ErrMalformedMessage},
		{"bad payload", `{"type":"setToken","token":42}`, nil, ErrMalformedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDecode_AllTypes(t *testing.T) {
	for _, cmd := range []Command{
		UpdateToken{}, SetToken{Token: "a:1"}, SuggestTags{URL: "u"}, UpdateBookmarks{},
		ShowOptions{}, CheckLoggedIn{}, AddBookmark{}, ClearToken{},
	} {
		data, err := Encode(cmd)
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, cmd.Type(), got.Type())
	}
}
