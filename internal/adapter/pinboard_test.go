package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type staticCredential struct {
	token models.Credential
}

func (s staticCredential) Get(context.Context) (models.Credential, bool, error) {
	return s.token, s.token != "", nil
}

func testRemoteConfig(apiURL string) config.RemoteConfig {
	return config.RemoteConfig{
		APIBaseURL:       apiURL,
		SettingsURL:      apiURL + "/settings/password",
		RequestTimeout:   5 * time.Second,
		RetryCount:       2,
		RetryWaitTime:    time.Millisecond,
		RetryMaxWaitTime: 5 * time.Millisecond,
	}
}

// newTestAdapter создаёт pinboardAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string, token models.Credential) RemoteClient {
	t.Helper()
	a, err := NewPinboardAdapter(testRemoteConfig(serverURL), staticCredential{token: token}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Credential handling ─────────────────────────────────────────────────────

func TestPinboard_MissingCredentialSendsNothing(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	ctx := context.Background()

	_, err := a.ProbeUpdateMarker(ctx)
	assert.ErrorIs(t, err, ErrMissingCredential)
	_, err = a.FetchAllBookmarks(ctx)
	assert.ErrorIs(t, err, ErrMissingCredential)
	_, err = a.SuggestTags(ctx, "https://example.com")
	assert.ErrorIs(t, err, ErrMissingCredential)
	err = a.AddBookmark(ctx, models.NewBookmark{URL: "https://example.com"})
	assert.ErrorIs(t, err, ErrMissingCredential)

	assert.Zero(t, calls.Load())
}

func TestPinboard_SendsTokenAndFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/update", r.URL.Path)
		assert.Equal(t, "alice:ABCDEF0123456789", r.URL.Query().Get("auth_token"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		writeJSON(t, w, map[string]string{"update_time": "2024-05-01T10:00:00Z"})
	}))
	defer srv.Close()

	marker, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").ProbeUpdateMarker(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SyncMarker("2024-05-01T10:00:00Z"), marker)
}

// ── Fetch ───────────────────────────────────────────────────────────────────

func TestFetchAllBookmarks_DecodesPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/all", r.URL.Path)
		writeJSON(t, w, []map[string]string{
			{"href": "https://a.example", "description": "A", "tags": "go  tools go", "shared": "yes", "time": "t1"},
			{"href": "https://b.example", "description": "B", "tags": "", "shared": "no", "time": "t2"},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").FetchAllBookmarks(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"go", "tools"}, got[0].Tags)
	assert.True(t, got[0].Shared)
	assert.Equal(t, []string{}, got[1].Tags)
	assert.False(t, got[1].Shared)
	assert.Equal(t, "B", got[1].Title)
}

func TestFetchAllBookmarks_UnauthorizedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "401 Forbidden", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").FetchAllBookmarks(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrRemoteRequestFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchAllBookmarks_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").FetchAllBookmarks(context.Background())

	assert.ErrorIs(t, err, ErrRemoteRequestFailed)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

// ── Backoff ─────────────────────────────────────────────────────────────────

func TestProbe_RetriesTooManyRequests(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		writeJSON(t, w, map[string]string{"update_time": "m2"})
	}))
	defer srv.Close()

	marker, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").ProbeUpdateMarker(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SyncMarker("m2"), marker)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProbe_TooManyRequestsExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").ProbeUpdateMarker(context.Background())

	assert.ErrorIs(t, err, ErrTooManyRequests)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProbe_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").ProbeUpdateMarker(context.Background())

	var reqErr *RemoteRequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

// ── Suggest ─────────────────────────────────────────────────────────────────

func TestSuggestTags_FlattensAndDeduplicates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/suggest", r.URL.Path)
		assert.Equal(t, "https://example.com/page", r.URL.Query().Get("url"))
		_, _ = w.Write([]byte(`[{"popular":["go","news"]},{"recommended":["go",["tools",["deep"]],"news"]}]`))
	}))
	defer srv.Close()

	tags, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").SuggestTags(context.Background(), "https://example.com/page")

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "news", "tools", "deep"}, tags)
}

func TestSuggestTags_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"popular":[]},{"recommended":[]}]`))
	}))
	defer srv.Close()

	tags, err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").SuggestTags(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Empty(t, tags)
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestAddBookmark_SendsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/posts/add", r.URL.Path)
		assert.Equal(t, "https://example.com", q.Get("url"))
		assert.Equal(t, "Example", q.Get("description"))
		assert.Equal(t, "go tools", q.Get("tags"))
		assert.Equal(t, "no", q.Get("shared"))
		writeJSON(t, w, map[string]string{"result_code": "done"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").AddBookmark(context.Background(), models.NewBookmark{
		URL:   "https://example.com",
		Title: "Example",
		Tags:  []string{"go", "tools"},
	})

	assert.NoError(t, err)
}

func TestAddBookmark_NotDone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]string{"result_code": "missing url"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "alice:ABCDEF0123456789").AddBookmark(context.Background(), models.NewBookmark{URL: "x"})

	assert.ErrorIs(t, err, ErrNotDone)
	assert.Contains(t, err.Error(), "missing url")
}

// ── Session ─────────────────────────────────────────────────────────────────

func TestCheckSessionLoggedIn(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}{
		{
			name: "settings page served",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>settings</html>"))
			},
			want: true,
		},
		{
			name: "redirected to login",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/settings/password" {
					http.Redirect(w, r, "/login", http.StatusFound)
					return
				}
				_, _ = w.Write([]byte("<html>login</html>"))
			},
			want: false,
		},
		{
			name: "error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL, "").CheckSessionLoggedIn(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckSessionLoggedIn_SendsCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("login")
		if assert.NoError(t, err) {
			assert.Equal(t, "alice", c.Value)
		}
	}))
	defer srv.Close()

	cfg := testRemoteConfig(srv.URL)
	cfg.SessionCookies = "login=alice; auth=secret"
	a, err := NewPinboardAdapter(cfg, staticCredential{}, logger.Nop())
	require.NoError(t, err)

	ok, err := a.CheckSessionLoggedIn(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckSessionLoggedIn_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, "").CheckSessionLoggedIn(context.Background())
	assert.Error(t, err)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewPinboardAdapter_InvalidConfig(t *testing.T) {
	_, err := NewPinboardAdapter(config.RemoteConfig{APIBaseURL: ""}, staticCredential{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewPinboardAdapter(config.RemoteConfig{APIBaseURL: "http://x", SessionCookies: "=;"}, staticCredential{}, logger.Nop())
	assert.Error(t, err)
}
