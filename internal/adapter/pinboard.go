package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
)

const (
	pathUpdate  = "/posts/update"
	pathAll     = "/posts/all"
	pathSuggest = "/posts/suggest"
	pathAdd     = "/posts/add"

	resultDone = "done"
)

type pinboardAdapter struct {
	api         *utils.HTTPClient
	web         *utils.HTTPClient
	settingsURL string
	cookies     []*http.Cookie
	creds       CredentialSource

	logger *logger.Logger
}

// NewPinboardAdapter constructs the [RemoteClient].
//
// API calls share one client with the configured timeout, 429 backoff and
// throttle. The session probe uses a separate client with the same timeout,
// no retries and the configured session cookies.
func NewPinboardAdapter(cfg config.RemoteConfig, creds CredentialSource, log *logger.Logger) (RemoteClient, error) {
	baseURL, err := normalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote api url: %w", err)
	}

	cookies, err := parseSessionCookies(cfg.SessionCookies)
	if err != nil {
		return nil, err
	}

	api := utils.NewHTTPClient().
		RetryOnTooManyRequests(cfg.RetryCount, cfg.RetryWaitTime, cfg.RetryMaxWaitTime).
		Throttle(cfg.MinRequestInterval)
	api.SetBaseURL(baseURL).SetTimeout(cfg.RequestTimeout)

	web := utils.NewHTTPClient()
	web.SetTimeout(cfg.RequestTimeout)

	return &pinboardAdapter{
		api:         api,
		web:         web,
		settingsURL: cfg.SettingsURL,
		cookies:     cookies,
		creds:       creds,
		logger:      log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func parseSessionCookies(raw string) ([]*http.Cookie, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	cookies, err := http.ParseCookie(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid session cookies: %w", err)
	}
	return cookies, nil
}

func (p *pinboardAdapter) ProbeUpdateMarker(ctx context.Context) (models.SyncMarker, error) {
	var update models.RemoteUpdate
	if err := p.getJSON(ctx, "pinboardAdapter.ProbeUpdateMarker", pathUpdate, nil, &update); err != nil {
		return "", err
	}

	return models.SyncMarker(update.UpdateTime), nil
}

func (p *pinboardAdapter) FetchAllBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	var posts []models.RemotePost
	if err := p.getJSON(ctx, "pinboardAdapter.FetchAllBookmarks", pathAll, nil, &posts); err != nil {
		return nil, err
	}

	bookmarks := make([]models.Bookmark, 0, len(posts))
	for _, post := range posts {
		bookmarks = append(bookmarks, post.ToBookmark())
	}

	return bookmarks, nil
}

func (p *pinboardAdapter) SuggestTags(ctx context.Context, pageURL string) ([]string, error) {
	var raw json.RawMessage
	params := map[string]string{"url": pageURL}
	if err := p.getJSON(ctx, "pinboardAdapter.SuggestTags", pathSuggest, params, &raw); err != nil {
		return nil, err
	}

	var tags []string
	if err := collectStrings(json.NewDecoder(bytes.NewReader(raw)), &tags); err != nil {
		return nil, decodeError(fmt.Errorf("decode suggestions: %w", err))
	}

	return models.DedupTags(tags), nil
}

func (p *pinboardAdapter) AddBookmark(ctx context.Context, bookmark models.NewBookmark) error {
	shared := "no"
	if bookmark.Shared {
		shared = "yes"
	}

	params := map[string]string{
		"url":         bookmark.URL,
		"description": bookmark.Title,
		"tags":        strings.Join(bookmark.Tags, " "),
		"shared":      shared,
	}

	var result models.RemoteResult
	if err := p.getJSON(ctx, "pinboardAdapter.AddBookmark", pathAdd, params, &result); err != nil {
		return err
	}

	if result.ResultCode != resultDone {
		return fmt.Errorf("%w: %s", ErrNotDone, result.ResultCode)
	}

	return nil
}

func (p *pinboardAdapter) CheckSessionLoggedIn(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	resp, err := p.web.R().
		SetContext(ctx).
		SetCookies(p.cookies).
		Get(p.settingsURL)
	if err != nil {
		log.Err(err).Str("func", "pinboardAdapter.CheckSessionLoggedIn").Msg("session probe failed")
		return false, fmt.Errorf("session probe request: %w", err)
	}

	if !resp.IsSuccess() {
		return false, nil
	}

	// a logged-out session is redirected to the login page
	final := resp.RawResponse.Request.URL.String()
	return final == p.settingsURL, nil
}

// authedRequest fails before any I/O when no credential is held.
func (p *pinboardAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, ok, err := p.creds.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if !ok || token == "" {
		return nil, ErrMissingCredential
	}

	return p.api.R().
		SetContext(ctx).
		SetQueryParam("auth_token", string(token)).
		SetQueryParam("format", "json"), nil
}

func (p *pinboardAdapter) getJSON(ctx context.Context, funcName, path string, params map[string]string, dst any) error {
	log := logger.FromContext(ctx)

	req, err := p.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetQueryParams(params).Get(path)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("remote request failed")
		return fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", funcName).Int("status", resp.StatusCode()).Msg("remote answered with an error")
		return err
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to decode remote answer")
		return decodeError(fmt.Errorf("decode %s response: %w", strings.TrimPrefix(path, "/"), err))
	}

	return nil
}

// collectStrings appends every string value found in the next JSON value,
// descending into arrays and object values; object keys are skipped.
func collectStrings(dec *json.Decoder, out *[]string) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '[':
			for dec.More() {
				if err := collectStrings(dec, out); err != nil {
					return err
				}
			}
		case '{':
			for dec.More() {
				if _, err := dec.Token(); err != nil {
					return err
				}
				if err := collectStrings(dec, out); err != nil {
					return err
				}
			}
		}
		// closing delimiter
		_, err = dec.Token()
		return err
	case string:
		*out = append(*out, v)
	}

	return nil
}
