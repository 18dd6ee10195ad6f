package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// tokenPattern matches "username:HEX" as shown on the password settings page.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_.\-]+:[0-9A-Fa-f]{16,}`)

// PageTokenHarvester loads the settings page with the session cookies and
// scrapes the API token from it.
type PageTokenHarvester struct {
	web         *utils.HTTPClient
	settingsURL string
	cookies     []*http.Cookie
	logger      *logger.Logger
}

// NewPageTokenHarvester constructs a [PageTokenHarvester] from the remote
// configuration.
func NewPageTokenHarvester(cfg config.RemoteConfig, log *logger.Logger) (*PageTokenHarvester, error) {
	cookies, err := parseSessionCookies(cfg.SessionCookies)
	if err != nil {
		return nil, err
	}

	web := utils.NewHTTPClient()
	web.SetTimeout(cfg.RequestTimeout)

	return &PageTokenHarvester{
		web:         web,
		settingsURL: cfg.SettingsURL,
		cookies:     cookies,
		logger:      log,
	}, nil
}

func (h *PageTokenHarvester) Harvest(ctx context.Context, report TokenReporter) error {
	log := logger.FromContext(ctx)

	resp, err := h.web.R().
		SetContext(ctx).
		SetCookies(h.cookies).
		SetDoNotParseResponse(true).
		Get(h.settingsURL)
	if err != nil {
		log.Err(err).Str("func", "PageTokenHarvester.Harvest").Msg("failed to load settings page")
		return fmt.Errorf("load settings page: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if status := resp.StatusCode(); status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &RemoteRequestFailedError{StatusCode: status, Body: http.StatusText(status)}
	}

	token, err := findToken(body)
	if err != nil {
		log.Warn().Err(err).Str("func", "PageTokenHarvester.Harvest").Msg("no token on settings page")
		return err
	}

	if err = report(ctx, token); err != nil {
		return fmt.Errorf("report token: %w", err)
	}

	log.Debug().Str("func", "PageTokenHarvester.Harvest").Str("token", token.String()).Msg("token acknowledged, releasing page")
	return nil
}

func findToken(r io.Reader) (models.Credential, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse settings page: %w", err)
	}

	if token := searchNode(doc); token != "" {
		return models.Credential(token), nil
	}

	return "", ErrTokenNotFound
}

func searchNode(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		if match := tokenPattern.FindString(strings.TrimSpace(n.Data)); match != "" {
			return match
		}
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return ""
		}
		if n.Data == "input" {
			for _, attr := range n.Attr {
				if attr.Key == "value" {
					if match := tokenPattern.FindString(attr.Val); match != "" {
						return match
					}
				}
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if token := searchNode(c); token != "" {
			return token
		}
	}

	return ""
}
