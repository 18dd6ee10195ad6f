// Package tui is the options context of go-pin-keeper: a terminal UI that
// renders the mirrored state and sends commands to the background.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// Router is the background as seen from the UI. *router.Client implements it.
type Router interface {
	UpdateToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token models.Credential) error
	SuggestTags(ctx context.Context, url string) ([]string, error)
	UpdateBookmarks(ctx context.Context) (models.SyncResult, error)
	AddBookmark(ctx context.Context, bookmark models.NewBookmark) error
	ClearToken(ctx context.Context) error
}

// StateSource is a hydrated read model of the store. *mirror.Mirror
// implements it.
type StateSource interface {
	State() models.State
	MostCommonTags() []string
	Changes() <-chan string
}

type TUI struct {
	state    StateSource
	router   Router
	settings service.SettingsService
	info     models.AppBuildInfo
	logger   *logger.Logger
}

func New(state StateSource, router Router, settings service.SettingsService, info models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		state:    state,
		router:   router,
		settings: settings,
		info:     info,
		logger:   log,
	}
}

// Run blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newOptionsModel(t.logger.WithContext(ctx), t.state, t.router, t.settings, t.info)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
