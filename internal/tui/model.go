package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pin-keeper/internal/app"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/validators"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type screen int

const (
	screenMain screen = iota
	screenToken
	screenAdd
	screenBookmarks
	screenInfo
)

const statusTTL = 3 * time.Second

var writeClipboard = clipboard.WriteAll

type optionsModel struct {
	ctx      context.Context
	state    StateSource
	router   Router
	settings service.SettingsService
	info     models.AppBuildInfo

	screen  screen
	current models.State
	topTags []string

	busy    bool
	spinner spinner.Model
	status  string
	errMsg  string

	tokenForm tokenForm
	form      bookmarkForm
	listIdx   int
}

func newOptionsModel(ctx context.Context, state StateSource, router Router, settings service.SettingsService, info models.AppBuildInfo) optionsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := optionsModel{
		ctx:      ctx,
		state:    state,
		router:   router,
		settings: settings,
		info:     info,
		spinner:  s,
	}
	return m.refresh()
}

func (m optionsModel) refresh() optionsModel {
	m.current = m.state.State()
	m.topTags = m.state.MostCommonTags()
	if m.listIdx >= len(m.current.Bookmarks) {
		m.listIdx = max(len(m.current.Bookmarks)-1, 0)
	}
	return m
}

func (m optionsModel) loggedIn() bool {
	return m.current.Token != ""
}

func waitForChange(changes <-chan string) tea.Cmd {
	return func() tea.Msg {
		k, ok := <-changes
		if !ok {
			return stateClosedMsg{}
		}
		return stateChangedMsg{key: k}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m optionsModel) Init() tea.Cmd {
	return waitForChange(m.state.Changes())
}

func (m optionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m = m.refresh()
		return m, waitForChange(m.state.Changes())

	case stateClosedMsg:
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			logger.FromContext(m.ctx).Warn().Err(msg.err).Str("func", "optionsModel.Update").Msg("action failed")
			m.errMsg = humanizeError(msg.err)
			m.status = ""
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		if m.screen == screenAdd || m.screen == screenToken {
			m.screen = screenMain
		}
		return m, clearStatusAfter(statusTTL)

	case tagsSuggestedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form = m.form.withSuggestions(msg.tags)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenToken:
			return m.updateToken(msg)
		case screenAdd:
			return m.updateAdd(msg)
		case screenBookmarks:
			return m.updateBookmarks(msg)
		case screenInfo:
			if key.Matches(msg, keys.esc, keys.quit) {
				m.screen = screenMain
			}
			return m, nil
		default:
			return m.updateMain(msg)
		}
	}

	return m, nil
}

func (m optionsModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.screen = screenInfo
		return m, nil
	case m.busy:
		return m, nil
	}

	if !m.loggedIn() {
		switch {
		case key.Matches(msg, keys.login):
			return m.run(m.authenticate)
		case key.Matches(msg, keys.token):
			m.tokenForm = newTokenForm()
			m.screen = screenToken
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		return m.run(m.syncNow)
	case key.Matches(msg, keys.private):
		return m.run(m.togglePrivate)
	case key.Matches(msg, keys.clearErr):
		return m.run(m.clearError)
	case key.Matches(msg, keys.logout):
		return m.run(m.logout)
	case key.Matches(msg, keys.copyUser):
		return m, m.copy(m.current.Token.Username(), "Username copied")
	case key.Matches(msg, keys.newItem):
		m.form = newBookmarkForm(m.current.DefaultPrivate)
		m.screen = screenAdd
	case key.Matches(msg, keys.list):
		m.screen = screenBookmarks
	}
	return m, nil
}

func (m optionsModel) updateToken(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenMain
		return m, nil
	case key.Matches(msg, keys.enter):
		token := m.tokenForm.token()
		if token == "" || m.busy {
			return m, nil
		}
		return m.run(func() tea.Msg {
			return actionDoneMsg{status: "Token saved", err: m.router.SetToken(m.ctx, token)}
		})
	}

	var cmd tea.Cmd
	m.tokenForm, cmd = m.tokenForm.update(msg)
	return m, cmd
}

func (m optionsModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenMain
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form = m.form.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form = m.form.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.shared):
		m.form.shared = !m.form.shared
		return m, nil
	case key.Matches(msg, keys.suggest):
		if m.busy {
			return m, nil
		}
		if err := validators.ValidateURL(m.form.url()); err != nil {
			m.errMsg = app.MsgAddErrorURL
			return m, nil
		}
		url := m.form.url()
		return m.run(func() tea.Msg {
			tags, err := m.router.SuggestTags(m.ctx, url)
			return tagsSuggestedMsg{tags: tags, err: err}
		})
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		bookmark := m.form.bookmark()
		if err := validators.ValidateURL(bookmark.URL); err != nil {
			m.errMsg = app.MsgAddErrorURL
			return m, nil
		}
		return m.run(func() tea.Msg {
			return actionDoneMsg{status: "Bookmark saved", err: m.router.AddBookmark(m.ctx, bookmark)}
		})
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m optionsModel) updateBookmarks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc, keys.quit):
		m.screen = screenMain
	case key.Matches(msg, keys.up):
		if m.listIdx > 0 {
			m.listIdx--
		}
	case key.Matches(msg, keys.down):
		if m.listIdx < len(m.current.Bookmarks)-1 {
			m.listIdx++
		}
	case key.Matches(msg, keys.copy):
		if m.listIdx < len(m.current.Bookmarks) {
			return m, m.copy(m.current.Bookmarks[m.listIdx].URL, "URL copied")
		}
	}
	return m, nil
}

// run marks the model busy and performs action off the update loop.
func (m optionsModel) run(action tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	m.errMsg = ""
	return m, tea.Batch(action, m.spinner.Tick)
}

func (m optionsModel) copy(text, status string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{status: status, err: writeClipboard(text)}
	}
}

func (m optionsModel) authenticate() tea.Msg {
	outcome, err := m.router.UpdateToken(m.ctx)
	if err != nil {
		return actionDoneMsg{err: err}
	}

	switch service.AuthOutcome(outcome) {
	case service.AuthNotLoggedIn:
		return actionDoneMsg{err: errors.New(app.MsgNotLoggedIn)}
	case service.AuthAlreadyAuthenticated:
		return actionDoneMsg{status: "Already authenticated"}
	default:
		return actionDoneMsg{status: "Token saved"}
	}
}

func (m optionsModel) syncNow() tea.Msg {
	result, err := m.router.UpdateBookmarks(m.ctx)
	switch {
	case err != nil:
		return actionDoneMsg{err: err}
	case result.Skipped:
		return actionDoneMsg{status: "Sync already running"}
	case result.Changed:
		return actionDoneMsg{status: fmt.Sprintf("Fetched %d bookmarks", result.Count)}
	default:
		return actionDoneMsg{status: "Already up to date"}
	}
}

func (m optionsModel) togglePrivate() tea.Msg {
	private, err := m.settings.ToggleDefaultPrivate(m.ctx)
	if private {
		return actionDoneMsg{status: "New bookmarks are private", err: err}
	}
	return actionDoneMsg{status: "New bookmarks are public", err: err}
}

func (m optionsModel) clearError() tea.Msg {
	return actionDoneMsg{status: "Error cleared", err: m.settings.ClearError(m.ctx)}
}

func (m optionsModel) logout() tea.Msg {
	return actionDoneMsg{status: "Logged out", err: m.router.ClearToken(m.ctx)}
}

func (m optionsModel) View() string {
	var body string
	switch m.screen {
	case screenToken:
		body = m.tokenForm.View()
	case screenAdd:
		body = m.form.View()
	case screenBookmarks:
		body = renderBookmarks(m.current.Bookmarks, m.listIdx)
	case screenInfo:
		body = renderBuildInfoWindow(m.info)
	default:
		body = m.mainView()
	}

	var footer strings.Builder
	if m.busy {
		footer.WriteString("\n" + m.spinner.View() + " working...")
	}
	if m.status != "" {
		footer.WriteString("\n" + statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		footer.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	return appStyle.Render(body + footer.String())
}

func (m optionsModel) mainView() string {
	if !m.loggedIn() {
		return renderPage("GO-PIN-KEEPER", "Not logged in.",
			"a: log in from web session  t: enter token  i: about  q: quit")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User: %s\n", m.current.Token.Username())
	fmt.Fprintf(&b, "Bookmarks: %d\n", len(m.current.Bookmarks))
	fmt.Fprintf(&b, "Last update: %s\n", valueOrDash(string(m.current.UpdateTime)))
	if m.current.DefaultPrivate {
		b.WriteString("New bookmarks: private\n")
	} else {
		b.WriteString("New bookmarks: public\n")
	}
	if len(m.topTags) > 0 {
		b.WriteString("Top tags: ")
		b.WriteString(tagStyle.Render(strings.Join(m.topTags[:min(len(m.topTags), 10)], " ")))
		b.WriteString("\n")
	}
	if m.current.PinboardError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.current.PinboardError))
		b.WriteString("\n")
	}

	return renderPage("GO-PIN-KEEPER", b.String(),
		"s: sync  n: new  b: bookmarks  p: private  e: clear error  u: copy user  l: log out  i: about  q: quit")
}
