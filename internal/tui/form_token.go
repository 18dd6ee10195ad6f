package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pin-keeper/models"
)

type tokenForm struct {
	input textinput.Model
}

func newTokenForm() tokenForm {
	in := textinput.New()
	in.Placeholder = "username:HEXTOKEN"
	in.CharLimit = 256
	in.Width = 48
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.Focus()
	return tokenForm{input: in}
}

func (f tokenForm) token() models.Credential {
	return models.Credential(strings.TrimSpace(f.input.Value()))
}

func (f tokenForm) update(msg tea.Msg) (tokenForm, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f tokenForm) View() string {
	return renderPage("API TOKEN", "Token:\n"+f.input.View(), "enter: save  esc: back")
}
