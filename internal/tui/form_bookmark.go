package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pin-keeper/models"
)

const (
	fieldURL = iota
	fieldTitle
	fieldTags
	fieldCount
)

type bookmarkForm struct {
	inputs    []textinput.Model
	focus     int
	shared    bool
	suggested []string
}

// newBookmarkForm starts with sharing set from the defaultPrivate
// preference.
func newBookmarkForm(defaultPrivate bool) bookmarkForm {
	placeholders := [fieldCount]string{"https://...", "Title", "space separated tags"}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 2048
		in.Width = 60
		inputs[i] = in
	}
	inputs[fieldURL].Focus()

	return bookmarkForm{inputs: inputs, shared: !defaultPrivate}
}

func (f bookmarkForm) url() string {
	return strings.TrimSpace(f.inputs[fieldURL].Value())
}

func (f bookmarkForm) bookmark() models.NewBookmark {
	return models.NewBookmark{
		URL:    f.url(),
		Title:  strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Tags:   models.DedupTags(models.ParseTags(f.inputs[fieldTags].Value())),
		Shared: f.shared,
	}
}

// withSuggestions appends suggested tags the user has not typed yet.
func (f bookmarkForm) withSuggestions(tags []string) bookmarkForm {
	f.suggested = tags

	merged := models.DedupTags(append(models.ParseTags(f.inputs[fieldTags].Value()), tags...))
	f.inputs[fieldTags].SetValue(strings.Join(merged, " "))
	return f
}

func (f bookmarkForm) moveFocus(delta int) bookmarkForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	return f
}

func (f bookmarkForm) update(msg tea.Msg) (bookmarkForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f bookmarkForm) View() string {
	var b strings.Builder

	labels := [fieldCount]string{"URL", "Title", "Tags"}
	for i, in := range f.inputs {
		b.WriteString(labels[i])
		b.WriteString(":\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if f.shared {
		b.WriteString("\nVisibility: public")
	} else {
		b.WriteString("\nVisibility: private")
	}
	if len(f.suggested) > 0 {
		b.WriteString("\nSuggested: ")
		b.WriteString(tagStyle.Render(strings.Join(f.suggested, " ")))
	}

	return renderPage("NEW BOOKMARK", b.String(),
		"tab: next  ctrl+t: suggest tags  ctrl+s: public/private  enter: save  esc: back")
}
