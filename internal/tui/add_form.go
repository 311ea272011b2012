package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldDuration = iota
	fieldReason
)

// addForm collects duration and reason for one emotion occurrence
type addForm struct {
	emotion string
	inputs  []textinput.Model
	focus   int
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return in
}

func newAddForm(emotion string) addForm {
	inputs := []textinput.Model{
		newInput("Duration in minutes (Enter to skip)", 5),
		newInput("Reason (Enter to skip)", 300),
	}
	inputs[fieldDuration].Focus()

	return addForm{
		emotion: emotion,
		inputs:  inputs,
		focus:   fieldDuration,
	}
}

func (f addForm) duration() string { return f.inputs[fieldDuration].Value() }
func (f addForm) reason() string   { return f.inputs[fieldReason].Value() }

// setFocus moves the cursor to field i, wrapping around
func (f addForm) setFocus(i int) (addForm, tea.Cmd) {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return f, textinput.Blink
}

// update forwards msg to the focused input. The duration field only takes digits.
func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && f.focus == fieldDuration && key.Type == tea.KeyRunes {
		if !onlyDigits(key.Runes) {
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f addForm) view(width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(title.Render(fmt.Sprintf("Add emotion: %s", f.emotion)))
	b.WriteString("\n\n")

	labels := []string{"Duration (min)", "Reason"}
	for i, in := range f.inputs {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		if i == f.focus {
			label = label.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}
		b.WriteString(label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle().Render("tab switch field · enter next/save · ctrl+s save · esc cancel"))
	return modalStyle(width).Render(b.String())
}

func onlyDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(runes) > 0
}
