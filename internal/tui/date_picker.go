package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/moodlog/internal/parser"
)

// datePicker asks for year, month and day separately and pads them into YYYY-MM-DD
type datePicker struct {
	inputs []textinput.Model
	focus  int
}

func newDatePicker() datePicker {
	inputs := []textinput.Model{
		newInput("Year (YYYY)", 4),
		newInput("Month (MM)", 2),
		newInput("Day (DD)", 2),
	}
	for i := range inputs {
		inputs[i].Width = 12
	}
	inputs[0].Focus()
	return datePicker{inputs: inputs}
}

// date composes the fields; the result still has to pass parser.IsValidDate
func (p datePicker) date() string {
	return parser.ComposeDate(p.inputs[0].Value(), p.inputs[1].Value(), p.inputs[2].Value())
}

func (p datePicker) last() bool {
	return p.focus == len(p.inputs)-1
}

func (p datePicker) setFocus(i int) (datePicker, tea.Cmd) {
	n := len(p.inputs)
	p.focus = ((i % n) + n) % n
	for j := range p.inputs {
		if j == p.focus {
			p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
	return p, textinput.Blink
}

func (p datePicker) update(msg tea.Msg) (datePicker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyRunes && !onlyDigits(key.Runes) {
		return p, nil
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return p, cmd
}

func (p datePicker) view(width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(title.Render("Pick a date"))
	b.WriteString("\n\n")

	fields := make([]string, len(p.inputs))
	for i, in := range p.inputs {
		fields[i] = in.View()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, fields[0], "  ", fields[1], "  ", fields[2]))
	b.WriteString("\n\n")

	preview := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(preview.Render("→ " + p.date()))
	b.WriteString("\n\n")

	b.WriteString(helpStyle().Render("tab next field · enter save · esc cancel"))
	return modalStyle(width).Render(b.String())
}
