package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/moodlog/internal/models"
)

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
}

func modalStyle(width int) lipgloss.Style {
	if width <= 0 || width > 60 {
		width = 60
	}
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Padding(1, 2)
}

// View renders the TUI
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var page string
	if m.screen == ScreenStats {
		page = m.renderStats()
	} else {
		page = m.renderEmotions()
	}

	if m.modal == ModalNone {
		return page
	}

	// Modals take over the screen, like a popup
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
}

func (m AppModel) renderModal() string {
	width := m.width - 4
	switch m.modal {
	case ModalAdd:
		return m.add.view(width)
	case ModalDate:
		return m.renderDateModal(width)
	case ModalPicker:
		return m.picker.view(width)
	case ModalConfirmClear:
		return m.renderConfirmClear(width)
	case ModalMessage:
		return m.renderMessage(width)
	}
	return ""
}

func (m AppModel) renderHeader() string {
	logo := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain)).Render("moodlog")
	date := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render("Date: " + m.currentDate)
	if m.currentDate == m.today {
		date += lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(" (today)")
	}
	return logo + "   " + date
}

// renderEmotions renders the list of selectable emotions
func (m AppModel) renderEmotions() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if len(m.emotions) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)
		b.WriteString(empty.Render(msgNoEmotions))
	}

	// Keep the selection on screen
	perPage := m.height - 10
	if perPage < 3 {
		perPage = 3
	}
	start := (m.selected / perPage) * perPage
	end := min(start+perPage, len(m.emotions))

	for i := start; i < end; i++ {
		name := m.emotions[i]
		if i == m.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Render("▸ "))
			b.WriteString(m.shimmer.Render(name))
		} else {
			b.WriteString("  ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render(name))
		}
		b.WriteString("\n")
	}

	if perPage < len(m.emotions) {
		pages := (len(m.emotions) + perPage - 1) / perPage
		b.WriteString(helpStyle().Render(fmt.Sprintf("Page %d/%d", start/perPage+1, pages)))
		b.WriteString("\n")
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(max(m.width-2, 20)).
		Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left,
		panel,
		m.renderStatus(),
		helpStyle().Render("↑/↓ nav · enter add · d date · p picker · t today · s stats · c clear · q quit"),
	)
}

func (m AppModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(m.status)
}

// renderStats renders the grouped statistics with per-row reasons
func (m AppModel) renderStats() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(title.Render("Statistics"))
	b.WriteString("\n\n")

	if len(m.stats) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)
		b.WriteString(empty.Render(msgNoData))
	} else {
		header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
		b.WriteString(header.Render(fmt.Sprintf("  %-10s  %-20s  %5s  %8s", "DATE", "EMOTION", "COUNT", "MINUTES")))
		b.WriteString("\n")

		perPage := m.height - 12
		if perPage < 3 {
			perPage = 3
		}
		start := (m.statsCursor / perPage) * perPage
		end := min(start+perPage, len(m.stats))

		for i := start; i < end; i++ {
			b.WriteString(m.renderStatRow(i))
		}

		if perPage < len(m.stats) {
			pages := (len(m.stats) + perPage - 1) / perPage
			b.WriteString(helpStyle().Render(fmt.Sprintf("Page %d/%d (%d groups)", start/perPage+1, pages, len(m.stats))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	total := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	b.WriteString(total.Render(fmt.Sprintf("Total time spent in emotions: %d minutes", models.TotalDuration(m.stats))))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(max(m.width-2, 20)).
		Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left,
		panel,
		helpStyle().Render("↑/↓ nav · enter details · r refresh · c clear · esc back"),
	)
}

func (m AppModel) renderStatRow(i int) string {
	g := m.stats[i]
	name := g.EmotionName
	if len([]rune(name)) > 20 {
		name = string([]rune(name)[:17]) + "..."
	}

	row := fmt.Sprintf("%-10s  %-20s  %5d  %8d", g.Date, name, g.OccurrenceCount, g.TotalDurationMinutes)
	hint := msgDetailsHidden
	if m.expanded[i] {
		hint = msgDetailsShown
	}

	var b strings.Builder
	if i == m.statsCursor {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		b.WriteString(selected.Render("▸ " + row))
		b.WriteString("  ")
		b.WriteString(helpStyle().Render(hint))
	} else {
		b.WriteString("  " + row)
	}
	b.WriteString("\n")

	if m.expanded[i] {
		reasons := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			PaddingLeft(4).
			Width(max(m.width-8, 20))
		b.WriteString(reasons.Render("Reasons: " + g.Reasons))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) renderDateModal(width int) string {
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(title.Render("Date"))
	b.WriteString("\n\n")
	b.WriteString(m.dateInput.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle().Render("enter save · esc cancel"))
	return modalStyle(width).Render(b.String())
}

// renderConfirmClear renders the Yes/No dialog guarding ClearAll
func (m AppModel) renderConfirmClear(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWarning)).Render("Clear statistics"))
	b.WriteString("\n\n")
	b.WriteString(msgConfirmClear)
	b.WriteString("\n\n")

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if m.confirmYes {
		yesStyle = yesStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, yesStyle.Render("Yes"), "   ", noStyle.Render("No")))
	b.WriteString("\n\n")
	b.WriteString(helpStyle().Render("← → or Y/N to choose, Enter to confirm"))

	return modalStyle(width).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Align(lipgloss.Center).
		Render(b.String())
}

func (m AppModel) renderMessage(width int) string {
	titleText, color := "Info", ColorSuccess
	if m.messageError {
		titleText, color = "Error", ColorError
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(titleText))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")
	b.WriteString(helpStyle().Render("enter to close"))

	return modalStyle(width).BorderForeground(lipgloss.Color(color)).Render(b.String())
}
