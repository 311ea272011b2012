package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/balkashynov/moodlog/internal/db"
	"github.com/balkashynov/moodlog/internal/models"
	"github.com/balkashynov/moodlog/internal/parser"
)

// Screen is the page currently shown under any modal
type Screen int

const (
	ScreenEmotions Screen = iota
	ScreenStats
)

// Modal is the overlay that currently owns the keyboard
type Modal int

const (
	ModalNone Modal = iota
	ModalAdd
	ModalDate
	ModalPicker
	ModalConfirmClear
	ModalMessage
)

// User-facing messages
const (
	msgInvalidDate   = "Invalid date format. Use YYYY-MM-DD."
	msgNoData        = "No data to display."
	msgCleared       = "All statistics cleared."
	msgConfirmClear  = "Are you sure you want to clear all statistics?\nThis cannot be undone."
	msgNoEmotions    = "No emotions to choose from."
	msgDetailsHidden = "enter details"
	msgDetailsShown  = "enter hide"
)

// Options tune an AppModel
type Options struct {
	Animations bool
	Logger     *zap.Logger
	// Warning is shown once on start, e.g. when the emotions file couldn't be read
	Warning string
	// Now overrides the clock used for the initial date
	Now func() time.Time
}

// AppModel is the whole interactive interface: emotion list, statistics and their modals
type AppModel struct {
	store    Store
	log      *zap.Logger
	emotions []string

	width  int
	height int

	screen   Screen
	modal    Modal
	selected int

	// currentDate is the last accepted date; rejected input never replaces it
	currentDate string
	today       string

	add       addForm
	dateInput textinput.Model
	picker    datePicker

	confirmYes bool

	stats       []models.StatGroup
	statsCursor int
	expanded    []bool

	message      string
	messageError bool
	status       string

	shimmer *ShimmerState
}

// NewAppModel creates the interface over store with the given selectable emotions
func NewAppModel(store Store, emotions []string, opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	today := parser.FormatDate(now())

	m := AppModel{
		store:       store,
		log:         logger,
		emotions:    emotions,
		screen:      ScreenEmotions,
		currentDate: today,
		today:       today,
		dateInput:   newInput("YYYY-MM-DD", 10),
		shimmer:     NewShimmerState(opts.Animations),
	}

	if opts.Warning != "" {
		m = m.showError(opts.Warning)
	}
	return m
}

// CurrentDate returns the date new events are recorded under
func (m AppModel) CurrentDate() string { return m.currentDate }

// Init starts the highlight animation
func (m AppModel) Init() tea.Cmd {
	return m.shimmer.Tick()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if m.modal == ModalNone && m.screen == ScreenEmotions && len(m.emotions) > 0 {
			m.shimmer.Advance(len([]rune(m.emotions[m.selected])))
		}
		return m, m.shimmer.Tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.modal {
		case ModalMessage:
			return m.updateMessage(msg)
		case ModalAdd:
			return m.updateAdd(msg)
		case ModalDate:
			return m.updateDate(msg)
		case ModalPicker:
			return m.updatePicker(msg)
		case ModalConfirmClear:
			return m.updateConfirmClear(msg)
		}

		if m.screen == ScreenStats {
			return m.updateStats(msg)
		}
		return m.updateEmotions(msg)
	}

	// Cursor blink and friends go to whichever input has focus
	return m.updateFocusedInput(msg)
}

func (m AppModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.modal {
	case ModalAdd:
		m.add, cmd = m.add.update(msg)
	case ModalDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case ModalPicker:
		m.picker, cmd = m.picker.update(msg)
	}
	return m, cmd
}

// updateEmotions handles keys on the emotion list
func (m AppModel) updateEmotions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.shimmer.Reset()
		}
		return m, nil

	case "down", "j":
		if m.selected < len(m.emotions)-1 {
			m.selected++
			m.shimmer.Reset()
		}
		return m, nil

	case "enter", "a":
		if len(m.emotions) == 0 {
			return m.showError(msgNoEmotions), nil
		}
		m.add = newAddForm(m.emotions[m.selected])
		m.modal = ModalAdd
		return m, textinput.Blink

	case "d":
		m.dateInput.SetValue(m.currentDate)
		m.dateInput.CursorEnd()
		m.dateInput.Focus()
		m.modal = ModalDate
		return m, textinput.Blink

	case "p":
		m.picker = newDatePicker()
		m.modal = ModalPicker
		return m, textinput.Blink

	case "t":
		return m.applyDate(m.today), nil

	case "s":
		return m.openStats(), nil

	case "c":
		return m.askClear(), nil
	}
	return m, nil
}

func (m AppModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m.modal = ModalNone
		m.status = ""
		return m, nil

	case "tab", "down":
		m.add, cmd = m.add.setFocus(m.add.focus + 1)
		return m, cmd

	case "shift+tab", "up":
		m.add, cmd = m.add.setFocus(m.add.focus - 1)
		return m, cmd

	case "enter":
		if m.add.focus == fieldDuration {
			m.add, cmd = m.add.setFocus(fieldReason)
			return m, cmd
		}
		return m.saveEvent(), nil

	case "ctrl+s":
		return m.saveEvent(), nil
	}

	m.add, cmd = m.add.update(msg)
	return m, cmd
}

// saveEvent records the emotion in the add form under the current date
func (m AppModel) saveEvent() AppModel {
	event, err := m.store.RecordEvent(m.add.emotion, m.currentDate, m.add.duration(), m.add.reason())
	if err != nil {
		m.log.Warn("failed to record emotion",
			zap.String("emotion", m.add.emotion),
			zap.String("date", m.currentDate),
			zap.Error(err))
		if errors.Is(err, db.ErrInvalidDate) {
			return m.showError(msgInvalidDate)
		}
		return m.showError(fmt.Sprintf("Failed to add emotion: %v", err))
	}

	m.log.Info("emotion recorded",
		zap.Uint("id", event.ID),
		zap.String("emotion", event.Name),
		zap.String("date", event.Date),
		zap.Int("duration_minutes", event.DurationMinutes))

	m.modal = ModalNone
	m.status = fmt.Sprintf("✓ %s added for %s (%d min)", event.Name, event.Date, event.DurationMinutes)
	return m
}

func (m AppModel) updateDate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dateInput.Blur()
		m.modal = ModalNone
		return m, nil
	case "enter":
		m.dateInput.Blur()
		return m.applyDate(strings.TrimSpace(m.dateInput.Value())), nil
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m AppModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m.modal = ModalNone
		return m, nil
	case "tab", "right":
		m.picker, cmd = m.picker.setFocus(m.picker.focus + 1)
		return m, cmd
	case "shift+tab", "left":
		m.picker, cmd = m.picker.setFocus(m.picker.focus - 1)
		return m, cmd
	case "enter":
		if !m.picker.last() {
			m.picker, cmd = m.picker.setFocus(m.picker.focus + 1)
			return m, cmd
		}
		return m.applyDate(m.picker.date()), nil
	case "ctrl+s":
		return m.applyDate(m.picker.date()), nil
	}

	m.picker, cmd = m.picker.update(msg)
	return m, cmd
}

// applyDate makes date current if it is valid; otherwise the previous date stays
func (m AppModel) applyDate(date string) AppModel {
	if !parser.IsValidDate(date) {
		m.log.Debug("rejected date", zap.String("input", date), zap.String("kept", m.currentDate))
		m.dateInput.SetValue(m.currentDate)
		return m.showError(msgInvalidDate)
	}

	m.currentDate = date
	m.modal = ModalNone
	m.status = "Date set to " + date
	return m
}

// openStats loads statistics and switches to the statistics screen
func (m AppModel) openStats() AppModel {
	groups, err := m.store.Statistics()
	if err != nil {
		m.log.Error("failed to load statistics", zap.Error(err))
		return m.showError(fmt.Sprintf("Failed to show statistics: %v", err))
	}

	m.stats = groups
	m.expanded = make([]bool, len(groups))
	if m.statsCursor >= len(groups) {
		m.statsCursor = 0
	}
	m.screen = ScreenStats
	return m
}

func (m AppModel) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "s":
		m.screen = ScreenEmotions
		m.statsCursor = 0
		return m, nil

	case "up", "k":
		if m.statsCursor > 0 {
			m.statsCursor--
		}
		return m, nil

	case "down", "j":
		if m.statsCursor < len(m.stats)-1 {
			m.statsCursor++
		}
		return m, nil

	case "enter", " ":
		if len(m.expanded) > 0 {
			m.expanded[m.statsCursor] = !m.expanded[m.statsCursor]
		}
		return m, nil

	case "r":
		return m.openStats(), nil

	case "c":
		return m.askClear(), nil
	}
	return m, nil
}

func (m AppModel) askClear() AppModel {
	m.confirmYes = false
	m.modal = ModalConfirmClear
	return m
}

func (m AppModel) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		m.confirmYes = !m.confirmYes
		return m, nil
	case "y", "Y":
		m.confirmYes = true
		return m.clearAll(), nil
	case "n", "N", "esc":
		m.modal = ModalNone
		return m, nil
	case "enter":
		if m.confirmYes {
			return m.clearAll(), nil
		}
		m.modal = ModalNone
		return m, nil
	}
	return m, nil
}

func (m AppModel) clearAll() AppModel {
	if err := m.store.ClearAll(); err != nil {
		m.log.Error("failed to clear statistics", zap.Error(err))
		return m.showError(fmt.Sprintf("Failed to clear statistics: %v", err))
	}
	m.log.Info("statistics cleared")

	m.stats = nil
	m.expanded = nil
	m.statsCursor = 0
	return m.showInfo(msgCleared)
}

func (m AppModel) updateMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q", " ":
		m.modal = ModalNone
		m.message = ""
	}
	return m, nil
}

func (m AppModel) showError(text string) AppModel {
	m.message = text
	m.messageError = true
	m.modal = ModalMessage
	return m
}

func (m AppModel) showInfo(text string) AppModel {
	m.message = text
	m.messageError = false
	m.modal = ModalMessage
	return m
}
