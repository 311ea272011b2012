package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// shimmerTickMsg advances the highlight sweep by one frame
type shimmerTickMsg struct{}

// ShimmerState sweeps a soft highlight across the selected emotion's name
type ShimmerState struct {
	Enabled  bool
	Interval time.Duration
	Width    float64 // highlight radius in glyphs
	Step     float64 // glyphs advanced per frame
	Pause    int     // frames to rest between sweeps

	center float64
	resting int
}

// NewShimmerState returns a shimmer; when enabled is false it renders a static highlight
func NewShimmerState(enabled bool) *ShimmerState {
	return &ShimmerState{
		Enabled:  enabled,
		Interval: 90 * time.Millisecond,
		Width:    2.5,
		Step:     0.8,
		Pause:    6,
		center:   -3,
	}
}

// Tick schedules the next frame, or nothing when animations are off
func (s *ShimmerState) Tick() tea.Cmd {
	if s == nil || !s.Enabled {
		return nil
	}
	return tea.Tick(s.Interval, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Advance moves the highlight for text of the given visible length
func (s *ShimmerState) Advance(textLen int) {
	if s == nil || !s.Enabled || textLen == 0 {
		return
	}
	if s.resting > 0 {
		s.resting--
		return
	}

	s.center += s.Step
	if s.center > float64(textLen)+s.Width {
		s.center = -s.Width
		s.resting = s.Pause
	}
}

// Reset restarts the sweep from the left edge (call when the selection changes)
func (s *ShimmerState) Reset() {
	if s == nil {
		return
	}
	s.center = -s.Width
	s.resting = 0
}

// Render colours text glyph by glyph, brighter near the highlight centre
func (s *ShimmerState) Render(text string) string {
	static := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	if s == nil || !s.Enabled {
		return static.Render(text)
	}

	var b strings.Builder
	for i, r := range []rune(text) {
		dx := float64(i) - s.center
		weight := math.Exp(-(dx * dx) / (2 * s.Width * s.Width))
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(blend(ColorSecondaryText, "#FFF1F8", weight))).
			Bold(weight > 0.5).
			Render(string(r)))
	}
	return b.String()
}

// blend mixes two #RRGGBB colours, w=0 gives from and w=1 gives to
func blend(from, to string, w float64) string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return from
	}
	return a.BlendRgb(b, w).Hex()
}
