// Package statsview lists per-question accuracy for the current run.
package statsview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akashpai/quizdrill/internal/router"
	"github.com/akashpai/quizdrill/internal/screen"
	"github.com/akashpai/quizdrill/internal/stats"
	"github.com/akashpai/quizdrill/internal/ui/components"
	"github.com/akashpai/quizdrill/internal/ui/layout"
	"github.com/akashpai/quizdrill/internal/ui/theme"
)

const maxQuestionWidth = 60

// StatsScreen renders the session's per-question statistics.
type StatsScreen struct {
	rec    *stats.Record
	offset int
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen over the given record.
func New(rec *stats.Record) *StatsScreen {
	return &StatsScreen{rec: rec}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < s.rec.Len()-1 {
			s.offset++
		}
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	questions := s.rec.Questions()
	if len(questions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No statistics available yet."))
	}

	// Three lines per entry; show what fits from the scroll offset.
	perEntry := 3
	visible := height / perEntry
	if visible < 1 {
		visible = 1
	}
	end := s.offset + visible
	if end > len(questions) {
		end = len(questions)
	}

	var b strings.Builder
	for _, question := range questions[s.offset:end] {
		qs, _ := s.rec.Get(question)

		text := question
		// Truncate on runes so multibyte text never splits mid-character.
		if runes := []rune(text); len(runes) > maxQuestionWidth {
			text = string(runes[:maxQuestionWidth]) + "..."
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  " + text))
		b.WriteString("\n")

		counts := fmt.Sprintf("  Attempts: %d   Correct: %d   Incorrect: %d",
			qs.Attempts(), qs.Correct, qs.Incorrect)
		barWidth := width - lipgloss.Width(counts) - 8
		if barWidth > 30 {
			barWidth = 30
		}
		line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(counts)
		if barWidth > 8 {
			bar := components.NewProgressBar(qs.Accuracy(), barWidth)
			line += "   " + bar.View()
		}
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	return b.String()
}
