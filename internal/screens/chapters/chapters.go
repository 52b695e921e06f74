// Package chapters lists the bank's chapters with their enabled state. In
// manage mode Enter (or space) toggles a chapter; in select mode Enter
// starts a study session on an enabled chapter.
package chapters

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akashpai/quizdrill/internal/quiz"
	"github.com/akashpai/quizdrill/internal/router"
	"github.com/akashpai/quizdrill/internal/screen"
	"github.com/akashpai/quizdrill/internal/ui/layout"
	"github.com/akashpai/quizdrill/internal/ui/theme"
)

// Mode selects the screen's purpose.
type Mode int

const (
	// ModeSelect picks a chapter to study.
	ModeSelect Mode = iota
	// ModeManage toggles chapters on and off.
	ModeManage
)

// DrillFactory builds the study screen for a chosen chapter.
type DrillFactory func(chapter string) screen.Screen

// ChaptersScreen lists chapters for selection or management.
type ChaptersScreen struct {
	bank    *quiz.Bank
	mode    Mode
	factory DrillFactory
	cursor  int
	message string
}

var _ screen.Screen = (*ChaptersScreen)(nil)
var _ screen.KeyHintProvider = (*ChaptersScreen)(nil)

// New creates a chapters screen. factory is only used in select mode.
func New(bank *quiz.Bank, mode Mode, factory DrillFactory) *ChaptersScreen {
	return &ChaptersScreen{
		bank:    bank,
		mode:    mode,
		factory: factory,
	}
}

func (c *ChaptersScreen) Init() tea.Cmd {
	return nil
}

func (c *ChaptersScreen) Title() string {
	if c.mode == ModeManage {
		return "Chapters"
	}
	return "Study"
}

func (c *ChaptersScreen) KeyHints() []layout.KeyHint {
	if c.mode == ModeManage {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Toggle"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Study"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChaptersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	names := c.bank.Chapters()
	if len(names) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
		c.message = ""
	case "down", "j":
		if c.cursor < len(names)-1 {
			c.cursor++
		}
		c.message = ""
	case "enter", " ":
		name := names[c.cursor]
		if c.mode == ModeManage {
			if c.bank.Toggle(name) {
				c.message = fmt.Sprintf("Disabled: %s", name)
			} else {
				c.message = fmt.Sprintf("Enabled: %s", name)
			}
			return c, nil
		}
		if c.bank.IsDisabled(name) {
			c.message = fmt.Sprintf("Chapter %q is disabled. Enable it first.", name)
			return c, nil
		}
		return c, func() tea.Msg {
			return router.PushScreenMsg{Screen: c.factory(name)}
		}
	}

	return c, nil
}

func (c *ChaptersScreen) View(width, height int) string {
	names := c.bank.Chapters()
	if len(names) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("The bank has no chapters."))
	}

	var b strings.Builder
	for i, name := range names {
		status := "[Enabled]"
		statusStyle := lipgloss.NewStyle().Foreground(theme.Success)
		if c.bank.IsDisabled(name) {
			status = "[Disabled]"
			statusStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		line := fmt.Sprintf("%d. %s (%d questions) ", i+1, name, len(c.bank.Questions(name)))

		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.cursor {
			prefix = "  > "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		b.WriteString(prefix + style.Render(line) + statusStyle.Render(status))
		b.WriteString("\n")
	}

	if c.message != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + c.message))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
