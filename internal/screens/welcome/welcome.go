// Package welcome shows the startup screen: a short banner and a prompt
// for the bank file path, defaulting to the standard location when the
// learner just presses Enter.
package welcome

import (
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/akashpai/quizdrill/internal/quiz"
	"github.com/akashpai/quizdrill/internal/router"
	"github.com/akashpai/quizdrill/internal/screen"
	"github.com/akashpai/quizdrill/internal/store"
	"github.com/akashpai/quizdrill/internal/ui/components"
	"github.com/akashpai/quizdrill/internal/ui/theme"
)

// HomeFactory builds the home screen once the bank is loaded. notice is a
// non-fatal load message to surface (seeded bank), or "".
type HomeFactory func(bank *quiz.Bank, path, notice string) screen.Screen

// bankLoadedMsg carries the result of the async bank load.
type bankLoadedMsg struct {
	bank   *quiz.Bank
	path   string
	notice string
	err    error
}

// WelcomeScreen prompts for a bank path and loads it.
type WelcomeScreen struct {
	defaultPath string
	log         *zap.Logger
	homeFactory HomeFactory

	input   components.TextInput
	loading bool
	errMsg  string
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. defaultPath is used when the prompt is left
// empty.
func New(defaultPath string, log *zap.Logger, homeFactory HomeFactory) *WelcomeScreen {
	return &WelcomeScreen{
		defaultPath: defaultPath,
		log:         log,
		homeFactory: homeFactory,
		input:       components.NewTextInput(defaultPath, 0),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		w.loading = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		home := w.homeFactory(msg.bank, msg.path, msg.notice)
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}

	case tea.KeyMsg:
		if w.loading {
			return w, nil
		}
		if msg.String() == "enter" {
			path := strings.TrimSpace(w.input.Value())
			if path == "" {
				path = w.defaultPath
			}
			w.errMsg = ""
			w.loading = true
			return w, w.loadBank(path)
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// loadBank loads or seeds the bank off the update loop.
func (w *WelcomeScreen) loadBank(path string) tea.Cmd {
	return func() tea.Msg {
		if err := store.EnsureDir(path); err != nil {
			return bankLoadedMsg{err: err}
		}

		existed := false
		if _, err := os.Stat(path); err == nil {
			existed = true
		}

		bank, err := store.Load(path, w.log)
		if err != nil {
			return bankLoadedMsg{err: err}
		}

		notice := ""
		if !existed {
			notice = "No bank found. Created a sample bank to get you started."
		}
		return bankLoadedMsg{bank: bank, path: path, notice: notice}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("QUIZDRILL"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("adaptive multiple-choice drilling"))
	sections = append(sections, "")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("Bank file (Enter for default):")
	sections = append(sections, prompt)
	sections = append(sections, w.input.View())

	if w.loading {
		sections = append(sections, "", theme.Hint.Render("loading..."))
	}
	if w.errMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
