package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/akashpai/quizdrill/internal/quiz"
	"github.com/akashpai/quizdrill/internal/router"
	"github.com/akashpai/quizdrill/internal/screen"
	"github.com/akashpai/quizdrill/internal/screens/home"
	"github.com/akashpai/quizdrill/internal/screens/welcome"
	"github.com/akashpai/quizdrill/internal/selector"
	"github.com/akashpai/quizdrill/internal/session"
	"github.com/akashpai/quizdrill/internal/stats"
	"github.com/akashpai/quizdrill/internal/ui/layout"
)

// Options carries the dependencies for a TUI run.
type Options struct {
	DefaultBankPath string
	Logger          *zap.Logger
	Config          session.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	rec    *stats.Record
	width  int
	height int
}

// newAppModel wires the shared selector and stats record into the screen
// stack, starting at the welcome prompt.
func newAppModel(opts Options) AppModel {
	rec := stats.NewRecord()
	sel := selector.New()

	homeFactory := func(bank *quiz.Bank, path, notice string) screen.Screen {
		return home.New(bank, path, sel, rec, opts.Config, opts.Logger, notice)
	}

	welcomeScreen := welcome.New(opts.DefaultBankPath, opts.Logger, homeFactory)

	return AppModel{
		router: router.New(welcomeScreen),
		rec:    rec,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if owner, ok := m.router.Active().(screen.EscOwner); !ok || !owner.OwnsEsc() {
				if m.router.Depth() > 1 {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
				return m, nil
			}
			// Screen owns Esc; fall through and route it.
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	correct, incorrect := m.rec.Totals()
	header := layout.RenderHeader(title, correct+incorrect, correct, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
