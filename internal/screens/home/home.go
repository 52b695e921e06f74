// Package home is the main menu: study a chapter, test everything, manage
// chapters, review statistics.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/akashpai/quizdrill/internal/quiz"
	"github.com/akashpai/quizdrill/internal/router"
	"github.com/akashpai/quizdrill/internal/screen"
	"github.com/akashpai/quizdrill/internal/screens/chapters"
	"github.com/akashpai/quizdrill/internal/screens/drill"
	"github.com/akashpai/quizdrill/internal/screens/statsview"
	"github.com/akashpai/quizdrill/internal/selector"
	"github.com/akashpai/quizdrill/internal/session"
	"github.com/akashpai/quizdrill/internal/stats"
	"github.com/akashpai/quizdrill/internal/ui/components"
	"github.com/akashpai/quizdrill/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	bank   *quiz.Bank
	rec    *stats.Record
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. notice is an optional one-line message from
// startup (for example that a sample bank was created).
func New(bank *quiz.Bank, path string, sel *selector.Selector, rec *stats.Record, cfg session.Config, log *zap.Logger, notice string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Study a Chapter", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chapters.New(bank, chapters.ModeSelect, func(chapter string) screen.Screen {
						st := session.NewStudy(bank, chapter, sel, rec, cfg)
						return drill.New(bank, path, st, log)
					}),
				}
			}
		}},
		{Label: "Test All Chapters", Action: func() tea.Cmd {
			return func() tea.Msg {
				st := session.NewTest(bank, sel, rec, cfg)
				return router.PushScreenMsg{
					Screen: drill.New(bank, path, st, log),
				}
			}
		}},
		{Label: "Chapters", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chapters.New(bank, chapters.ModeManage, nil),
				}
			}
		}},
		{Label: "Statistics", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsview.New(rec)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		bank:   bank,
		rec:    rec,
		menu:   components.NewMenu(items),
		notice: notice,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && h.notice != "" {
		// First key press clears the startup notice.
		h.notice = ""
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("QUIZDRILL"))
	sections = append(sections, theme.Subtitle.Width(width).Render(h.statsLine()))
	sections = append(sections, "")

	if h.notice != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(h.notice))
		sections = append(sections, "")
	}

	menu := h.menu.View()
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) statsLine() string {
	enabled := len(h.bank.EnabledChapters())
	total := len(h.bank.Chapters())
	correct, incorrect := h.rec.Totals()
	answered := correct + incorrect

	line := fmt.Sprintf("%d/%d chapters enabled   %d questions", enabled, total, h.bank.QuestionCount())
	if answered > 0 {
		pct := int(float64(correct) / float64(answered) * 100)
		line += fmt.Sprintf("   %d answered (%d%%)", answered, pct)
	}
	return line
}

func (h *HomeScreen) Title() string {
	return "Home"
}
