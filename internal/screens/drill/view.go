package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akashpai/quizdrill/internal/session"
	"github.com/akashpai/quizdrill/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	switch d.phase {
	case phaseEmpty:
		return d.renderEmpty(width, height)
	case phaseQuitConfirm:
		return renderConfirm(width, height, "End this session?")
	case phaseContinue:
		label := "Continue with this chapter?"
		if d.state.Mode == session.ModeTest {
			label = "Continue testing?"
		}
		return renderConfirm(width, height, label)
	case phaseFeedback:
		return d.renderFeedback(width, height)
	default:
		return d.renderQuestion(width, height)
	}
}

func (d *DrillScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	b.WriteString(d.progressLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if d.state.Mode == session.ModeTest {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Chapter: " + d.chapter))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.mc.View()))

	return b.String()
}

func (d *DrillScreen) renderFeedback(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if d.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("✗ Incorrect"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("The correct answer is: " + d.question.CorrectOption))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.mc.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("press any key")))

	return b.String()
}

func (d *DrillScreen) renderEmpty(width, height int) string {
	msg := fmt.Sprintf("No questions available in %q or the chapter is disabled.", d.state.Chapter)
	if d.state.Mode == session.ModeTest {
		if d.state.Asked == 0 {
			msg = "Nothing to test. Enable at least one chapter with questions."
		} else {
			msg = "That's everything. All questions asked."
		}
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Hint.Render(msg))
}

func (d *DrillScreen) progressLine(width int) string {
	pct := 0
	if d.state.Asked > 0 {
		pct = int(d.state.Accuracy() * 100)
	}
	left := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Progress: %d/%d (%d%% correct)", d.state.Correct, d.state.Asked, pct))

	var right string
	if d.state.Mode == session.ModeTest {
		right = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d left  ", d.state.Remaining()))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderConfirm(width, height int, label string) string {
	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label) +
		"\n\n" +
		theme.Hint.Render("y = yes    n = no")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
