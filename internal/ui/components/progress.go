package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akashpai/quizdrill/internal/ui/theme"
)

// percentWidth reserves room for the trailing percentage, up to "  100%".
const percentWidth = 6

// ProgressBar renders a fraction in [0, 1] as a horizontal accuracy bar
// with a trailing percentage. Out-of-range fractions are clamped.
type ProgressBar struct {
	Fraction float64
	Width    int
}

// NewProgressBar creates a bar of the given total width.
func NewProgressBar(fraction float64, width int) ProgressBar {
	return ProgressBar{Fraction: fraction, Width: width}
}

// View renders the bar.
func (p ProgressBar) View() string {
	frac := p.Fraction
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	barWidth := p.Width - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * frac)
	empty := barWidth - filled

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", empty))

	// Fixed-width suffix keeps the total width stable as the value moves.
	return bar + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%*d%%", percentWidth-1, int(frac*100)))
}
