// Package drill runs a study or test session: it asks questions one at a
// time, shows feedback, honors the continue-prompt cadence, and saves the
// bank when the loop ends.
package drill

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/akashpai/quizdrill/internal/quiz"
	"github.com/akashpai/quizdrill/internal/router"
	"github.com/akashpai/quizdrill/internal/screen"
	"github.com/akashpai/quizdrill/internal/screens/summary"
	"github.com/akashpai/quizdrill/internal/session"
	"github.com/akashpai/quizdrill/internal/store"
	"github.com/akashpai/quizdrill/internal/ui/components"
	"github.com/akashpai/quizdrill/internal/ui/layout"
)

type phase int

const (
	phaseAsking phase = iota
	phaseFeedback
	phaseContinue
	phaseEmpty
	phaseQuitConfirm
)

// DrillScreen implements screen.Screen for an active session.
type DrillScreen struct {
	bank  *quiz.Bank
	path  string
	state *session.State
	log   *zap.Logger

	phase       phase
	resumePhase phase // phase to return to when quit confirm is dismissed
	chapter     string
	question    *quiz.Question
	mc          components.MultiChoice
	lastCorrect bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.EscOwner = (*DrillScreen)(nil)

// OwnsEsc keeps the app's back navigation from skipping the quit confirm.
func (d *DrillScreen) OwnsEsc() bool { return true }

// New creates a drill screen over an already-constructed session state.
func New(bank *quiz.Bank, path string, state *session.State, log *zap.Logger) *DrillScreen {
	return &DrillScreen{
		bank:  bank,
		path:  path,
		state: state,
		log:   log,
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	d.advance()
	return nil
}

func (d *DrillScreen) Title() string {
	if d.state.Mode == session.ModeTest {
		return "Test"
	}
	return "Study: " + d.state.Chapter
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	switch d.phase {
	case phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case phaseContinue, phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Yes"},
			{Key: "N", Description: "No"},
		}
	case phaseEmpty:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	default:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Pick"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "End session"},
		}
	}
}

// advance pulls the next question from the session, or moves to the
// terminal phase when there is none.
func (d *DrillScreen) advance() {
	chapter, q, ok := d.state.Next()
	if !ok {
		d.phase = phaseEmpty
		return
	}
	d.chapter = chapter
	d.question = q

	correctIdx := 0
	for i, opt := range q.Options {
		if opt == q.CorrectOption {
			correctIdx = i
			break
		}
	}
	d.mc = components.NewMultiChoice(q.Text, q.Options, correctIdx)
	d.phase = phaseAsking
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	key := kmsg.String()

	switch d.phase {
	case phaseQuitConfirm:
		switch key {
		case "y", "Y", "enter":
			return d, d.endSession()
		case "n", "N", "esc":
			d.phase = d.resumePhase
		}
		return d, nil

	case phaseEmpty:
		// Nothing was asked: leave without touching the bank file.
		if d.state.Asked == 0 {
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return d, d.endSession()

	case phaseFeedback:
		if d.state.ShouldPromptContinue() {
			d.phase = phaseContinue
			return d, nil
		}
		d.advance()
		return d, nil

	case phaseContinue:
		switch key {
		case "y", "Y", "enter":
			d.advance()
		case "n", "N", "esc", "q":
			return d, d.endSession()
		}
		return d, nil

	default: // phaseAsking
		if key == "esc" {
			d.resumePhase = d.phase
			d.phase = phaseQuitConfirm
			return d, nil
		}

		var cmd tea.Cmd
		d.mc, cmd = d.mc.Update(msg)
		if d.mc.Submitted {
			d.lastCorrect = d.state.Submit(d.chapter, d.question, d.mc.Chosen())
			d.phase = phaseFeedback
		}
		return d, cmd
	}
}

// endSession saves the bank and swaps in the summary screen.
func (d *DrillScreen) endSession() tea.Cmd {
	if err := store.Save(d.path, d.bank); err != nil {
		d.log.Warn("could not save bank", zap.String("path", d.path), zap.Error(err))
	}

	sum := session.BuildSummary(d.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
