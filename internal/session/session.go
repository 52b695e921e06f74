// Package session holds the state of one study or test run: which
// questions come next, running counters, and the stats record. The
// presentation layer drives it one question at a time; the bank is saved
// once when the loop ends.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/akashpai/quizdrill/internal/quiz"
	"github.com/akashpai/quizdrill/internal/selector"
	"github.com/akashpai/quizdrill/internal/stats"
)

// Mode distinguishes studying one chapter from testing all enabled ones.
type Mode int

const (
	// ModeStudy draws weighted questions from a single chapter until the
	// learner stops.
	ModeStudy Mode = iota
	// ModeTest walks every question of every enabled chapter once, in
	// random order.
	ModeTest
)

// State is the mutable state of an active session.
type State struct {
	ID      string
	Mode    Mode
	Chapter string // study mode only

	bank *quiz.Bank
	sel  *selector.Selector

	queue    []selector.ChapterQuestion // test mode only
	queuePos int

	Asked   int
	Correct int
	Stats   *stats.Record
	Started time.Time

	promptEvery    int
	chapterResults map[string]*ChapterResult
	chapterOrder   []string
}

// NewStudy starts a study session over one chapter. rec is the caller's
// stats record; it outlives the session so accuracy accumulates across
// runs within the process.
func NewStudy(b *quiz.Bank, chapter string, sel *selector.Selector, rec *stats.Record, cfg Config) *State {
	return &State{
		ID:             uuid.New().String(),
		Mode:           ModeStudy,
		Chapter:        chapter,
		bank:           b,
		sel:            sel,
		Stats:          rec,
		Started:        time.Now(),
		promptEvery:    cfg.StudyPromptEvery,
		chapterResults: make(map[string]*ChapterResult),
	}
}

// NewTest starts a test session across all enabled chapters. The question
// queue is exhaustive and shuffled up front.
func NewTest(b *quiz.Bank, sel *selector.Selector, rec *stats.Record, cfg Config) *State {
	return &State{
		ID:             uuid.New().String(),
		Mode:           ModeTest,
		bank:           b,
		sel:            sel,
		queue:          sel.ShuffledQuestions(b),
		Stats:          rec,
		Started:        time.Now(),
		promptEvery:    cfg.TestPromptEvery,
		chapterResults: make(map[string]*ChapterResult),
	}
}

// Next returns the chapter and question to ask next. ok is false when the
// session has nothing left to offer: an empty or disabled chapter in study
// mode, an exhausted queue in test mode.
func (s *State) Next() (chapter string, q *quiz.Question, ok bool) {
	switch s.Mode {
	case ModeStudy:
		q := s.sel.Pick(s.bank, s.Chapter)
		if q == nil {
			return "", nil, false
		}
		return s.Chapter, q, true
	default:
		if s.queuePos >= len(s.queue) {
			return "", nil, false
		}
		item := s.queue[s.queuePos]
		s.queuePos++
		return item.Chapter, item.Question, true
	}
}

// Submit evaluates the chosen option, updating the question weight, the
// stats record, and the session counters. Returns whether the answer was
// correct.
func (s *State) Submit(chapter string, q *quiz.Question, chosen string) bool {
	correct := quiz.Evaluate(q, chosen, s.Stats)

	s.Asked++
	cr, okCh := s.chapterResults[chapter]
	if !okCh {
		cr = &ChapterResult{Chapter: chapter}
		s.chapterResults[chapter] = cr
		s.chapterOrder = append(s.chapterOrder, chapter)
	}
	cr.Asked++
	if correct {
		s.Correct++
		cr.Correct++
	}
	return correct
}

// ShouldPromptContinue reports whether the loop should ask the learner to
// keep going after the question just answered.
func (s *State) ShouldPromptContinue() bool {
	if s.promptEvery <= 0 {
		return false
	}
	return s.Asked > 0 && s.Asked%s.promptEvery == 0
}

// Accuracy returns the fraction of correct answers so far.
func (s *State) Accuracy() float64 {
	if s.Asked == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Asked)
}

// Remaining returns how many queued questions are left in test mode.
func (s *State) Remaining() int {
	if s.Mode != ModeTest {
		return 0
	}
	return len(s.queue) - s.queuePos
}

// Elapsed returns the session duration so far.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.Started)
}
