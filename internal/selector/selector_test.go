package selector

import (
	"testing"

	"github.com/akashpai/quizdrill/internal/quiz"
)

func newBank(weights ...float64) *quiz.Bank {
	b := quiz.NewBank()
	qs := make([]*quiz.Question, len(weights))
	for i, w := range weights {
		qs[i] = &quiz.Question{Text: string(rune('a' + i)), Weight: w}
	}
	b.AddChapter("ch", qs)
	return b
}

func TestPickEmptyChapter(t *testing.T) {
	b := quiz.NewBank()
	b.AddChapter("ch", nil)

	s := NewSeeded(1)
	if got := s.Pick(b, "ch"); got != nil {
		t.Errorf("Pick on empty chapter = %v, want nil", got)
	}
}

func TestPickMissingChapter(t *testing.T) {
	s := NewSeeded(1)
	if got := s.Pick(quiz.NewBank(), "nope"); got != nil {
		t.Errorf("Pick on missing chapter = %v, want nil", got)
	}
}

func TestPickDisabledChapter(t *testing.T) {
	b := newBank(1, 1)
	b.Toggle("ch")

	s := NewSeeded(1)
	for i := 0; i < 10; i++ {
		if got := s.Pick(b, "ch"); got != nil {
			t.Fatalf("Pick on disabled chapter = %v, want nil", got)
		}
	}
}

func TestPickProportionalToWeight(t *testing.T) {
	b := newBank(9, 1)
	s := NewSeeded(42)

	const trials = 10000
	first := 0
	for i := 0; i < trials; i++ {
		if q := s.Pick(b, "ch"); q == b.Questions("ch")[0] {
			first++
		}
	}

	// Expect ~90%; allow a wide band since this is a statistical test.
	ratio := float64(first) / trials
	if ratio < 0.85 || ratio > 0.95 {
		t.Errorf("heavy question picked %.1f%% of the time, want ~90%%", ratio*100)
	}
}

func TestPickZeroTotalIsUniform(t *testing.T) {
	b := newBank(0, 0, 0, 0)
	s := NewSeeded(7)

	const trials = 8000
	counts := make(map[*quiz.Question]int)
	for i := 0; i < trials; i++ {
		q := s.Pick(b, "ch")
		if q == nil {
			t.Fatal("Pick returned nil for a non-empty chapter")
		}
		counts[q]++
	}

	// Every question should land near trials/4.
	for _, q := range b.Questions("ch") {
		got := counts[q]
		if got < trials/4-trials/10 || got > trials/4+trials/10 {
			t.Errorf("question %q picked %d times, want ~%d", q.Text, got, trials/4)
		}
	}
}

func TestPickAlwaysReturnsFromNonEmpty(t *testing.T) {
	// Many tiny weights stress the cumulative walk; the tail fallback
	// must keep Pick total.
	weights := make([]float64, 50)
	for i := range weights {
		weights[i] = 0.1
	}
	b := newBank(weights...)

	s := NewSeeded(99)
	for i := 0; i < 5000; i++ {
		if s.Pick(b, "ch") == nil {
			t.Fatal("Pick returned nil for a non-empty enabled chapter")
		}
	}
}

func TestShuffledQuestionsSkipsDisabled(t *testing.T) {
	b := quiz.NewBank()
	b.AddChapter("keep", []*quiz.Question{{Text: "k1", Weight: 1}, {Text: "k2", Weight: 1}})
	b.AddChapter("skip", []*quiz.Question{{Text: "s1", Weight: 1}})
	b.Toggle("skip")

	s := NewSeeded(3)
	all := s.ShuffledQuestions(b)

	if len(all) != 2 {
		t.Fatalf("got %d questions, want 2", len(all))
	}
	for _, cq := range all {
		if cq.Chapter != "keep" {
			t.Errorf("question from disabled chapter %q leaked into the queue", cq.Chapter)
		}
	}
}

func TestShuffledQuestionsCoversEverything(t *testing.T) {
	b := quiz.NewBank()
	b.AddChapter("a", []*quiz.Question{{Text: "a1", Weight: 1}, {Text: "a2", Weight: 1}})
	b.AddChapter("b", []*quiz.Question{{Text: "b1", Weight: 1}})

	s := NewSeeded(5)
	all := s.ShuffledQuestions(b)

	seen := make(map[string]bool)
	for _, cq := range all {
		seen[cq.Question.Text] = true
	}
	for _, text := range []string{"a1", "a2", "b1"} {
		if !seen[text] {
			t.Errorf("question %q missing from the queue", text)
		}
	}
}
