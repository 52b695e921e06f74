package session

import (
	"math"
	"testing"

	"github.com/akashpai/quizdrill/internal/quiz"
	"github.com/akashpai/quizdrill/internal/selector"
	"github.com/akashpai/quizdrill/internal/stats"
)

func testBank() *quiz.Bank {
	b := quiz.NewBank()
	b.AddChapter("Cells", []*quiz.Question{
		{Text: "cq1", Options: []string{"a", "b"}, CorrectOption: "a", Weight: 1},
		{Text: "cq2", Options: []string{"a", "b"}, CorrectOption: "b", Weight: 1},
	})
	b.AddChapter("Plants", []*quiz.Question{
		{Text: "pq1", Options: []string{"x", "y"}, CorrectOption: "y", Weight: 1},
	})
	return b
}

func TestStudyNextStaysInChapter(t *testing.T) {
	bank := testBank()
	s := NewStudy(bank, "Cells", selector.NewSeeded(1), stats.NewRecord(), DefaultConfig())

	for i := 0; i < 20; i++ {
		chapter, q, ok := s.Next()
		if !ok {
			t.Fatalf("Next() returned ok=false on iteration %d", i)
		}
		if chapter != "Cells" {
			t.Fatalf("Next() chapter = %q, want Cells", chapter)
		}
		if q.Text != "cq1" && q.Text != "cq2" {
			t.Fatalf("Next() returned question %q from another chapter", q.Text)
		}
	}
}

func TestStudyNextEmptyChapter(t *testing.T) {
	bank := testBank()
	s := NewStudy(bank, "No Such Chapter", selector.NewSeeded(1), stats.NewRecord(), DefaultConfig())
	if _, _, ok := s.Next(); ok {
		t.Error("Next() ok = true for a missing chapter")
	}
}

func TestStudyNextDisabledChapter(t *testing.T) {
	bank := testBank()
	bank.Toggle("Cells")
	s := NewStudy(bank, "Cells", selector.NewSeeded(1), stats.NewRecord(), DefaultConfig())
	if _, _, ok := s.Next(); ok {
		t.Error("Next() ok = true for a disabled chapter")
	}
}

func TestTestModeExhaustsQueueOnce(t *testing.T) {
	bank := testBank()
	s := NewTest(bank, selector.NewSeeded(7), stats.NewRecord(), DefaultConfig())

	seen := make(map[string]int)
	for {
		_, q, ok := s.Next()
		if !ok {
			break
		}
		seen[q.Text]++
	}

	if len(seen) != 3 {
		t.Fatalf("saw %d distinct questions, want 3", len(seen))
	}
	for text, n := range seen {
		if n != 1 {
			t.Errorf("question %q asked %d times, want once", text, n)
		}
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d after exhaustion, want 0", s.Remaining())
	}
}

func TestTestModeSkipsDisabled(t *testing.T) {
	bank := testBank()
	bank.Toggle("Plants")
	s := NewTest(bank, selector.NewSeeded(7), stats.NewRecord(), DefaultConfig())

	for {
		chapter, _, ok := s.Next()
		if !ok {
			break
		}
		if chapter == "Plants" {
			t.Fatal("test session drew from a disabled chapter")
		}
	}
}

func TestSubmitUpdatesCountersAndWeights(t *testing.T) {
	bank := testBank()
	rec := stats.NewRecord()
	s := NewStudy(bank, "Cells", selector.NewSeeded(1), rec, DefaultConfig())

	q := bank.Questions("Cells")[0]

	if !s.Submit("Cells", q, q.CorrectOption) {
		t.Error("Submit returned false for the correct option")
	}
	if s.Asked != 1 || s.Correct != 1 {
		t.Errorf("after correct: Asked=%d Correct=%d, want 1 1", s.Asked, s.Correct)
	}
	if math.Abs(q.Weight-0.7) > 1e-9 {
		t.Errorf("weight = %v after correct answer, want 0.7", q.Weight)
	}

	if s.Submit("Cells", q, "b") {
		t.Error("Submit returned true for a wrong option")
	}
	if s.Asked != 2 || s.Correct != 1 {
		t.Errorf("after incorrect: Asked=%d Correct=%d, want 2 1", s.Asked, s.Correct)
	}

	qs, ok := rec.Get(q.Text)
	if !ok || qs.Correct != 1 || qs.Incorrect != 1 {
		t.Errorf("record for %q = %+v ok=%v, want {1 1} true", q.Text, qs, ok)
	}
}

func TestShouldPromptContinue(t *testing.T) {
	bank := testBank()
	cfg := Config{StudyPromptEvery: 1, TestPromptEvery: 5}

	study := NewStudy(bank, "Cells", selector.NewSeeded(1), stats.NewRecord(), cfg)
	q := bank.Questions("Cells")[0]

	study.Submit("Cells", q, q.CorrectOption)
	if !study.ShouldPromptContinue() {
		t.Error("study session should prompt after every question")
	}

	test := NewTest(bank, selector.NewSeeded(1), stats.NewRecord(), cfg)
	for i := 1; i <= 6; i++ {
		test.Submit("Cells", q, q.CorrectOption)
		want := i%5 == 0
		if got := test.ShouldPromptContinue(); got != want {
			t.Errorf("after %d answers: ShouldPromptContinue() = %v, want %v", i, got, want)
		}
	}
}

func TestBuildSummaryChapterOrder(t *testing.T) {
	bank := testBank()
	s := NewTest(bank, selector.NewSeeded(1), stats.NewRecord(), DefaultConfig())

	pq := bank.Questions("Plants")[0]
	cq := bank.Questions("Cells")[0]
	s.Submit("Plants", pq, pq.CorrectOption)
	s.Submit("Cells", cq, "b")
	s.Submit("Plants", pq, "x")

	sum := BuildSummary(s)
	if sum.Asked != 3 || sum.Correct != 1 {
		t.Errorf("summary Asked=%d Correct=%d, want 3 1", sum.Asked, sum.Correct)
	}
	if len(sum.Chapters) != 2 {
		t.Fatalf("summary has %d chapters, want 2", len(sum.Chapters))
	}
	if sum.Chapters[0].Chapter != "Plants" || sum.Chapters[1].Chapter != "Cells" {
		t.Errorf("chapter order = [%s %s], want first-asked order [Plants Cells]",
			sum.Chapters[0].Chapter, sum.Chapters[1].Chapter)
	}
	if sum.Chapters[0].Asked != 2 || sum.Chapters[0].Correct != 1 {
		t.Errorf("Plants result = %+v, want Asked=2 Correct=1", sum.Chapters[0])
	}
}
