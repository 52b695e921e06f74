package statsview

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/akashpai/quizdrill/internal/stats"
)

func TestViewEmptyRecord(t *testing.T) {
	s := New(stats.NewRecord())
	view := s.View(80, 24)
	if !strings.Contains(view, "No statistics available yet.") {
		t.Error("empty record should render the placeholder message")
	}
}

func TestViewTruncatesLongQuestions(t *testing.T) {
	rec := stats.NewRecord()
	long := strings.Repeat("x", 200)
	rec.MarkCorrect(long)

	s := New(rec)
	view := s.View(80, 24)

	if strings.Contains(view, long) {
		t.Error("long question rendered untruncated")
	}
	if !strings.Contains(view, "...") {
		t.Error("truncated question is missing its ellipsis")
	}
}

func TestViewTruncatesMultibyteOnRunes(t *testing.T) {
	rec := stats.NewRecord()
	long := strings.Repeat("質", 100)
	rec.MarkCorrect(long)

	s := New(rec)
	view := s.View(120, 24)

	if !utf8.ValidString(view) {
		t.Fatal("view contains invalid UTF-8 after truncating a multibyte question")
	}
	if !strings.Contains(view, strings.Repeat("質", maxQuestionWidth)+"...") {
		t.Error("multibyte question not truncated at the rune boundary")
	}
}
