package quiz

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBankChapterOrder(t *testing.T) {
	b := NewBank()
	b.AddChapter("Zoology", []*Question{{Text: "z1"}})
	b.AddChapter("Anatomy", []*Question{{Text: "a1"}})
	b.AddChapter("Botany", []*Question{{Text: "b1"}})

	want := []string{"Zoology", "Anatomy", "Botany"}
	if got := b.Chapters(); !reflect.DeepEqual(got, want) {
		t.Errorf("Chapters() = %v, want insertion order %v", got, want)
	}
}

func TestBankToggleAndEnabled(t *testing.T) {
	b := NewBank()
	b.AddChapter("One", nil)
	b.AddChapter("Two", nil)

	if b.IsDisabled("One") {
		t.Error("new chapter starts disabled")
	}
	if disabled := b.Toggle("One"); !disabled {
		t.Error("first toggle should disable")
	}
	if got := b.EnabledChapters(); !reflect.DeepEqual(got, []string{"Two"}) {
		t.Errorf("EnabledChapters() = %v, want [Two]", got)
	}
	if disabled := b.Toggle("One"); disabled {
		t.Error("second toggle should re-enable")
	}
}

func TestBankJSONRoundTrip(t *testing.T) {
	b := NewBank()
	b.AddChapter("Cells", []*Question{
		{
			Text:          "q1",
			Options:       []string{"a", "b"},
			CorrectOption: "a",
			Weight:        0.7,
		},
		{
			Text:          "q2",
			Options:       []string{"x", "y", "z"},
			CorrectOption: "z",
			Weight:        1.5,
		},
	})
	b.AddChapter("Plants", []*Question{
		{Text: "q3", Options: []string{"p", "q"}, CorrectOption: "q", Weight: 0.1},
	})

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := NewBank()
	if err := json.Unmarshal(data, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(got.Chapters(), b.Chapters()) {
		t.Errorf("chapter order = %v, want %v", got.Chapters(), b.Chapters())
	}
	for _, name := range b.Chapters() {
		if !reflect.DeepEqual(got.Questions(name), b.Questions(name)) {
			t.Errorf("chapter %q: questions differ after round trip", name)
		}
	}
}

func TestBankUnmarshalPreservesFileOrder(t *testing.T) {
	// Keys deliberately not alphabetical; a plain map decode would not
	// keep this order.
	raw := []byte(`{
		"Chapter C": [],
		"Chapter A": [],
		"Chapter B": []
	}`)

	b := NewBank()
	if err := json.Unmarshal(raw, b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"Chapter C", "Chapter A", "Chapter B"}
	if got := b.Chapters(); !reflect.DeepEqual(got, want) {
		t.Errorf("Chapters() = %v, want %v", got, want)
	}
}

func TestBankUnmarshalRejectsNonObject(t *testing.T) {
	b := NewBank()
	if err := json.Unmarshal([]byte(`[1,2,3]`), b); err == nil {
		t.Error("expected error for non-object document")
	}
}

func TestQuestionCount(t *testing.T) {
	b := NewBank()
	b.AddChapter("One", []*Question{{Text: "a"}, {Text: "b"}})
	b.AddChapter("Two", []*Question{{Text: "c"}})
	b.AddChapter("Empty", nil)

	if got := b.QuestionCount(); got != 3 {
		t.Errorf("QuestionCount() = %d, want 3", got)
	}
}
