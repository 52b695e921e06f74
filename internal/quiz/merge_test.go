package quiz

import (
	"reflect"
	"testing"
)

func TestMergeConcatenatesSharedChapters(t *testing.T) {
	q1 := &Question{Text: "q1"}
	q2 := &Question{Text: "q2"}
	q3 := &Question{Text: "q3"}

	a := NewBank()
	a.AddChapter("Ch1", []*Question{q1})

	b := NewBank()
	b.AddChapter("Ch1", []*Question{q2})
	b.AddChapter("Ch2", []*Question{q3})

	merged := Merge(a, b)

	if got, want := merged.Chapters(), []string{"Ch1", "Ch2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Chapters() = %v, want %v", got, want)
	}
	if got := merged.Questions("Ch1"); len(got) != 2 || got[0] != q1 || got[1] != q2 {
		t.Errorf("Ch1 = %v, want [q1 q2]", got)
	}
	if got := merged.Questions("Ch2"); len(got) != 1 || got[0] != q3 {
		t.Errorf("Ch2 = %v, want [q3]", got)
	}
}

func TestMergeSortsChapterNames(t *testing.T) {
	a := NewBank()
	a.AddChapter("Zebra", nil)
	a.AddChapter("Apple", nil)

	b := NewBank()
	b.AddChapter("Mango", nil)

	merged := Merge(a, b)

	want := []string{"Apple", "Mango", "Zebra"}
	if got := merged.Chapters(); !reflect.DeepEqual(got, want) {
		t.Errorf("Chapters() = %v, want sorted %v", got, want)
	}
}

func TestMergeLeavesInputsUntouched(t *testing.T) {
	a := NewBank()
	a.AddChapter("Ch1", []*Question{{Text: "q1", Weight: 0.4}})

	b := NewBank()
	b.AddChapter("Ch1", []*Question{{Text: "q2", Weight: 2.0}})

	merged := Merge(a, b)

	if len(a.Questions("Ch1")) != 1 || len(b.Questions("Ch1")) != 1 {
		t.Error("merge mutated an input bank")
	}
	// Weights pass through unchanged.
	got := merged.Questions("Ch1")
	if got[0].Weight != 0.4 || got[1].Weight != 2.0 {
		t.Errorf("weights = %v, %v; want 0.4, 2.0", got[0].Weight, got[1].Weight)
	}
}
