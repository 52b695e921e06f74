package quiz

import "sort"

// Merge combines two banks into a new one. Chapters present in both banks
// get a's questions followed by b's; single-source chapters are carried
// over untouched. The result lists chapters sorted lexicographically by
// name. Weights and disabled state are not consulted.
func Merge(a, b *Bank) *Bank {
	names := make(map[string]bool)
	for _, n := range a.Chapters() {
		names[n] = true
	}
	for _, n := range b.Chapters() {
		names[n] = true
	}

	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	out := NewBank()
	for _, n := range sorted {
		var qs []*Question
		qs = append(qs, a.Questions(n)...)
		qs = append(qs, b.Questions(n)...)
		out.AddChapter(n, qs)
	}
	return out
}
