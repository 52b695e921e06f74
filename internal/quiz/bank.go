package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Bank maps chapter names to ordered question lists. Chapter order follows
// the order chapters appeared in storage, which only matters for stable
// display numbering. The disabled set is session state and is never
// persisted.
type Bank struct {
	chapters map[string][]*Question
	order    []string
	disabled map[string]bool
}

// NewBank creates an empty bank.
func NewBank() *Bank {
	return &Bank{
		chapters: make(map[string][]*Question),
		disabled: make(map[string]bool),
	}
}

// AddChapter appends questions to the named chapter, creating it if needed.
func (b *Bank) AddChapter(name string, questions []*Question) {
	if _, ok := b.chapters[name]; !ok {
		b.order = append(b.order, name)
	}
	b.chapters[name] = append(b.chapters[name], questions...)
}

// Chapters returns chapter names in display order.
func (b *Bank) Chapters() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Questions returns the question list for a chapter, or nil if the chapter
// does not exist.
func (b *Bank) Questions(name string) []*Question {
	return b.chapters[name]
}

// Has reports whether the chapter exists.
func (b *Bank) Has(name string) bool {
	_, ok := b.chapters[name]
	return ok
}

// QuestionCount returns the total number of questions across all chapters.
func (b *Bank) QuestionCount() int {
	n := 0
	for _, qs := range b.chapters {
		n += len(qs)
	}
	return n
}

// IsDisabled reports whether the chapter is currently excluded from
// selection.
func (b *Bank) IsDisabled(name string) bool {
	return b.disabled[name]
}

// Toggle flips a chapter between enabled and disabled. Returns the new
// disabled state.
func (b *Bank) Toggle(name string) bool {
	b.disabled[name] = !b.disabled[name]
	return b.disabled[name]
}

// EnabledChapters returns the names of all enabled chapters in display
// order.
func (b *Bank) EnabledChapters() []string {
	var out []string
	for _, name := range b.order {
		if !b.disabled[name] {
			out = append(out, name)
		}
	}
	return out
}

// MarshalJSON emits the flat chapter mapping with chapters in display
// order. Weights are always present on output.
func (b *Bank) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		qs := b.chapters[name]
		if qs == nil {
			qs = []*Question{}
		}
		val, err := json.Marshal(qs)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the chapter mapping with a token stream so that
// chapter order survives the round trip (encoding/json map decoding would
// lose it).
func (b *Bank) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("bank: top-level value must be an object")
	}

	b.chapters = make(map[string][]*Question)
	b.order = nil
	b.disabled = make(map[string]bool)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("bank: unexpected key token %v", keyTok)
		}

		var qs []*Question
		if err := dec.Decode(&qs); err != nil {
			return fmt.Errorf("bank: chapter %q: %w", name, err)
		}

		if _, exists := b.chapters[name]; !exists {
			b.order = append(b.order, name)
		}
		b.chapters[name] = qs
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
