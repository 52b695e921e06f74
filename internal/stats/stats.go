package stats

// QuestionStats accumulates answer counts for one question.
type QuestionStats struct {
	Correct   int
	Incorrect int
}

// Attempts returns the total number of recorded answers.
func (s QuestionStats) Attempts() int {
	return s.Correct + s.Incorrect
}

// Accuracy returns the fraction of correct answers, or 0 with no attempts.
func (s QuestionStats) Accuracy() float64 {
	total := s.Attempts()
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total)
}

// Record tracks per-question answer counts keyed by question text for one
// session. It is an owned value threaded through session calls, not ambient
// state, so tests and multiple sessions stay deterministic. Entries keep
// first-seen order for stable display.
type Record struct {
	entries map[string]*QuestionStats
	order   []string
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{entries: make(map[string]*QuestionStats)}
}

func (r *Record) entry(question string) *QuestionStats {
	s, ok := r.entries[question]
	if !ok {
		s = &QuestionStats{}
		r.entries[question] = s
		r.order = append(r.order, question)
	}
	return s
}

// MarkCorrect increments the correct count for a question.
func (r *Record) MarkCorrect(question string) {
	r.entry(question).Correct++
}

// MarkIncorrect increments the incorrect count for a question.
func (r *Record) MarkIncorrect(question string) {
	r.entry(question).Incorrect++
}

// Get returns the stats for a question. The second value is false if the
// question has never been answered.
func (r *Record) Get(question string) (QuestionStats, bool) {
	s, ok := r.entries[question]
	if !ok {
		return QuestionStats{}, false
	}
	return *s, true
}

// Questions returns answered question texts in first-seen order.
func (r *Record) Questions() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of distinct questions answered.
func (r *Record) Len() int {
	return len(r.order)
}

// Totals returns the aggregate correct and incorrect counts across all
// questions.
func (r *Record) Totals() (correct, incorrect int) {
	for _, s := range r.entries {
		correct += s.Correct
		incorrect += s.Incorrect
	}
	return correct, incorrect
}
