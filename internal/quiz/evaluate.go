package quiz

import "github.com/akashpai/quizdrill/internal/stats"

// Evaluate compares the chosen option against the question's correct
// option, adjusts the question weight in place, and records the outcome.
// Correctness is exact string equality. The caller guarantees chosen is
// one of the question's options; this is not validated here.
func Evaluate(q *Question, chosen string, rec *stats.Record) bool {
	correct := q.IsCorrect(chosen)
	q.ApplyResult(correct)
	if rec != nil {
		if correct {
			rec.MarkCorrect(q.Text)
		} else {
			rec.MarkIncorrect(q.Text)
		}
	}
	return correct
}
