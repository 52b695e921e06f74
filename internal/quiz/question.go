package quiz

import (
	"encoding/json"
	"math"
)

// Weight tuning constants. A correct answer decays the weight toward the
// floor so mastered questions keep a small residual chance of reappearing;
// an incorrect answer grows it without bound so missed questions come to
// dominate selection.
const (
	DefaultWeight = 1.0
	WeightFloor   = 0.1
	CorrectStep   = 0.3
	IncorrectStep = 0.5
)

// Question is a single multiple-choice question. Text doubles as the key
// for per-question statistics, so it is expected to be unique within a
// chapter.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Weight        float64  `json:"weight"`
}

// UnmarshalJSON defaults the weight of questions that predate weighting.
// An explicit weight is kept as written, including zero, which makes
// selection within the chapter uniform until answers move it.
func (q *Question) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text          string   `json:"question"`
		Options       []string `json:"options"`
		CorrectOption string   `json:"correct_option"`
		Weight        *float64 `json:"weight"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	q.Text = raw.Text
	q.Options = raw.Options
	q.CorrectOption = raw.CorrectOption
	if raw.Weight != nil {
		q.Weight = *raw.Weight
	} else {
		q.Weight = DefaultWeight
	}
	return nil
}

// IsCorrect reports whether chosen matches the correct option exactly.
func (q *Question) IsCorrect(chosen string) bool {
	return chosen == q.CorrectOption
}

// ApplyResult adjusts the question weight after an answer.
func (q *Question) ApplyResult(correct bool) {
	if correct {
		q.Weight = math.Max(WeightFloor, q.Weight-CorrectStep)
	} else {
		q.Weight += IncorrectStep
	}
}
