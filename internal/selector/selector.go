// Package selector implements roulette-wheel question selection: a
// question's chance of being drawn is proportional to its current weight
// within its chapter, so questions the learner keeps missing come up more
// often and mastered ones fade toward the weight floor.
package selector

import (
	"math/rand"
	"time"

	"github.com/akashpai/quizdrill/internal/quiz"
)

// Selector draws questions from a bank using weighted random sampling.
type Selector struct {
	rnd *rand.Rand
}

// New creates a selector seeded from the current time.
func New() *Selector {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a selector with a fixed seed, for deterministic tests.
func NewSeeded(seed int64) *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects one question from the chapter with probability proportional
// to its weight. It returns nil when the chapter is disabled, missing, or
// empty. A zero total weight degenerates to a uniform pick so selection
// still makes progress. Lists are walked once per draw; chapters are
// study-set sized, so O(n) is fine.
func (s *Selector) Pick(b *quiz.Bank, chapter string) *quiz.Question {
	if b.IsDisabled(chapter) {
		return nil
	}
	questions := b.Questions(chapter)
	if len(questions) == 0 {
		return nil
	}

	total := 0.0
	for _, q := range questions {
		total += q.Weight
	}
	if total == 0 {
		return questions[s.rnd.Intn(len(questions))]
	}

	r := s.rnd.Float64() * total
	cumulative := 0.0
	for _, q := range questions {
		cumulative += q.Weight
		if r <= cumulative {
			return q
		}
	}
	// Floating-point accumulation can leave r past the final cumulative
	// sum; the last question is the correct bucket.
	return questions[len(questions)-1]
}

// ChapterQuestion pairs a question with the chapter it came from.
type ChapterQuestion struct {
	Chapter  string
	Question *quiz.Question
}

// ShuffledQuestions returns every question from every enabled chapter in
// random order. This feeds the exhaustive test-all flow, which walks all
// material once rather than sampling by weight.
func (s *Selector) ShuffledQuestions(b *quiz.Bank) []ChapterQuestion {
	var all []ChapterQuestion
	for _, name := range b.EnabledChapters() {
		for _, q := range b.Questions(name) {
			all = append(all, ChapterQuestion{Chapter: name, Question: q})
		}
	}
	s.rnd.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return all
}
