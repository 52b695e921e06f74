package store

import "github.com/akashpai/quizdrill/internal/quiz"

// SeedBank returns the deterministic starter bank used when no usable bank
// file exists, so selection never runs against an empty store.
func SeedBank() *quiz.Bank {
	b := quiz.NewBank()
	b.AddChapter("Sample Chapter 1", []*quiz.Question{
		{
			Text:          "What is the powerhouse of the cell?",
			Options:       []string{"Nucleus", "Mitochondria", "Golgi apparatus", "Endoplasmic reticulum"},
			CorrectOption: "Mitochondria",
			Weight:        quiz.DefaultWeight,
		},
	})
	b.AddChapter("Sample Chapter 2", []*quiz.Question{
		{
			Text:          "What is the process by which plants make their food?",
			Options:       []string{"Respiration", "Photosynthesis", "Transpiration", "Digestion"},
			CorrectOption: "Photosynthesis",
			Weight:        quiz.DefaultWeight,
		},
	})
	return b
}
