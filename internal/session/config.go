package session

// Config controls the continue-prompt cadence of a session loop. Studying
// a single chapter checks in after every question, while a test across all
// chapters only interrupts every fifth question; both are configurable
// rather than baked into the loop.
type Config struct {
	StudyPromptEvery int
	TestPromptEvery  int
}

// DefaultConfig returns the standard cadence.
func DefaultConfig() Config {
	return Config{
		StudyPromptEvery: 1,
		TestPromptEvery:  5,
	}
}
