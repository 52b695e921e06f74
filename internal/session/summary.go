package session

import (
	"time"

	"github.com/akashpai/quizdrill/internal/stats"
)

// ChapterResult holds the per-chapter score of a session.
type ChapterResult struct {
	Chapter string
	Asked   int
	Correct int
}

// Summary is the final report of a finished session.
type Summary struct {
	SessionID string
	Mode      Mode
	Asked     int
	Correct   int
	Accuracy  float64
	Duration  time.Duration
	Chapters  []ChapterResult
	Stats     *stats.Record
}

// BuildSummary snapshots a session state into a summary. Chapters appear
// in the order they were first asked from.
func BuildSummary(s *State) *Summary {
	sum := &Summary{
		SessionID: s.ID,
		Mode:      s.Mode,
		Asked:     s.Asked,
		Correct:   s.Correct,
		Accuracy:  s.Accuracy(),
		Duration:  s.Elapsed(),
		Stats:     s.Stats,
	}
	for _, name := range s.chapterOrder {
		sum.Chapters = append(sum.Chapters, *s.chapterResults[name])
	}
	return sum
}
