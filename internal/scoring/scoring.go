package scoring

import (
	"time"
)

// Score events.
const (
	TargetConsumed = "targetConsumed"
)

// Scoring tracks the score of the current run and the history of finished
// runs in this process.
type Scoring struct {
	// public
	CurrentScore int
	// private
	history    History
	scoreTable map[string]int
	now        func() time.Time
}

// NewScoring returns a tracker with a zero score and empty history.
func NewScoring() *Scoring {
	return &Scoring{
		scoreTable: getScoreTable(),
		now:        time.Now,
	}
}

// ScoreEvent updates the score for a game event. Unknown events score nothing.
func (s *Scoring) ScoreEvent(event string) {
	s.CurrentScore += s.scoreTable[event]
}

// Reset zeroes the current score. History is kept.
func (s *Scoring) Reset() {
	s.CurrentScore = 0
}

// Finish records the current run in the history and returns the entry.
func (s *Scoring) Finish(length int, elapsed time.Duration, reason string) RunEntry {
	entry := RunEntry{
		Score:   s.CurrentScore,
		Length:  length,
		Elapsed: elapsed,
		Reason:  reason,
		EndedAt: s.now(),
	}
	s.history.add(entry)
	return entry
}

// Accessor methods for run history, delegating to the history object.
func (s *Scoring) GetHighScore() *RunEntry {
	return s.history.GetHighScoreEntry()
}

func (s *Scoring) GetAttempts() int {
	return s.history.Attempts()
}

func (s *Scoring) GotHighScore() bool {
	return s.history.GotHighScore()
}

func (s *Scoring) GetNScoreEntries(n int) []RunEntry {
	return s.history.GetNScoreEntries(n)
}

// getScoreTable returns the points awarded per event.
func getScoreTable() map[string]int {
	return map[string]int{
		TargetConsumed: 1,
	}
}
