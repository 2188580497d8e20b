package scoring

import (
	"testing"
	"time"
)

// TestNewScoring verifies a fresh tracker starts at zero with no history.
func TestNewScoring(t *testing.T) {
	s := NewScoring()

	if s.CurrentScore != 0 {
		t.Errorf("expected initial score 0, got %d", s.CurrentScore)
	}
	if s.GetAttempts() != 0 {
		t.Errorf("expected 0 attempts, got %d", s.GetAttempts())
	}
	if s.GetHighScore() != nil {
		t.Errorf("expected nil high score, got %v", s.GetHighScore())
	}
	if s.GotHighScore() {
		t.Error("expected no high score before any run")
	}
}

// TestScoreEvent checks that each consumption adds exactly one point.
func TestScoreEvent(t *testing.T) {
	s := NewScoring()

	for i := 1; i <= 3; i++ {
		s.ScoreEvent(TargetConsumed)
		if s.CurrentScore != i {
			t.Errorf("after %d consumptions: expected score %d, got %d", i, i, s.CurrentScore)
		}
	}

	s.ScoreEvent("unknown")
	if s.CurrentScore != 3 {
		t.Errorf("unknown event changed score to %d", s.CurrentScore)
	}
}

// TestReset verifies the score resets while history is kept.
func TestReset(t *testing.T) {
	s := NewScoring()
	s.ScoreEvent(TargetConsumed)
	s.Finish(2, time.Second, "hit wall")
	s.Reset()

	if s.CurrentScore != 0 {
		t.Errorf("expected score 0 after reset, got %d", s.CurrentScore)
	}
	if s.GetAttempts() != 1 {
		t.Errorf("expected history to survive reset, got %d attempts", s.GetAttempts())
	}
}

// TestFinish records the run with the current score.
func TestFinish(t *testing.T) {
	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewScoring()
	s.now = func() time.Time { return stamp }
	s.ScoreEvent(TargetConsumed)
	s.ScoreEvent(TargetConsumed)

	entry := s.Finish(3, 7*time.Second, "hit self")

	want := RunEntry{Score: 2, Length: 3, Elapsed: 7 * time.Second, Reason: "hit self", EndedAt: stamp}
	if entry != want {
		t.Errorf("expected entry %+v, got %+v", want, entry)
	}
	if hs := s.GetHighScore(); hs == nil || hs.Score != 2 {
		t.Errorf("expected high score 2, got %v", hs)
	}
}

// TestGetNScoreEntries verifies entries come back sorted and truncated.
func TestGetNScoreEntries(t *testing.T) {
	s := NewScoring()
	for _, score := range []int{1, 5, 3} {
		s.CurrentScore = score
		s.Finish(score+1, time.Second, "hit wall")
	}

	entries := s.GetNScoreEntries(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Score != 5 || entries[1].Score != 3 {
		t.Errorf("expected scores [5 3], got [%d %d]", entries[0].Score, entries[1].Score)
	}

	all := s.GetNScoreEntries(10)
	if len(all) != 3 {
		t.Errorf("expected all 3 entries, got %d", len(all))
	}
}

// TestGotHighScore compares the latest run against earlier ones.
func TestGotHighScore(t *testing.T) {
	s := NewScoring()

	s.CurrentScore = 4
	s.Finish(5, time.Second, "hit wall")
	if !s.GotHighScore() {
		t.Error("first run should be a high score")
	}

	s.CurrentScore = 2
	s.Finish(3, time.Second, "hit wall")
	if s.GotHighScore() {
		t.Error("lower run should not be a high score")
	}

	s.CurrentScore = 4
	s.Finish(5, time.Second, "hit wall")
	if !s.GotHighScore() {
		t.Error("tying the best should count as a high score")
	}
}
