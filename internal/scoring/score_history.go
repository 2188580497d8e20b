package scoring

import (
	"sort"
	"time"
)

// History holds the runs finished since the process started.
type History struct {
	Entries []RunEntry
}

// RunEntry is a single finished run.
type RunEntry struct {
	Score   int
	Length  int
	Elapsed time.Duration
	Reason  string
	EndedAt time.Time
}

func (h *History) add(e RunEntry) {
	h.Entries = append(h.Entries, e)
}

func (h History) Attempts() int {
	return len(h.Entries)
}

// GetHighScoreEntry returns the best run, or nil before any run finished.
// Ties go to the earlier run.
func (h History) GetHighScoreEntry() *RunEntry {
	if len(h.Entries) == 0 {
		return nil
	}
	best := h.Entries[0]
	for _, e := range h.Entries[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return &best
}

// GetNScoreEntries returns the top N entries, sorted by score.
func (h History) GetNScoreEntries(n int) []RunEntry {
	// Sort a copy so history order is preserved.
	entriesCopy := make([]RunEntry, len(h.Entries))
	copy(entriesCopy, h.Entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotHighScore checks if the latest run matched or beat every earlier run.
func (h History) GotHighScore() bool {
	if len(h.Entries) == 0 {
		return false
	}
	last := h.Entries[len(h.Entries)-1]
	for _, e := range h.Entries[:len(h.Entries)-1] {
		if e.Score > last.Score {
			return false
		}
	}
	return true
}
