package reach

import (
	"sync"

	"gomultitool/internal/models"
)

const defaultHistorySize = 20

// History is a bounded log of completed checks, newest last. Checks finish
// off the UI goroutine, so access is locked.
type History struct {
	mu      sync.Mutex
	results []models.ProbeResult
	max     int
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}

	return &History{
		results: make([]models.ProbeResult, 0, size),
		max:     size,
	}
}

// Add appends a result, dropping the oldest once full.
func (h *History) Add(r models.ProbeResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.results = append(h.results, r)

	if len(h.results) > h.max {
		h.results = h.results[len(h.results)-h.max:]
	}
}

// Recent returns up to limit results, newest last.
func (h *History) Recent(limit int) []models.ProbeResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	start := 0
	if limit >= 0 && len(h.results) > limit {
		start = len(h.results) - limit
	}

	out := make([]models.ProbeResult, len(h.results)-start)
	copy(out, h.results[start:])

	return out
}

// Counts returns how many checks were recorded and how many were reachable.
func (h *History) Counts() (total, reachable int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, r := range h.results {
		if r.Reachable {
			reachable++
		}
	}

	return len(h.results), reachable
}
