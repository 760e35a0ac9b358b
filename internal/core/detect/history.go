package detect

import (
	"sync"
	"time"
)

// DefaultHistoryCap bounds the rolling detection history
const DefaultHistoryCap = 1000

// histEntry is the slim per-detection record kept for statistics
type histEntry struct {
	detected   string
	confidence float64
	at         time.Time
}

// History is a bounded rolling record of detection results, used only
// for aggregate statistics, never for correctness. When the cap is
// exceeded the buffer is trimmed to the newest half
type History struct {
	mu      sync.Mutex
	cap     int
	entries []histEntry
}

// NewHistory creates a History with the given capacity (0 means the
// default cap)
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCap
	}
	return &History{cap: capacity}
}

// Record appends a result, trimming to the newest cap/2 on overflow
func (h *History) Record(r Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, histEntry{
		detected:   r.Detected,
		confidence: r.Confidence,
		at:         time.Now(),
	})
	if len(h.entries) > h.cap {
		keep := h.cap / 2
		trimmed := make([]histEntry, keep)
		copy(trimmed, h.entries[len(h.entries)-keep:])
		h.entries = trimmed
	}
}

// Len returns the number of retained entries
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Stats summarizes the retained history
type Stats struct {
	Total         int
	Unknown       int
	AvgConfidence float64
	ByFormat      map[string]int
}

// Stats aggregates over the retained entries
func (h *History) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := Stats{ByFormat: map[string]int{}}
	if len(h.entries) == 0 {
		return s
	}
	var sum float64
	for _, e := range h.entries {
		s.Total++
		if e.detected == UnknownFormat {
			s.Unknown++
		}
		s.ByFormat[e.detected]++
		sum += e.confidence
	}
	s.AvgConfidence = sum / float64(s.Total)
	return s
}
