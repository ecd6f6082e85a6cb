/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: history.go
Description: Fixed-size circular performance history for the Vedic Dispatcher.
Holds the most recent dispatch outcomes for the adaptive tuner; older entries
are overwritten in place once the window is full.
*/

package dispatch

import (
	"sync"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
)

// DefaultHistorySize is the capacity of the performance window
const DefaultHistorySize = 100

// PerformanceHistory is a bounded ring of recent dispatch outcomes
type PerformanceHistory struct {
	mu      sync.RWMutex
	samples []interfaces.PerformanceSample
	next    int
	filled  bool
}

// NewPerformanceHistory creates a history window with the given capacity.
// Non-positive capacities fall back to the default size.
func NewPerformanceHistory(capacity int) *PerformanceHistory {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &PerformanceHistory{
		samples: make([]interfaces.PerformanceSample, capacity),
	}
}

// Add records one sample, overwriting the oldest entry when full
func (h *PerformanceHistory) Add(sample interfaces.PerformanceSample) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.samples[h.next] = sample
	h.next++
	if h.next == len(h.samples) {
		h.next = 0
		h.filled = true
	}
}

// Len returns the number of valid samples in the window
func (h *PerformanceHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.filled {
		return len(h.samples)
	}
	return h.next
}

// Samples returns a copy of the valid window contents
func (h *PerformanceHistory) Samples() []interfaces.PerformanceSample {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := h.next
	if h.filled {
		count = len(h.samples)
	}
	out := make([]interfaces.PerformanceSample, count)
	copy(out, h.samples[:count])
	return out
}
