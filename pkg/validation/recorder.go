/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: recorder.go
Description: Validation recorder for the Vedic Dispatcher. Maintains the append-only
in-memory research dataset with explicit capacity-doubling growth, a hard record
ceiling, and loud failure when growth is impossible. Safe for concurrent use.
*/

package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
)

// Capacity policy for the validation log
const (
	DefaultInitialCapacity = 256
	MaxRecords             = 1_000_000 // Hard ceiling; exceeding it is an error, never silent truncation
)

// ErrLogFull is returned when the record ceiling is reached.
// The failed record is never silently dropped; callers see this error.
var ErrLogFull = errors.New("validation log full")

// Recorder is the growable append-only validation log
type Recorder struct {
	mu              sync.RWMutex
	records         []interfaces.ValidationRecord
	initialCapacity int
}

// NewRecorder creates a recorder with the given initial capacity.
// Non-positive capacities fall back to the default.
func NewRecorder(initialCapacity int) *Recorder {
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}
	if initialCapacity > MaxRecords {
		initialCapacity = MaxRecords
	}
	return &Recorder{
		records:         make([]interfaces.ValidationRecord, 0, initialCapacity),
		initialCapacity: initialCapacity,
	}
}

// Record appends one validation record, growing storage by capacity
// doubling when full. Growth past the record ceiling fails with
// ErrLogFull; existing entries are never corrupted.
func (r *Recorder) Record(record interfaces.ValidationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.records) >= MaxRecords {
		return fmt.Errorf("%w: %d records", ErrLogFull, len(r.records))
	}

	if len(r.records) == cap(r.records) {
		newCapacity := cap(r.records) * 2
		if newCapacity > MaxRecords {
			newCapacity = MaxRecords
		}
		grown := make([]interfaces.ValidationRecord, len(r.records), newCapacity)
		copy(grown, r.records)
		r.records = grown
	}

	r.records = append(r.records, record)
	return nil
}

// Count returns the number of stored records.
// Non-decreasing within a session; only Reset brings it back to zero.
func (r *Recorder) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Capacity returns the current storage capacity
func (r *Recorder) Capacity() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cap(r.records)
}

// Records returns a copy of all stored records in append order
func (r *Recorder) Records() []interfaces.ValidationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]interfaces.ValidationRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Reset discards all records and reinitializes at the initial capacity
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make([]interfaces.ValidationRecord, 0, r.initialCapacity)
}
