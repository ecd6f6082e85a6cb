/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: recorder_test.go
Description: Tests for the validation recorder. Verifies capacity-doubling growth,
append ordering, the hard record ceiling, reset semantics, and concurrent appends.
*/

package validation

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(i int) interfaces.ValidationRecord {
	return interfaces.ValidationRecord{
		ID:        fmt.Sprintf("record-%d", i),
		Timestamp: time.Now(),
		OperandA:  int64(i),
		OperandB:  int64(i + 1),
		Result:    int64(i * (i + 1)),
		Sutra:     interfaces.SutraNikhilam,
	}
}

// TestRecorderGrowth tests capacity doubling without data loss
func TestRecorderGrowth(t *testing.T) {
	r := NewRecorder(4)
	assert.Equal(t, 4, r.Capacity())

	for i := 0; i < 10; i++ {
		require.NoError(t, r.Record(sampleRecord(i)))
	}

	assert.Equal(t, 10, r.Count())
	assert.Equal(t, 16, r.Capacity()) // 4 -> 8 -> 16

	// Append order preserved across growth
	records := r.Records()
	for i, record := range records {
		assert.Equal(t, fmt.Sprintf("record-%d", i), record.ID)
	}
}

// TestRecorderDefaultCapacity tests the fallback for non-positive capacities
func TestRecorderDefaultCapacity(t *testing.T) {
	r := NewRecorder(0)
	assert.Equal(t, DefaultInitialCapacity, r.Capacity())

	r = NewRecorder(-5)
	assert.Equal(t, DefaultInitialCapacity, r.Capacity())
}

// TestRecorderReset tests that reset empties the log and restores capacity
func TestRecorderReset(t *testing.T) {
	r := NewRecorder(4)
	for i := 0; i < 10; i++ {
		require.NoError(t, r.Record(sampleRecord(i)))
	}
	require.Equal(t, 10, r.Count())

	r.Reset()
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, 4, r.Capacity())

	// Recording works again after reset
	require.NoError(t, r.Record(sampleRecord(0)))
	assert.Equal(t, 1, r.Count())
}

// TestRecorderRecordsIsCopy tests that the snapshot does not alias storage
func TestRecorderRecordsIsCopy(t *testing.T) {
	r := NewRecorder(4)
	require.NoError(t, r.Record(sampleRecord(0)))

	records := r.Records()
	records[0].ID = "mutated"

	assert.Equal(t, "record-0", r.Records()[0].ID)
}

// TestRecorderConcurrentAppends tests thread safety of the log
func TestRecorderConcurrentAppends(t *testing.T) {
	r := NewRecorder(8)

	var wg sync.WaitGroup
	const workers = 8
	const perWorker = 100

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				assert.NoError(t, r.Record(sampleRecord(base+i)))
			}
		}(w * perWorker)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, r.Count())
}
