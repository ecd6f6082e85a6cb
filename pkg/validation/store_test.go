/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: store_test.go
Description: Tests for the SQLite validation store. Verifies schema creation,
single and batched saves, round-trip fidelity, and counting.
*/

package validation

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "validation.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestStoreSaveAndLoad tests a single record round trip
func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	record := interfaces.ValidationRecord{
		ID:                   "r1",
		Timestamp:            time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		OperandA:             98,
		OperandB:             97,
		Result:               9506,
		Sutra:                interfaces.SutraNikhilam,
		Confidence:           0.9167,
		Reasoning:            "Both operands near base 100",
		SutraTime:            1500 * time.Nanosecond,
		StandardTime:         3000 * time.Nanosecond,
		ActualSpeedup:        2.0,
		PredictedSpeedup:     3.0,
		PerformanceValidated: true,
		Snapshot: interfaces.ResourceSnapshot{
			CPUUsage:    42.5,
			MemoryUsage: 61.2,
			Platform:    interfaces.PlatformDesktop,
		},
		CorrectnessVerified: true,
	}
	require.NoError(t, store.Save("session-1", record))

	records, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, record.ID, got.ID)
	assert.True(t, record.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, record.OperandA, got.OperandA)
	assert.Equal(t, record.OperandB, got.OperandB)
	assert.Equal(t, record.Result, got.Result)
	assert.Equal(t, record.Sutra, got.Sutra)
	assert.Equal(t, record.Confidence, got.Confidence)
	assert.Equal(t, record.SutraTime, got.SutraTime)
	assert.Equal(t, record.StandardTime, got.StandardTime)
	assert.True(t, got.PerformanceValidated)
	assert.True(t, got.CorrectnessVerified)
	assert.Equal(t, interfaces.PlatformDesktop, got.Snapshot.Platform)
}

// TestStoreSaveAll tests batched inserts in one transaction
func TestStoreSaveAll(t *testing.T) {
	store := openTestStore(t)

	records := make([]interfaces.ValidationRecord, 25)
	for i := range records {
		records[i] = sampleRecord(i)
	}
	require.NoError(t, store.SaveAll("session-1", records))

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 25, count)

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 25)
	// Insertion order preserved
	assert.Equal(t, "record-0", loaded[0].ID)
	assert.Equal(t, "record-24", loaded[24].ID)
}

// TestStoreEmpty tests counting and loading an empty store
func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	records, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestStoreDuplicateIDRejected tests the primary key constraint
func TestStoreDuplicateIDRejected(t *testing.T) {
	store := openTestStore(t)

	record := sampleRecord(1)
	require.NoError(t, store.Save("session-1", record))
	assert.Error(t, store.Save("session-1", record))
}
