/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: export.go
Description: CSV export for the validation dataset. Serializes every record as one
row behind a fixed header; the column order is part of the research data contract
and must never change. Export never mutates recorder state.
*/

package validation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
)

// CSVHeader is the fixed export schema, in this exact column order
var CSVHeader = []string{
	"timestamp",
	"operand_a",
	"operand_b",
	"result",
	"selected_sutra",
	"confidence_score",
	"selection_reasoning",
	"vedic_time_ms",
	"standard_time_ms",
	"actual_speedup",
	"predicted_speedup",
	"performance_validated",
	"cpu_usage_percent",
	"memory_usage_percent",
	"memory_used_bytes",
	"platform",
	"correctness_verified",
	"precision_error",
}

// Export writes the full dataset as CSV: one header row followed by one
// row per record. An empty log produces the header only and reports
// zero records; it is not an error. Returns the number of data rows.
func (r *Recorder) Export(w io.Writer) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return 0, fmt.Errorf("failed to write export header: %w", err)
	}

	for i := range r.records {
		if err := writer.Write(recordRow(&r.records[i])); err != nil {
			return i, fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return len(r.records), fmt.Errorf("failed to flush export: %w", err)
	}
	return len(r.records), nil
}

// recordRow serializes one record in CSVHeader order
func recordRow(record *interfaces.ValidationRecord) []string {
	return []string{
		record.Timestamp.Format(time.RFC3339Nano),
		strconv.FormatInt(record.OperandA, 10),
		strconv.FormatInt(record.OperandB, 10),
		strconv.FormatInt(record.Result, 10),
		string(record.Sutra),
		strconv.FormatFloat(record.Confidence, 'f', 6, 64),
		record.Reasoning,
		formatMillis(record.SutraTime),
		formatMillis(record.StandardTime),
		strconv.FormatFloat(record.ActualSpeedup, 'f', 6, 64),
		strconv.FormatFloat(record.PredictedSpeedup, 'f', 6, 64),
		strconv.FormatBool(record.PerformanceValidated),
		strconv.FormatFloat(record.Snapshot.CPUUsage, 'f', 2, 64),
		strconv.FormatFloat(record.Snapshot.MemoryUsage, 'f', 2, 64),
		strconv.FormatUint(memoryUsedBytes(&record.Snapshot), 10),
		string(record.Snapshot.Platform),
		strconv.FormatBool(record.CorrectnessVerified),
		strconv.FormatFloat(record.PrecisionError, 'f', 9, 64),
	}
}

// formatMillis renders a duration as fractional milliseconds
func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 6, 64)
}

// memoryUsedBytes derives used memory from the snapshot totals.
// A monitor reporting more available than total memory clamps to zero
// instead of wrapping the unsigned subtraction.
func memoryUsedBytes(snapshot *interfaces.ResourceSnapshot) uint64 {
	if snapshot.MemoryAvailableMB >= snapshot.MemoryTotalMB {
		return 0
	}
	return (snapshot.MemoryTotalMB - snapshot.MemoryAvailableMB) * 1024 * 1024
}
