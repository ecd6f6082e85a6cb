/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: store.go
Description: SQLite persistence for validation records. Gives the research dataset
a durable home beyond the in-memory log so sessions can be aggregated and exported
later. Schema mirrors the CSV export columns.
*/

package validation

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"

	_ "modernc.org/sqlite"
)

// Store persists validation records in SQLite
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the validation store at the given path
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open validation store: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS validation_records (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		operand_a INTEGER NOT NULL,
		operand_b INTEGER NOT NULL,
		result INTEGER NOT NULL,
		selected_sutra TEXT NOT NULL,
		confidence_score REAL NOT NULL,
		selection_reasoning TEXT NOT NULL,
		vedic_time_ns INTEGER NOT NULL,
		standard_time_ns INTEGER NOT NULL,
		actual_speedup REAL NOT NULL,
		predicted_speedup REAL NOT NULL,
		performance_validated INTEGER NOT NULL,
		cpu_usage_percent REAL NOT NULL,
		memory_usage_percent REAL NOT NULL,
		platform TEXT NOT NULL,
		correctness_verified INTEGER NOT NULL,
		precision_error REAL NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create validation_records table: %w", err)
	}
	return nil
}

// Save stores one validation record under a session id
func (s *Store) Save(sessionID string, record interfaces.ValidationRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO validation_records (
			id, session_id, timestamp, operand_a, operand_b, result,
			selected_sutra, confidence_score, selection_reasoning,
			vedic_time_ns, standard_time_ns, actual_speedup, predicted_speedup,
			performance_validated, cpu_usage_percent, memory_usage_percent,
			platform, correctness_verified, precision_error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		sessionID,
		record.Timestamp.UTC().Format(time.RFC3339Nano),
		record.OperandA,
		record.OperandB,
		record.Result,
		string(record.Sutra),
		record.Confidence,
		record.Reasoning,
		record.SutraTime.Nanoseconds(),
		record.StandardTime.Nanoseconds(),
		record.ActualSpeedup,
		record.PredictedSpeedup,
		boolToInt(record.PerformanceValidated),
		record.Snapshot.CPUUsage,
		record.Snapshot.MemoryUsage,
		string(record.Snapshot.Platform),
		boolToInt(record.CorrectnessVerified),
		record.PrecisionError,
	)
	if err != nil {
		return fmt.Errorf("failed to save validation record: %w", err)
	}
	return nil
}

// SaveAll stores a batch of records in one transaction
func (s *Store) SaveAll(sessionID string, records []interfaces.ValidationRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for i := range records {
		if err := s.saveTx(tx, sessionID, &records[i]); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

func (s *Store) saveTx(tx *sql.Tx, sessionID string, record *interfaces.ValidationRecord) error {
	_, err := tx.Exec(
		`INSERT INTO validation_records (
			id, session_id, timestamp, operand_a, operand_b, result,
			selected_sutra, confidence_score, selection_reasoning,
			vedic_time_ns, standard_time_ns, actual_speedup, predicted_speedup,
			performance_validated, cpu_usage_percent, memory_usage_percent,
			platform, correctness_verified, precision_error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, sessionID, record.Timestamp.UTC().Format(time.RFC3339Nano),
		record.OperandA, record.OperandB, record.Result,
		string(record.Sutra), record.Confidence, record.Reasoning,
		record.SutraTime.Nanoseconds(), record.StandardTime.Nanoseconds(),
		record.ActualSpeedup, record.PredictedSpeedup,
		boolToInt(record.PerformanceValidated),
		record.Snapshot.CPUUsage, record.Snapshot.MemoryUsage,
		string(record.Snapshot.Platform),
		boolToInt(record.CorrectnessVerified), record.PrecisionError,
	)
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.ID, err)
	}
	return nil
}

// LoadAll returns every stored record in insertion order
func (s *Store) LoadAll() ([]interfaces.ValidationRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, operand_a, operand_b, result,
			selected_sutra, confidence_score, selection_reasoning,
			vedic_time_ns, standard_time_ns, actual_speedup, predicted_speedup,
			performance_validated, cpu_usage_percent, memory_usage_percent,
			platform, correctness_verified, precision_error
		FROM validation_records ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query validation records: %w", err)
	}
	defer rows.Close()

	var records []interfaces.ValidationRecord
	for rows.Next() {
		var r interfaces.ValidationRecord
		var timestamp, sutra, platform string
		var sutraNs, standardNs int64
		var validated, verified int
		if err := rows.Scan(
			&r.ID, &timestamp, &r.OperandA, &r.OperandB, &r.Result,
			&sutra, &r.Confidence, &r.Reasoning,
			&sutraNs, &standardNs, &r.ActualSpeedup, &r.PredictedSpeedup,
			&validated, &r.Snapshot.CPUUsage, &r.Snapshot.MemoryUsage,
			&platform, &verified, &r.PrecisionError,
		); err != nil {
			return nil, fmt.Errorf("failed to scan validation record: %w", err)
		}
		r.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		r.Sutra = interfaces.SutraID(sutra)
		r.SutraTime = time.Duration(sutraNs)
		r.StandardTime = time.Duration(standardNs)
		r.PerformanceValidated = validated != 0
		r.Snapshot.Platform = interfaces.Platform(platform)
		r.CorrectnessVerified = verified != 0
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate validation records: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM validation_records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count validation records: %w", err)
	}
	return count, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
