/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Dispatch engine for the Vedic Dispatcher. Owns all shared state
explicitly — configuration, cached resource snapshot, validation recorder,
performance history, and tuner — and runs the synchronous pipeline per call:
analyze, modulate, select, execute, record. Safe for concurrent use; every
shared structure is guarded.
*/

package dispatch

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/sutras"
	"github.com/sirupsen/logrus"
)

// DispatcherStats tracks engine counters.
// Uses atomic operations for thread-safe updates.
type DispatcherStats struct {
	Dispatches   int64     `json:"dispatches"`    // Total dispatched operations
	SutraHits    int64     `json:"sutra_hits"`    // Dispatches that selected a non-standard sutra
	Mismatches   int64     `json:"mismatches"`    // Sutra/baseline disagreements
	Overrides    int64     `json:"overrides"`     // Division results substituted by baseline
	TuningPasses int64     `json:"tuning_passes"` // Adaptive tuning passes applied
	StartTime    time.Time `json:"start_time"`    // When the engine was created
}

// IncrementDispatches atomically increments the dispatch counter
func (s *DispatcherStats) IncrementDispatches() {
	atomic.AddInt64(&s.Dispatches, 1)
}

// IncrementMismatches atomically increments the mismatch counter
func (s *DispatcherStats) IncrementMismatches() {
	atomic.AddInt64(&s.Mismatches, 1)
}

// DispatchOutcome is the full result of one dispatched operation
type DispatchOutcome struct {
	Result   int64                       `json:"result"`   // Validated arithmetic result
	Analysis interfaces.PatternAnalysis  `json:"analysis"` // Post-modulation winning analysis
	Record   interfaces.ValidationRecord `json:"record"`   // Persisted validation record
	Mode     interfaces.DispatchMode     `json:"mode"`     // History classification
}

// Dispatcher is the adaptive dispatch engine. One instance owns its own
// configuration and dataset; multiple independent instances may coexist.
type Dispatcher struct {
	mu sync.Mutex

	config   interfaces.DispatcherConfig
	registry *sutras.Registry

	analyzer  *PatternAnalyzer
	modulator *ResourceModulator
	selector  *Selector
	executor  *Executor

	monitor  interfaces.ResourceMonitor
	recorder interfaces.Recorder
	history  *PerformanceHistory
	tuner    *AdaptiveTuner

	logger    *logrus.Logger
	sessionID string
	stats     DispatcherStats

	// Snapshot cache with staleness policy
	lastSnapshot *interfaces.ResourceSnapshot
	lastSampled  time.Time

	dispatchCount  int64
	tuningInterval int64
}

// NewDispatcher creates a dispatch engine with the default configuration
func NewDispatcher(monitor interfaces.ResourceMonitor, recorder interfaces.Recorder, logger *logrus.Logger) *Dispatcher {
	registry := sutras.NewRegistry()
	history := NewPerformanceHistory(DefaultHistorySize)

	return &Dispatcher{
		config:         interfaces.DefaultConfig(),
		registry:       registry,
		analyzer:       NewPatternAnalyzer(registry),
		modulator:      NewResourceModulator(registry),
		selector:       NewSelector(),
		executor:       NewExecutor(registry),
		monitor:        monitor,
		recorder:       recorder,
		history:        history,
		tuner:          NewAdaptiveTuner(history, logger),
		logger:         logger,
		sessionID:      uuid.New().String(),
		stats:          DispatcherStats{StartTime: time.Now()},
		tuningInterval: DefaultTuningInterval,
	}
}

// SessionID returns the engine's session identifier
func (d *Dispatcher) SessionID() string {
	return d.sessionID
}

// Registry returns the engine's sutra registry
func (d *Dispatcher) Registry() *sutras.Registry {
	return d.registry
}

// Config returns a copy of the current configuration
func (d *Dispatcher) Config() interfaces.DispatcherConfig {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.config
}

// SetConfig replaces the configuration wholesale after validating it.
// Invalid configurations are rejected here, not discovered mid-dispatch.
func (d *Dispatcher) SetConfig(config interfaces.DispatcherConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid dispatcher config: %w", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config = config
	return nil
}

// ResetConfig restores the default configuration
func (d *Dispatcher) ResetConfig() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config = interfaces.DefaultConfig()
}

// GetStats returns a copy of the current engine counters
func (d *Dispatcher) GetStats() DispatcherStats {
	return DispatcherStats{
		Dispatches:   atomic.LoadInt64(&d.stats.Dispatches),
		SutraHits:    atomic.LoadInt64(&d.stats.SutraHits),
		Mismatches:   atomic.LoadInt64(&d.stats.Mismatches),
		Overrides:    atomic.LoadInt64(&d.stats.Overrides),
		TuningPasses: atomic.LoadInt64(&d.stats.TuningPasses),
		StartTime:    d.stats.StartTime,
	}
}

// Dispatch runs the full pipeline for a multiplication
func (d *Dispatcher) Dispatch(a, b int64) (*DispatchOutcome, error) {
	return d.dispatch(interfaces.OperandPair{A: a, B: b}, interfaces.OpMultiply)
}

// DispatchDivide runs the full pipeline for a division. A zero divisor
// is rejected before any pattern analysis, timing, or recording happens
// and yields the zero sentinel with ErrDivideByZero.
func (d *Dispatcher) DispatchDivide(a, b int64) (*DispatchOutcome, error) {
	if b == 0 {
		return &DispatchOutcome{Result: 0}, ErrDivideByZero
	}
	return d.dispatch(interfaces.OperandPair{A: a, B: b}, interfaces.OpDivide)
}

// Classify runs analysis, modulation, and selection without executing.
// Useful for inspecting the engine's decision deterministically.
func (d *Dispatcher) Classify(a, b int64) interfaces.PatternAnalysis {
	pair := interfaces.OperandPair{A: a, B: b}
	snapshot := d.currentSnapshot()
	config := d.Config()
	return d.classify(pair, snapshot, config, interfaces.OpMultiply)
}

// dispatch is the synchronous per-call pipeline
func (d *Dispatcher) dispatch(pair interfaces.OperandPair, op interfaces.Operation) (*DispatchOutcome, error) {
	snapshot := d.currentSnapshot()
	config := d.Config()

	selected := d.classify(pair, snapshot, config, op)

	execution, err := d.executor.Execute(pair, selected, op)
	if err != nil {
		return &DispatchOutcome{Result: execution.Result, Analysis: selected}, err
	}

	d.stats.IncrementDispatches()
	if selected.Sutra != interfaces.SutraStandard {
		atomic.AddInt64(&d.stats.SutraHits, 1)
	}
	if !execution.CorrectnessVerified {
		d.stats.IncrementMismatches()
		if execution.Overridden {
			atomic.AddInt64(&d.stats.Overrides, 1)
		}
		if d.logger != nil {
			d.logger.WithFields(logrus.Fields{
				"operand_a":  pair.A,
				"operand_b":  pair.B,
				"sutra":      selected.Sutra,
				"sutra_val":  execution.SutraResult,
				"baseline":   execution.BaselineResult,
				"overridden": execution.Overridden,
			}).Warn("Sutra result mismatch")
		}
	}

	mode := classifyMode(selected)
	record := d.buildRecord(pair, selected, execution, snapshot)

	if err := d.recorder.Record(record); err != nil {
		// Growth failure must surface, never silently drop the record
		return &DispatchOutcome{Result: execution.Result, Analysis: selected, Record: record, Mode: mode},
			fmt.Errorf("failed to record validation entry: %w", err)
	}

	d.history.Add(interfaces.PerformanceSample{
		Mode:     mode,
		Duration: execution.SutraTime,
		Success:  execution.CorrectnessVerified,
		Snapshot: snapshotOrZero(snapshot),
	})

	d.maybeTune(config)

	return &DispatchOutcome{
		Result:   execution.Result,
		Analysis: selected,
		Record:   record,
		Mode:     mode,
	}, nil
}

// classify runs analysis, modulation, and selection for one pair
func (d *Dispatcher) classify(pair interfaces.OperandPair, snapshot *interfaces.ResourceSnapshot, config interfaces.DispatcherConfig, op interfaces.Operation) interfaces.PatternAnalysis {
	candidates := d.analyzer.Analyze(pair)

	modulated := make([]interfaces.PatternAnalysis, 0, len(candidates))
	for _, candidate := range candidates {
		modulated = append(modulated, d.modulator.Modulate(candidate, snapshot, config))
	}

	selected := d.selector.Select(modulated)

	// Division reuses the multiply classification to decide whether the
	// operands warrant a sutra path at all; the executor binds the
	// division algorithm for non-standard selections.
	if op == interfaces.OpDivide && selected.Sutra != interfaces.SutraStandard {
		profile, _ := d.registry.Lookup(interfaces.SutraParavartya)
		selected.Sutra = interfaces.SutraParavartya
		selected.MemoryRequired = profile.MemoryOverhead
		selected.MathematicalBasis = "Transpose and apply long division"
	}

	return selected
}

// currentSnapshot returns the cached snapshot, resampling only when it is
// older than the monitoring interval. Sampling failures degrade to the
// last known snapshot rather than failing the dispatch.
func (d *Dispatcher) currentSnapshot() *interfaces.ResourceSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.monitor == nil {
		return d.lastSnapshot
	}
	if d.lastSnapshot != nil && time.Since(d.lastSampled) < d.config.MonitoringInterval {
		return d.lastSnapshot
	}

	snapshot, err := d.monitor.Sample()
	if err != nil {
		if d.logger != nil {
			d.logger.WithField("error", err.Error()).Warn("Resource sampling failed, reusing last snapshot")
		}
		return d.lastSnapshot
	}

	d.lastSnapshot = snapshot
	d.lastSampled = time.Now()
	return d.lastSnapshot
}

// buildRecord assembles the validation record for one dispatch
func (d *Dispatcher) buildRecord(pair interfaces.OperandPair, analysis interfaces.PatternAnalysis, execution *ExecutionOutcome, snapshot *interfaces.ResourceSnapshot) interfaces.ValidationRecord {
	return interfaces.ValidationRecord{
		ID:                   uuid.New().String(),
		Timestamp:            time.Now(),
		OperandA:             pair.A,
		OperandB:             pair.B,
		Result:               execution.Result,
		Sutra:                analysis.Sutra,
		Confidence:           analysis.Confidence,
		Reasoning:            analysis.Reasoning,
		SutraTime:            execution.SutraTime,
		StandardTime:         execution.BaselineTime,
		ActualSpeedup:        execution.ActualSpeedup,
		PredictedSpeedup:     analysis.Prediction,
		PerformanceValidated: execution.ActualSpeedup >= 1.0,
		Snapshot:             snapshotOrZero(snapshot),
		CorrectnessVerified:  execution.CorrectnessVerified,
		PrecisionError:       execution.PrecisionError,
	}
}

// maybeTune runs a tuning pass every tuningInterval dispatches
func (d *Dispatcher) maybeTune(config interfaces.DispatcherConfig) {
	if !config.AdaptiveTuning {
		return
	}
	count := atomic.AddInt64(&d.dispatchCount, 1)
	if count%d.tuningInterval != 0 {
		return
	}

	tuned, result := d.tuner.Tune(config)
	if !result.Applied {
		return
	}

	d.mu.Lock()
	d.config = tuned
	d.mu.Unlock()
	atomic.AddInt64(&d.stats.TuningPasses, 1)
}

// classifyMode maps a winning analysis onto a history mode
func classifyMode(analysis interfaces.PatternAnalysis) interfaces.DispatchMode {
	switch {
	case analysis.Sutra == interfaces.SutraStandard:
		return interfaces.ModeStandard
	case analysis.Prediction > fastSpeedupBound:
		return interfaces.ModeOptimized
	default:
		return interfaces.ModeAdaptive
	}
}

// snapshotOrZero dereferences a snapshot, substituting the zero value
// when no sample has ever succeeded
func snapshotOrZero(snapshot *interfaces.ResourceSnapshot) interfaces.ResourceSnapshot {
	if snapshot == nil {
		return interfaces.ResourceSnapshot{Platform: interfaces.PlatformUnknown}
	}
	return *snapshot
}
