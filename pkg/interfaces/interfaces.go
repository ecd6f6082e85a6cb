/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared types and interfaces for the Vedic Dispatcher. Defines the core
data structures used across all packages including operand pairs, pattern analyses,
resource snapshots, validation records, and the contracts for resource monitors
and sutra algorithms.
*/

package interfaces

import (
	"time"
)

// SutraID identifies a sutra algorithm in the registry
type SutraID string

const (
	SutraEkadhikena SutraID = "ekadhikena_purvena"
	SutraNikhilam   SutraID = "nikhilam"
	SutraAntyayor   SutraID = "antyayordasake"
	SutraUrdhva     SutraID = "urdhva_tiryagbhyam"
	SutraParavartya SutraID = "paravartya_yojayet"
	SutraStandard   SutraID = "standard"
)

// Operation is the arithmetic operation kind being dispatched
type Operation int

const (
	OpMultiply Operation = iota
	OpDivide
)

// String returns a human-readable name for the operation
func (o Operation) String() string {
	switch o {
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// MismatchPolicy controls what the executor does when a sutra result
// disagrees with the standard baseline. Multiplication trusts the sutra
// and records the mismatch; division substitutes the baseline value.
type MismatchPolicy int

const (
	PolicyTrustAndRecord MismatchPolicy = iota
	PolicyValidateAndOverride
)

// PolicyFor returns the mismatch policy for an operation kind.
// The multiply/divide asymmetry is deliberate and must be preserved.
func PolicyFor(op Operation) MismatchPolicy {
	if op == OpDivide {
		return PolicyValidateAndOverride
	}
	return PolicyTrustAndRecord
}

// OperandPair is a single pair of operands entering the dispatch pipeline.
// Derived attributes (digit count, last digit, nearest base) are computed
// on demand and never persisted.
type OperandPair struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

// SutraProfile is an immutable registry entry describing one sutra.
// Created once at startup and never mutated afterwards.
type SutraProfile struct {
	ID               SutraID `json:"id"`                // Registry identifier
	Name             string  `json:"name"`              // Display name
	ComplexityFactor float64 `json:"complexity_factor"` // Relative complexity (0.1-2.0)
	ExpectedSpeedup  float64 `json:"expected_speedup"`  // Speedup over standard (>=1.0)
	MemoryOverhead   uint64  `json:"memory_overhead"`   // Working memory in bytes
	PrecisionFactor  float64 `json:"precision_factor"`  // Result precision (0.0-1.0]
	Applicability    string  `json:"applicability"`     // When this sutra applies
}

// PatternAnalysis is the transient result of classifying an operand pair
// against one sutra's structural preconditions
type PatternAnalysis struct {
	Sutra             SutraID `json:"sutra"`              // Recommended sutra
	Confidence        float64 `json:"confidence"`         // Match confidence [0,1]
	Prediction        float64 `json:"prediction"`         // Predicted speedup ratio
	PrecisionEstimate float64 `json:"precision_estimate"` // Expected precision (0,1]
	MemoryRequired    uint64  `json:"memory_required"`    // Estimated working memory in bytes
	Reasoning         string  `json:"reasoning"`          // Why this sutra was recommended
	MathematicalBasis string  `json:"mathematical_basis"` // Underlying identity
}

// CombinedScore weights confidence by the predicted speedup.
// Used to rank candidate sutras during selection.
func (p PatternAnalysis) CombinedScore() float64 {
	return p.Confidence * (1.0 + p.Prediction*0.2)
}

// Platform identifies the resource environment the dispatcher runs on
type Platform string

const (
	PlatformDesktop  Platform = "linux-desktop"
	PlatformServer   Platform = "linux-server"
	PlatformEmbedded Platform = "embedded-runtime"
	PlatformUnknown  Platform = "unknown"
)

// Constrained reports whether the platform is resource-constrained.
// Constrained platforms bias selection away from complex sutras.
func (p Platform) Constrained() bool {
	return p == PlatformEmbedded
}

// ResourceSnapshot is a point-in-time sample of system metrics.
// Supplied by a ResourceMonitor; the dispatcher treats it as read-only
// and resamples only when it is older than the monitoring interval.
type ResourceSnapshot struct {
	Timestamp         time.Time `json:"timestamp"`
	CPUUsage          float64   `json:"cpu_usage"`           // CPU usage percentage
	MemoryUsage       float64   `json:"memory_usage"`        // Memory usage percentage
	MemoryTotalMB     uint64    `json:"memory_total_mb"`     // Total system memory
	MemoryAvailableMB uint64    `json:"memory_available_mb"` // Available system memory
	TemperatureC      float64   `json:"temperature_c"`       // Sensor temperature, 0 if unavailable
	PowerWatts        float64   `json:"power_watts"`         // Power draw, 0 if unavailable
	FreeHeapBytes     uint64    `json:"free_heap_bytes"`     // Free heap (embedded platforms)
	TaskCount         int       `json:"task_count"`          // Running tasks (embedded platforms)
	ThermalThrottling bool      `json:"thermal_throttling"`  // Thermal throttle flag
	Platform          Platform  `json:"platform"`            // Platform identifier
}

// DispatcherConfig is the mutable configuration read on every dispatch.
// Populated with defaults at init; replaced wholesale by the caller or
// nudged by the adaptive tuner, never mutated mid-pipeline.
type DispatcherConfig struct {
	CPUThresholdHigh     float64       `json:"cpu_threshold_high"`    // CPU % above which load modulation kicks in
	CPUThresholdLow      float64       `json:"cpu_threshold_low"`     // CPU % below which the system is idle
	MemoryThresholdHigh  float64       `json:"memory_threshold_high"` // Memory fraction (0-1) for high pressure
	MemoryThresholdLow   float64       `json:"memory_threshold_low"`  // Memory fraction (0-1) for low pressure
	TemperatureThreshold float64       `json:"temperature_threshold"` // Celsius bound for thermal bias
	MonitoringInterval   time.Duration `json:"monitoring_interval"`   // Snapshot staleness bound
	AdaptiveTuning       bool          `json:"adaptive_tuning"`       // Enable periodic threshold tuning
	EnergyAware          bool          `json:"energy_aware"`          // Prefer cheap sutras on battery/thermal pressure
	MinFreeMemory        uint64        `json:"min_free_memory"`       // Minimum free memory in bytes
}

// ValidationRecord is one persisted entry per dispatched operation
type ValidationRecord struct {
	ID                   string           `json:"id"`                    // Unique record identifier
	Timestamp            time.Time        `json:"timestamp"`             // When the dispatch happened
	OperandA             int64            `json:"operand_a"`             // First operand
	OperandB             int64            `json:"operand_b"`             // Second operand
	Result               int64            `json:"result"`                // Returned result
	Sutra                SutraID          `json:"selected_sutra"`        // Selected sutra
	Confidence           float64          `json:"confidence_score"`      // Post-modulation confidence
	Reasoning            string           `json:"selection_reasoning"`   // Selection reasoning text
	SutraTime            time.Duration    `json:"vedic_time"`            // Chosen-path execution time
	StandardTime         time.Duration    `json:"standard_time"`         // Baseline execution time
	ActualSpeedup        float64          `json:"actual_speedup"`        // baseline / chosen
	PredictedSpeedup     float64          `json:"predicted_speedup"`     // Analyzer prediction
	PerformanceValidated bool             `json:"performance_validated"` // Actual speedup >= 1.0
	Snapshot             ResourceSnapshot `json:"resource_snapshot"`     // Resources at call time
	CorrectnessVerified  bool             `json:"correctness_verified"`  // Sutra agreed with baseline
	PrecisionError       float64          `json:"precision_error"`       // Relative error vs baseline
}

// DispatchMode classifies a completed dispatch for the performance history
type DispatchMode string

const (
	ModeOptimized DispatchMode = "optimized" // Fast sutra path (predicted speedup > 2.0)
	ModeAdaptive  DispatchMode = "adaptive"  // Sutra selected under moderate confidence
	ModeStandard  DispatchMode = "standard"  // Baseline fallback
)

// PerformanceSample is one entry in the tuner's history window
type PerformanceSample struct {
	Mode     DispatchMode     `json:"mode"`
	Duration time.Duration    `json:"duration"`
	Success  bool             `json:"success"`
	Snapshot ResourceSnapshot `json:"snapshot"`
}

// ResourceMonitor supplies resource snapshots on demand.
// Implementations are platform-specific; the dispatch core never
// branches on platform identity directly.
type ResourceMonitor interface {
	// Sample returns a fresh resource snapshot
	Sample() (*ResourceSnapshot, error)
}

// SutraFunc is a pure sutra algorithm mapping two operands to a result
type SutraFunc func(a, b int64) int64

// Recorder persists validation records and supports export and reset
type Recorder interface {
	// Record appends one validation record
	Record(record ValidationRecord) error

	// Count returns the number of stored records
	Count() int

	// Reset discards all records and reinitializes storage
	Reset()
}
