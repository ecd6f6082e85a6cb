/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: modulator.go
Description: Resource modulator for the Vedic Dispatcher. Adjusts a candidate
analysis's confidence using the current resource snapshot and the configured
thresholds. Only the last rule that fires rewrites the reasoning text; earlier
adjustments keep their confidence effect but lose their explanation.
*/

package dispatch

import (
	"fmt"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/sutras"
)

// Modulation rule constants
const (
	fastSpeedupBound    = 2.0 // Predictions above this count as fast methods
	heavyMemoryBound    = 200 // Bytes above which memory pressure penalizes
	complexFactorBound  = 1.0 // Complexity above which constrained platforms penalize
	loadBoostFactor     = 1.2
	loadPenaltyFactor   = 0.8
	memoryPenaltyFactor = 0.7
	platformBiasFactor  = 0.6
	thermalBiasFactor   = 0.5
)

// ResourceModulator applies resource-aware adjustments to pattern analyses
type ResourceModulator struct {
	registry *sutras.Registry
}

// NewResourceModulator creates a resource modulator over the given registry
func NewResourceModulator(registry *sutras.Registry) *ResourceModulator {
	return &ResourceModulator{registry: registry}
}

// Modulate adjusts the analysis confidence for the current resource state.
// The input analysis is not mutated; a modulated copy is returned with
// confidence clamped to 1.0.
func (rm *ResourceModulator) Modulate(analysis interfaces.PatternAnalysis, snapshot *interfaces.ResourceSnapshot, config interfaces.DispatcherConfig) interfaces.PatternAnalysis {
	if snapshot == nil {
		return analysis
	}

	modulated := analysis
	profile, _ := rm.registry.Lookup(analysis.Sutra)

	// High CPU load: favor fast methods, penalize complex ones
	if snapshot.CPUUsage > config.CPUThresholdHigh {
		if modulated.Prediction > fastSpeedupBound {
			modulated.Confidence *= loadBoostFactor
			modulated.Reasoning = fmt.Sprintf("CPU load %.1f%% favors fast method (predicted %.1fx)",
				snapshot.CPUUsage, modulated.Prediction)
		} else {
			modulated.Confidence *= loadPenaltyFactor
			modulated.Reasoning = fmt.Sprintf("CPU load %.1f%% penalizes slower method", snapshot.CPUUsage)
		}
	}

	// High memory pressure: penalize memory-hungry methods
	if snapshot.MemoryUsage > config.MemoryThresholdHigh*100 && modulated.MemoryRequired > heavyMemoryBound {
		modulated.Confidence *= memoryPenaltyFactor
		modulated.Reasoning = fmt.Sprintf("Memory usage %.1f%% penalizes %d-byte working set",
			snapshot.MemoryUsage, modulated.MemoryRequired)
	}

	// Resource-constrained platform: bias against complex sutras
	if snapshot.Platform.Constrained() && profile.ComplexityFactor > complexFactorBound {
		modulated.Confidence *= platformBiasFactor
		modulated.Reasoning = fmt.Sprintf("Constrained platform %s penalizes complexity %.1f",
			snapshot.Platform, profile.ComplexityFactor)

		if snapshot.TemperatureC > config.TemperatureThreshold {
			modulated.Confidence *= thermalBiasFactor
			modulated.Reasoning = fmt.Sprintf("Temperature %.1fC exceeds threshold %.1fC",
				snapshot.TemperatureC, config.TemperatureThreshold)
		}
	}

	if modulated.Confidence > 1.0 {
		modulated.Confidence = 1.0
	}

	return modulated
}
