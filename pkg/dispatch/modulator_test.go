/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: modulator_test.go
Description: Tests for the resource modulator. Verifies each adjustment rule in
isolation and in combination, the nil-snapshot passthrough, the confidence clamp,
and the last-rule-wins reasoning policy.
*/

package dispatch

import (
	"testing"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/sutras"
	"github.com/stretchr/testify/assert"
)

func newModulator() *ResourceModulator {
	return NewResourceModulator(sutras.NewRegistry())
}

func fastCandidate() interfaces.PatternAnalysis {
	return interfaces.PatternAnalysis{
		Sutra:          interfaces.SutraNikhilam,
		Confidence:     0.9,
		Prediction:     3.0,
		MemoryRequired: 128,
		Reasoning:      "pattern match",
	}
}

// TestModulateNilSnapshot tests that a missing snapshot leaves analyses untouched
func TestModulateNilSnapshot(t *testing.T) {
	rm := newModulator()
	in := fastCandidate()

	out := rm.Modulate(in, nil, interfaces.DefaultConfig())
	assert.Equal(t, in, out)
}

// TestModulateHighCPUBoostsFastMethods tests the load boost for fast predictions
func TestModulateHighCPUBoostsFastMethods(t *testing.T) {
	rm := newModulator()
	snapshot := &interfaces.ResourceSnapshot{CPUUsage: 90.0, Platform: interfaces.PlatformDesktop}

	in := fastCandidate()
	in.Confidence = 0.7 // low enough that the boost stays under the ceiling

	out := rm.Modulate(in, snapshot, interfaces.DefaultConfig())
	assert.InDelta(t, 0.7*1.2, out.Confidence, 1e-9)
	assert.Contains(t, out.Reasoning, "favors fast method")

	// The default 0.9 candidate boosts past 1.0 and gets clamped there
	out = rm.Modulate(fastCandidate(), snapshot, interfaces.DefaultConfig())
	assert.Equal(t, 1.0, out.Confidence)
}

// TestModulateHighCPUPenalizesSlowMethods tests the load penalty branch
func TestModulateHighCPUPenalizesSlowMethods(t *testing.T) {
	rm := newModulator()
	snapshot := &interfaces.ResourceSnapshot{CPUUsage: 90.0, Platform: interfaces.PlatformDesktop}

	slow := fastCandidate()
	slow.Sutra = interfaces.SutraUrdhva
	slow.Prediction = 1.5
	slow.Confidence = 0.6
	slow.MemoryRequired = 64

	out := rm.Modulate(slow, snapshot, interfaces.DefaultConfig())
	assert.InDelta(t, 0.6*0.8, out.Confidence, 1e-9)
	assert.Contains(t, out.Reasoning, "penalizes slower method")
}

// TestModulateMemoryPressure tests the memory penalty for heavy working sets
func TestModulateMemoryPressure(t *testing.T) {
	rm := newModulator()
	snapshot := &interfaces.ResourceSnapshot{CPUUsage: 10.0, MemoryUsage: 90.0, Platform: interfaces.PlatformDesktop}

	heavy := fastCandidate()
	heavy.Sutra = interfaces.SutraUrdhva
	heavy.MemoryRequired = 256

	out := rm.Modulate(heavy, snapshot, interfaces.DefaultConfig())
	assert.InDelta(t, 0.9*0.7, out.Confidence, 1e-9)

	// Light working sets are exempt even under pressure
	light := fastCandidate()
	light.MemoryRequired = 128
	out = rm.Modulate(light, snapshot, interfaces.DefaultConfig())
	assert.Equal(t, light.Confidence, out.Confidence)
}

// TestModulateConstrainedPlatform tests the complexity bias with thermal stacking
func TestModulateConstrainedPlatform(t *testing.T) {
	rm := newModulator()
	config := interfaces.DefaultConfig()

	costly := interfaces.PatternAnalysis{
		Sutra:          interfaces.SutraUrdhva, // complexity 1.2
		Confidence:     1.0,
		Prediction:     2.0,
		MemoryRequired: 64,
	}

	// Constrained platform alone
	snapshot := &interfaces.ResourceSnapshot{Platform: interfaces.PlatformEmbedded, TemperatureC: 50.0}
	out := rm.Modulate(costly, snapshot, config)
	assert.InDelta(t, 0.6, out.Confidence, 1e-9)

	// Thermal pressure stacks multiplicatively inside the platform rule
	snapshot.TemperatureC = 80.0
	out = rm.Modulate(costly, snapshot, config)
	assert.InDelta(t, 0.6*0.5, out.Confidence, 1e-9)
	assert.Contains(t, out.Reasoning, "Temperature")

	// Heat without a constrained platform changes nothing
	desktop := &interfaces.ResourceSnapshot{Platform: interfaces.PlatformDesktop, TemperatureC: 80.0}
	out = rm.Modulate(costly, desktop, config)
	assert.Equal(t, costly.Confidence, out.Confidence)
}

// TestModulateClampsConfidence tests the 1.0 ceiling after boosts
func TestModulateClampsConfidence(t *testing.T) {
	rm := newModulator()
	snapshot := &interfaces.ResourceSnapshot{CPUUsage: 95.0, Platform: interfaces.PlatformDesktop}

	in := fastCandidate()
	in.Confidence = 0.95

	out := rm.Modulate(in, snapshot, interfaces.DefaultConfig())
	assert.Equal(t, 1.0, out.Confidence)
}

// TestModulateLastRuleWinsReasoning tests that only the final fired rule explains
func TestModulateLastRuleWinsReasoning(t *testing.T) {
	rm := newModulator()
	snapshot := &interfaces.ResourceSnapshot{
		CPUUsage:    90.0,
		MemoryUsage: 90.0,
		Platform:    interfaces.PlatformDesktop,
	}

	heavy := fastCandidate()
	heavy.MemoryRequired = 256

	out := rm.Modulate(heavy, snapshot, interfaces.DefaultConfig())
	// Both the CPU and memory rules fired; only the memory rule explains
	assert.InDelta(t, 0.9*1.2*0.7, out.Confidence, 1e-9)
	assert.Contains(t, out.Reasoning, "Memory usage")
	assert.NotContains(t, out.Reasoning, "CPU load")
}

// TestModulateDoesNotMutateInput tests value semantics of modulation
func TestModulateDoesNotMutateInput(t *testing.T) {
	rm := newModulator()
	snapshot := &interfaces.ResourceSnapshot{CPUUsage: 90.0, Platform: interfaces.PlatformDesktop}

	in := fastCandidate()
	original := in
	rm.Modulate(in, snapshot, interfaces.DefaultConfig())
	assert.Equal(t, original, in)
}
