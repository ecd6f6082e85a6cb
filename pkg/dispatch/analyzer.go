/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Pattern analyzer for the Vedic Dispatcher. Evaluates the structural
preconditions of every sutra against an operand pair and returns confidence-scored
candidate analyses. Classification is deterministic: identical operands always
produce identical candidates.
*/

package dispatch

import (
	"fmt"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/sutras"
)

// Nikhilam proximity bands. Combined proximity above the strong bound gets
// the strong speedup prediction; between match and strong it gets the
// moderate prediction; below match the sutra is not a candidate.
const (
	nikhilamMatchBound  = 0.3
	nikhilamStrongBound = 0.7
	nikhilamStrongSpeed = 3.0
	nikhilamModerSpeed  = 2.0
)

// PatternAnalyzer classifies operand pairs against sutra preconditions
type PatternAnalyzer struct {
	registry *sutras.Registry
}

// NewPatternAnalyzer creates a pattern analyzer over the given registry
func NewPatternAnalyzer(registry *sutras.Registry) *PatternAnalyzer {
	return &PatternAnalyzer{registry: registry}
}

// Analyze evaluates every sutra's preconditions against the pair and
// returns one candidate per matching sutra. The Urdhva-Tiryagbhyam
// candidate is always present as a generic fallback; when no sutra
// matches at all the Standard candidate carries confidence 1.0.
func (pa *PatternAnalyzer) Analyze(pair interfaces.OperandPair) []interfaces.PatternAnalysis {
	candidates := make([]interfaces.PatternAnalysis, 0, 5)

	if c, ok := pa.analyzeEkadhikena(pair); ok {
		candidates = append(candidates, c)
	}
	if c, ok := pa.analyzeNikhilam(pair); ok {
		candidates = append(candidates, c)
	}
	if c, ok := pa.analyzeAntyayor(pair); ok {
		candidates = append(candidates, c)
	}
	candidates = append(candidates, pa.analyzeUrdhva(pair))

	allZero := true
	for _, c := range candidates {
		if c.Confidence > 0 {
			allZero = false
			break
		}
	}
	if allZero {
		candidates = append(candidates, pa.standardFallback())
	}

	return candidates
}

// analyzeEkadhikena matches the squaring shortcut for numbers ending in 5.
// The perfect case (a == b) scores 0.98; near-pairs both ending in 5 and
// at most 10 apart score 0.75.
func (pa *PatternAnalyzer) analyzeEkadhikena(pair interfaces.OperandPair) (interfaces.PatternAnalysis, bool) {
	profile, _ := pa.registry.Lookup(interfaces.SutraEkadhikena)

	if pair.A == pair.B && pair.A > 0 && pair.A%10 == 5 {
		return interfaces.PatternAnalysis{
			Sutra:             interfaces.SutraEkadhikena,
			Confidence:        0.98,
			Prediction:        3.5,
			PrecisionEstimate: profile.PrecisionFactor,
			MemoryRequired:    profile.MemoryOverhead,
			Reasoning:         fmt.Sprintf("Perfect squaring case: %d ends in 5", pair.A),
			MathematicalBasis: "n(n+1) prefix with 25 suffix for numbers ending in 5",
		}, true
	}

	diff := pair.A - pair.B
	if diff < 0 {
		diff = -diff
	}
	if pair.A > 0 && pair.B > 0 && pair.A%10 == 5 && pair.B%10 == 5 && diff <= 10 {
		return interfaces.PatternAnalysis{
			Sutra:             interfaces.SutraEkadhikena,
			Confidence:        0.75,
			Prediction:        2.8,
			PrecisionEstimate: profile.PrecisionFactor,
			MemoryRequired:    profile.MemoryOverhead,
			Reasoning:         "Near case: both operands end in 5 and differ by at most 10",
			MathematicalBasis: "Cross expansion of (10j+5)(10k+5)",
		}, true
	}

	return interfaces.PatternAnalysis{}, false
}

// analyzeNikhilam matches operands sharing a nearest power-of-ten base.
// Per-operand proximity is 1 - |x-base|/(0.3*base) clamped to zero; the
// combined proximity (average) becomes the confidence when above 0.3.
func (pa *PatternAnalyzer) analyzeNikhilam(pair interfaces.OperandPair) (interfaces.PatternAnalysis, bool) {
	if pair.A <= 0 || pair.B <= 0 {
		return interfaces.PatternAnalysis{}, false
	}

	base := sutras.NearestBase(pair.A)
	if base < 10 || base != sutras.NearestBase(pair.B) {
		return interfaces.PatternAnalysis{}, false
	}

	combined := (nikhilamProximity(pair.A, base) + nikhilamProximity(pair.B, base)) / 2.0
	if combined <= nikhilamMatchBound {
		return interfaces.PatternAnalysis{}, false
	}

	profile, _ := pa.registry.Lookup(interfaces.SutraNikhilam)
	prediction := nikhilamModerSpeed
	band := "moderate"
	if combined > nikhilamStrongBound {
		prediction = nikhilamStrongSpeed
		band = "strong"
	}

	return interfaces.PatternAnalysis{
		Sutra:             interfaces.SutraNikhilam,
		Confidence:        combined,
		Prediction:        prediction,
		PrecisionEstimate: profile.PrecisionFactor,
		MemoryRequired:    profile.MemoryOverhead,
		Reasoning:         fmt.Sprintf("Both operands near base %d (%s proximity %.2f)", base, band, combined),
		MathematicalBasis: "Base complement product (base+d1)(base+d2)",
	}, true
}

// nikhilamProximity scores how close an operand sits to its base.
// 1.0 at the base itself, 0 at 30% distance or beyond.
func nikhilamProximity(n, base int64) float64 {
	dist := n - base
	if dist < 0 {
		dist = -dist
	}
	proximity := 1.0 - float64(dist)/(0.3*float64(base))
	if proximity < 0 {
		return 0
	}
	return proximity
}

// analyzeAntyayor matches pairs whose last digits sum to ten under an
// equal, nonzero leading prefix
func (pa *PatternAnalyzer) analyzeAntyayor(pair interfaces.OperandPair) (interfaces.PatternAnalysis, bool) {
	if pair.A <= 0 || pair.B <= 0 {
		return interfaces.PatternAnalysis{}, false
	}
	if pair.A%10+pair.B%10 != 10 || pair.A/10 != pair.B/10 || pair.A/10 <= 0 {
		return interfaces.PatternAnalysis{}, false
	}

	profile, _ := pa.registry.Lookup(interfaces.SutraAntyayor)
	return interfaces.PatternAnalysis{
		Sutra:             interfaces.SutraAntyayor,
		Confidence:        0.90,
		Prediction:        2.3,
		PrecisionEstimate: profile.PrecisionFactor,
		MemoryRequired:    profile.MemoryOverhead,
		Reasoning:         fmt.Sprintf("Last digits %d+%d sum to 10 with shared prefix %d", pair.A%10, pair.B%10, pair.A/10),
		MathematicalBasis: "100k(k+1) + pq for p+q=10",
	}, true
}

// analyzeUrdhva produces the always-available generic candidate.
// Confidence scales with the wider operand's digit count.
func (pa *PatternAnalyzer) analyzeUrdhva(pair interfaces.OperandPair) interfaces.PatternAnalysis {
	digits := sutras.DigitCount(pair.A)
	if d := sutras.DigitCount(pair.B); d > digits {
		digits = d
	}

	var confidence, prediction float64
	var reasoning string
	switch {
	case digits >= 4:
		confidence = 0.8 + 0.05*float64(digits-4)
		if confidence > 0.95 {
			confidence = 0.95
		}
		prediction = 2.0
		reasoning = fmt.Sprintf("Multi-digit operands (%d digits) favor crosswise multiplication", digits)
	case digits == 3:
		confidence = 0.60
		prediction = 1.5
		reasoning = "Three-digit operands give moderate crosswise benefit"
	default:
		confidence = 0.25
		prediction = 1.1
		reasoning = "Small operands; crosswise multiplication available as generic fallback"
	}

	profile, _ := pa.registry.Lookup(interfaces.SutraUrdhva)
	return interfaces.PatternAnalysis{
		Sutra:             interfaces.SutraUrdhva,
		Confidence:        confidence,
		Prediction:        prediction,
		PrecisionEstimate: profile.PrecisionFactor,
		MemoryRequired:    profile.MemoryOverhead,
		Reasoning:         reasoning,
		MathematicalBasis: "Vertical and crosswise digit convolution",
	}
}

// standardFallback is selected with full confidence when no pattern matches
func (pa *PatternAnalyzer) standardFallback() interfaces.PatternAnalysis {
	profile, _ := pa.registry.Lookup(interfaces.SutraStandard)
	return interfaces.PatternAnalysis{
		Sutra:             interfaces.SutraStandard,
		Confidence:        1.0,
		Prediction:        1.0,
		PrecisionEstimate: profile.PrecisionFactor,
		MemoryRequired:    profile.MemoryOverhead,
		Reasoning:         "No pattern detected",
		MathematicalBasis: "Hardware multiplication",
	}
}
