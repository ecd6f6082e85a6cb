/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: selector.go
Description: Deterministic sutra selector for the Vedic Dispatcher. Ranks modulated
candidates by combined score and picks exactly one winner. Exists as its own
component so the policy composition stays explicit and testable in isolation.
*/

package dispatch

import (
	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/sutras"
)

// Selector picks one sutra from a set of modulated candidate analyses
type Selector struct{}

// NewSelector creates a selector
func NewSelector() *Selector {
	return &Selector{}
}

// Select returns the candidate with the highest combined score.
// Ties break on the fixed registry priority order. An empty or
// all-zero-confidence candidate set falls back to Standard.
func (s *Selector) Select(candidates []interfaces.PatternAnalysis) interfaces.PatternAnalysis {
	best := interfaces.PatternAnalysis{
		Sutra:             interfaces.SutraStandard,
		Confidence:        1.0,
		Prediction:        1.0,
		PrecisionEstimate: 1.0,
		Reasoning:         "No pattern detected",
		MathematicalBasis: "Hardware multiplication",
	}

	anyConfidence := false
	for _, candidate := range candidates {
		if candidate.Confidence > 0 {
			anyConfidence = true
			break
		}
	}
	if !anyConfidence {
		return best
	}

	chosen := candidates[0]
	for _, candidate := range candidates[1:] {
		score := candidate.CombinedScore()
		bestScore := chosen.CombinedScore()
		if score > bestScore {
			chosen = candidate
			continue
		}
		if score == bestScore && sutras.PriorityRank(candidate.Sutra) < sutras.PriorityRank(chosen.Sutra) {
			chosen = candidate
		}
	}
	return chosen
}
