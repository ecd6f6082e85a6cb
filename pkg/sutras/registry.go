/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Static sutra registry for the Vedic Dispatcher. Holds the immutable
profile table and the algorithm bindings for every sutra. Read-only after
initialization; lookups never mutate state.
*/

package sutras

import (
	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
)

// priorityOrder is the fixed tie-break order used during selection.
// Earlier entries win ties.
var priorityOrder = []interfaces.SutraID{
	interfaces.SutraEkadhikena,
	interfaces.SutraNikhilam,
	interfaces.SutraAntyayor,
	interfaces.SutraUrdhva,
	interfaces.SutraParavartya,
	interfaces.SutraStandard,
}

// Registry is the immutable sutra profile table with algorithm bindings
type Registry struct {
	profiles   map[interfaces.SutraID]interfaces.SutraProfile
	multiplier map[interfaces.SutraID]interfaces.SutraFunc
	divider    map[interfaces.SutraID]interfaces.SutraFunc
}

// NewRegistry creates the static registry. Profiles are created once
// and never mutated afterwards.
func NewRegistry() *Registry {
	r := &Registry{
		profiles: map[interfaces.SutraID]interfaces.SutraProfile{
			interfaces.SutraEkadhikena: {
				ID:               interfaces.SutraEkadhikena,
				Name:             "Ekadhikena Purvena",
				ComplexityFactor: 0.3,
				ExpectedSpeedup:  3.5,
				MemoryOverhead:   64,
				PrecisionFactor:  1.0,
				Applicability:    "Squares and products of numbers ending in 5",
			},
			interfaces.SutraNikhilam: {
				ID:               interfaces.SutraNikhilam,
				Name:             "Nikhilam Navatashcaramam Dashatah",
				ComplexityFactor: 0.5,
				ExpectedSpeedup:  3.0,
				MemoryOverhead:   128,
				PrecisionFactor:  1.0,
				Applicability:    "Operands near a common power-of-ten base",
			},
			interfaces.SutraAntyayor: {
				ID:               interfaces.SutraAntyayor,
				Name:             "Antyayordasake",
				ComplexityFactor: 0.4,
				ExpectedSpeedup:  2.3,
				MemoryOverhead:   96,
				PrecisionFactor:  1.0,
				Applicability:    "Last digits summing to ten with equal leading digits",
			},
			interfaces.SutraUrdhva: {
				ID:               interfaces.SutraUrdhva,
				Name:             "Urdhva-Tiryagbhyam",
				ComplexityFactor: 1.2,
				ExpectedSpeedup:  2.0,
				MemoryOverhead:   256,
				PrecisionFactor:  1.0,
				Applicability:    "General multi-digit multiplication",
			},
			interfaces.SutraParavartya: {
				ID:               interfaces.SutraParavartya,
				Name:             "Paravartya Yojayet",
				ComplexityFactor: 1.4,
				ExpectedSpeedup:  1.8,
				MemoryOverhead:   192,
				PrecisionFactor:  1.0,
				Applicability:    "Integer division via transpose and apply",
			},
			interfaces.SutraStandard: {
				ID:               interfaces.SutraStandard,
				Name:             "Standard",
				ComplexityFactor: 1.0,
				ExpectedSpeedup:  1.0,
				MemoryOverhead:   32,
				PrecisionFactor:  1.0,
				Applicability:    "Always applicable baseline",
			},
		},
		multiplier: map[interfaces.SutraID]interfaces.SutraFunc{
			interfaces.SutraEkadhikena: EkadhikenaPurvena,
			interfaces.SutraNikhilam:   NikhilamMultiply,
			interfaces.SutraAntyayor:   Antyayordasake,
			interfaces.SutraUrdhva:     UrdhvaTiryagbhyam,
			interfaces.SutraStandard:   StandardMultiply,
		},
		divider: map[interfaces.SutraID]interfaces.SutraFunc{
			interfaces.SutraParavartya: ParavartyaDivide,
			interfaces.SutraStandard:   StandardDivide,
		},
	}
	return r
}

// Lookup returns the profile for a sutra id
func (r *Registry) Lookup(id interfaces.SutraID) (interfaces.SutraProfile, bool) {
	profile, ok := r.profiles[id]
	return profile, ok
}

// Profiles returns all profiles in priority order
func (r *Registry) Profiles() []interfaces.SutraProfile {
	profiles := make([]interfaces.SutraProfile, 0, len(r.profiles))
	for _, id := range priorityOrder {
		if profile, ok := r.profiles[id]; ok {
			profiles = append(profiles, profile)
		}
	}
	return profiles
}

// Algorithm returns the sutra function bound to an id for the given
// operation kind, falling back to the standard algorithm when the id
// has no binding for that kind.
func (r *Registry) Algorithm(id interfaces.SutraID, op interfaces.Operation) interfaces.SutraFunc {
	var table map[interfaces.SutraID]interfaces.SutraFunc
	if op == interfaces.OpDivide {
		table = r.divider
	} else {
		table = r.multiplier
	}
	if fn, ok := table[id]; ok {
		return fn
	}
	return table[interfaces.SutraStandard]
}

// PriorityRank returns the fixed tie-break rank of a sutra; lower wins.
// Unknown ids rank last.
func PriorityRank(id interfaces.SutraID) int {
	for i, candidate := range priorityOrder {
		if candidate == id {
			return i
		}
	}
	return len(priorityOrder)
}
