/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: executor_test.go
Description: Tests for the dual-path executor. Verifies timing clamps, speedup
computation, correctness validation, the divide-by-zero guard, and the asymmetric
mismatch policy between multiplication and division.
*/

package dispatch

import (
	"testing"
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/sutras"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExecutor() *Executor {
	return NewExecutor(sutras.NewRegistry())
}

// TestExecuteMultiplyVerified tests a clean dual-path multiplication
func TestExecuteMultiplyVerified(t *testing.T) {
	e := newExecutor()
	analysis := interfaces.PatternAnalysis{Sutra: interfaces.SutraNikhilam}

	outcome, err := e.Execute(interfaces.OperandPair{A: 98, B: 97}, analysis, interfaces.OpMultiply)
	require.NoError(t, err)

	assert.Equal(t, int64(9506), outcome.Result)
	assert.Equal(t, outcome.SutraResult, outcome.BaselineResult)
	assert.True(t, outcome.CorrectnessVerified)
	assert.False(t, outcome.Overridden)
	assert.Equal(t, 0.0, outcome.PrecisionError)
}

// TestExecuteTimingClamp tests the epsilon floor on both path timings
func TestExecuteTimingClamp(t *testing.T) {
	e := newExecutor()
	analysis := interfaces.PatternAnalysis{Sutra: interfaces.SutraEkadhikena}

	outcome, err := e.Execute(interfaces.OperandPair{A: 25, B: 25}, analysis, interfaces.OpMultiply)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, outcome.SutraTime, time.Microsecond)
	assert.GreaterOrEqual(t, outcome.BaselineTime, time.Microsecond)
	assert.Greater(t, outcome.ActualSpeedup, 0.0)
	assert.InDelta(t, float64(outcome.BaselineTime)/float64(outcome.SutraTime), outcome.ActualSpeedup, 1e-9)
}

// TestExecuteDivide tests the division path with the Paravartya binding
func TestExecuteDivide(t *testing.T) {
	e := newExecutor()
	analysis := interfaces.PatternAnalysis{Sutra: interfaces.SutraParavartya}

	outcome, err := e.Execute(interfaces.OperandPair{A: 987654, B: 321}, analysis, interfaces.OpDivide)
	require.NoError(t, err)

	assert.Equal(t, int64(987654/321), outcome.Result)
	assert.True(t, outcome.CorrectnessVerified)
}

// TestExecuteDivideByZero tests the guard before any timing or recording
func TestExecuteDivideByZero(t *testing.T) {
	e := newExecutor()
	analysis := interfaces.PatternAnalysis{Sutra: interfaces.SutraParavartya}

	outcome, err := e.Execute(interfaces.OperandPair{A: 42, B: 0}, analysis, interfaces.OpDivide)
	require.ErrorIs(t, err, ErrDivideByZero)

	assert.Equal(t, int64(0), outcome.Result)
	assert.Equal(t, time.Duration(0), outcome.SutraTime)
	assert.Equal(t, time.Duration(0), outcome.BaselineTime)
}

// TestMismatchPolicyAsymmetry tests trust-and-record vs validate-and-override
func TestMismatchPolicyAsymmetry(t *testing.T) {
	assert.Equal(t, interfaces.PolicyTrustAndRecord, interfaces.PolicyFor(interfaces.OpMultiply))
	assert.Equal(t, interfaces.PolicyValidateAndOverride, interfaces.PolicyFor(interfaces.OpDivide))
}

// TestRelativeError tests precision error computation including the zero baseline
func TestRelativeError(t *testing.T) {
	assert.Equal(t, 0.0, relativeError(100, 100))
	assert.InDelta(t, 0.1, relativeError(110, 100), 1e-9)
	assert.InDelta(t, 5.0, relativeError(5, 0), 1e-9)
}

// TestClampDuration tests the epsilon floor helper
func TestClampDuration(t *testing.T) {
	assert.Equal(t, timeEpsilon, clampDuration(0))
	assert.Equal(t, timeEpsilon, clampDuration(500*time.Nanosecond))
	assert.Equal(t, 2*time.Microsecond, clampDuration(2*time.Microsecond))
}
