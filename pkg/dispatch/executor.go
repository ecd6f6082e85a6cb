/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: executor.go
Description: Dual-path executor for the Vedic Dispatcher. Runs the selected sutra and
the standard baseline sequentially, each under its own monotonic timer, and applies
the per-operation mismatch policy: multiplication trusts the sutra result and records
the disagreement, division substitutes the baseline value.
*/

package dispatch

import (
	"errors"
	"math"
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/sutras"
)

// ErrDivideByZero is returned before any analysis or timing when the
// divisor is zero. The accompanying result is the zero sentinel.
var ErrDivideByZero = errors.New("division by zero")

// timeEpsilon is the minimum duration credited to either path.
// Clamping avoids zero-duration division artifacts in the speedup ratio.
const timeEpsilon = time.Microsecond

// ExecutionOutcome captures both timed paths of a single dispatch
type ExecutionOutcome struct {
	Result              int64         // Returned result after policy application
	SutraResult         int64         // Raw sutra-path result
	BaselineResult      int64         // Standard baseline result
	SutraTime           time.Duration // Chosen-path wall time, clamped to epsilon
	BaselineTime        time.Duration // Baseline wall time, clamped to epsilon
	ActualSpeedup       float64       // BaselineTime / SutraTime
	CorrectnessVerified bool          // Sutra agreed with baseline
	PrecisionError      float64       // Relative error of sutra vs baseline
	Overridden          bool          // Policy substituted the baseline value
}

// Executor runs sutra and baseline paths for a selected analysis
type Executor struct {
	registry *sutras.Registry
}

// NewExecutor creates an executor over the given registry
func NewExecutor(registry *sutras.Registry) *Executor {
	return &Executor{registry: registry}
}

// Execute runs the selected sutra and the standard baseline, both timed.
// The two paths run strictly sequentially: correctness validation needs
// each path's wall-clock cost measured without interference.
func (e *Executor) Execute(pair interfaces.OperandPair, analysis interfaces.PatternAnalysis, op interfaces.Operation) (*ExecutionOutcome, error) {
	if op == interfaces.OpDivide && pair.B == 0 {
		return &ExecutionOutcome{Result: 0}, ErrDivideByZero
	}

	sutraFn := e.registry.Algorithm(analysis.Sutra, op)
	baselineFn := e.registry.Algorithm(interfaces.SutraStandard, op)

	sutraResult, sutraTime := timedApply(sutraFn, pair)
	baselineResult, baselineTime := timedApply(baselineFn, pair)

	outcome := &ExecutionOutcome{
		Result:         sutraResult,
		SutraResult:    sutraResult,
		BaselineResult: baselineResult,
		SutraTime:      clampDuration(sutraTime),
		BaselineTime:   clampDuration(baselineTime),
	}
	outcome.ActualSpeedup = float64(outcome.BaselineTime) / float64(outcome.SutraTime)
	outcome.CorrectnessVerified = sutraResult == baselineResult
	outcome.PrecisionError = relativeError(sutraResult, baselineResult)

	// Mismatch policy: division substitutes the baseline, multiplication
	// trusts the sutra and only records the disagreement.
	if !outcome.CorrectnessVerified && interfaces.PolicyFor(op) == interfaces.PolicyValidateAndOverride {
		outcome.Result = baselineResult
		outcome.Overridden = true
	}

	return outcome, nil
}

// timedApply runs one algorithm path under a monotonic timer
func timedApply(fn interfaces.SutraFunc, pair interfaces.OperandPair) (int64, time.Duration) {
	start := time.Now()
	result := fn(pair.A, pair.B)
	return result, time.Since(start)
}

// clampDuration enforces the minimum positive epsilon on a path time
func clampDuration(d time.Duration) time.Duration {
	if d < timeEpsilon {
		return timeEpsilon
	}
	return d
}

// relativeError returns |sutra-baseline| / |baseline|, or the absolute
// difference when the baseline is zero
func relativeError(sutra, baseline int64) float64 {
	if sutra == baseline {
		return 0
	}
	diff := math.Abs(float64(sutra) - float64(baseline))
	if baseline == 0 {
		return diff
	}
	return diff / math.Abs(float64(baseline))
}
