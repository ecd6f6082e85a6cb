/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tuner.go
Description: Adaptive threshold tuner for the Vedic Dispatcher. Every fixed number
of dispatches it aggregates the recent performance window by mode and nudges the
CPU thresholds toward the empirically fastest mode. Adjustments are clamped to
sane bounds so long sessions cannot drift into degenerate configurations.
*/

package dispatch

import (
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// Tuning cadence and bounds
const (
	DefaultTuningInterval = 100  // Dispatches between tuning passes
	minModeSamples        = 10   // Modes with fewer samples are skipped
	nudgeFactor           = 0.05 // 5% threshold adjustment per pass

	cpuHighFloor   = 50.0
	cpuHighCeiling = 95.0
	cpuLowFloor    = 10.0
	cpuLowCeiling  = 50.0
)

// TuningResult describes one tuning pass for logging and inspection
type TuningResult struct {
	Applied      bool                    `json:"applied"`       // Whether any threshold moved
	WinningMode  interfaces.DispatchMode `json:"winning_mode"`  // Minimum-average-time mode
	AverageTimes map[interfaces.DispatchMode]time.Duration `json:"average_times"`
}

// AdaptiveTuner periodically revises dispatcher thresholds from history
type AdaptiveTuner struct {
	history *PerformanceHistory
	logger  *logrus.Logger
}

// NewAdaptiveTuner creates a tuner over the given history window
func NewAdaptiveTuner(history *PerformanceHistory, logger *logrus.Logger) *AdaptiveTuner {
	return &AdaptiveTuner{history: history, logger: logger}
}

// Tune aggregates the history window by mode and nudges config thresholds
// toward the fastest mode. Modes with fewer than minModeSamples entries
// are excluded; when no mode qualifies, tuning is skipped entirely.
// The adjusted config is returned; the input is not mutated.
func (t *AdaptiveTuner) Tune(config interfaces.DispatcherConfig) (interfaces.DispatcherConfig, TuningResult) {
	result := TuningResult{AverageTimes: make(map[interfaces.DispatchMode]time.Duration)}

	totals := make(map[interfaces.DispatchMode]time.Duration)
	counts := make(map[interfaces.DispatchMode]int)
	for _, sample := range t.history.Samples() {
		totals[sample.Mode] += sample.Duration
		counts[sample.Mode]++
	}

	var winner interfaces.DispatchMode
	var winnerAvg time.Duration
	for mode, count := range counts {
		if count < minModeSamples {
			continue
		}
		avg := totals[mode] / time.Duration(count)
		result.AverageTimes[mode] = avg
		if winner == "" || avg < winnerAvg {
			winner = mode
			winnerAvg = avg
		}
	}
	if winner == "" {
		return config, result
	}
	result.WinningMode = winner

	tuned := config
	switch winner {
	case interfaces.ModeOptimized:
		tuned.CPUThresholdHigh = clampFloat(config.CPUThresholdHigh*(1.0-nudgeFactor), cpuHighFloor, cpuHighCeiling)
		result.Applied = tuned.CPUThresholdHigh != config.CPUThresholdHigh
	case interfaces.ModeAdaptive:
		tuned.CPUThresholdLow = clampFloat(config.CPUThresholdLow*(1.0+nudgeFactor), cpuLowFloor, cpuLowCeiling)
		result.Applied = tuned.CPUThresholdLow != config.CPUThresholdLow
	}

	if result.Applied && t.logger != nil {
		t.logger.WithFields(logrus.Fields{
			"winning_mode":       winner,
			"avg_time":           winnerAvg,
			"cpu_threshold_high": tuned.CPUThresholdHigh,
			"cpu_threshold_low":  tuned.CPUThresholdLow,
		}).Info("Adaptive thresholds tuned")
	}

	return tuned, result
}

// clampFloat bounds a value to [min, max]
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
