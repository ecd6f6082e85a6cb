/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Dispatcher configuration defaults and validation. Invalid configurations
are rejected at set time rather than discovered mid-dispatch.
*/

package interfaces

import (
	"fmt"
	"time"
)

// Default configuration values for the dispatcher
const (
	DefaultCPUThresholdHigh     = 80.0
	DefaultCPUThresholdLow      = 30.0
	DefaultMemoryThresholdHigh  = 0.8
	DefaultMemoryThresholdLow   = 0.3
	DefaultTemperatureThreshold = 75.0
	DefaultMonitoringInterval   = 100 * time.Millisecond
	DefaultMinFreeMemory        = 64 * 1024 // 64KB, relevant on embedded platforms
)

// DefaultConfig returns the dispatcher configuration defaults
func DefaultConfig() DispatcherConfig {
	return DispatcherConfig{
		CPUThresholdHigh:     DefaultCPUThresholdHigh,
		CPUThresholdLow:      DefaultCPUThresholdLow,
		MemoryThresholdHigh:  DefaultMemoryThresholdHigh,
		MemoryThresholdLow:   DefaultMemoryThresholdLow,
		TemperatureThreshold: DefaultTemperatureThreshold,
		MonitoringInterval:   DefaultMonitoringInterval,
		AdaptiveTuning:       true,
		EnergyAware:          false,
		MinFreeMemory:        DefaultMinFreeMemory,
	}
}

// Validate checks the DispatcherConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *DispatcherConfig) Validate() error {
	if c.CPUThresholdHigh <= 0 || c.CPUThresholdHigh > 100 {
		return fmt.Errorf("cpu_threshold_high must be in (0,100], got %.2f", c.CPUThresholdHigh)
	}
	if c.CPUThresholdLow < 0 || c.CPUThresholdLow > 100 {
		return fmt.Errorf("cpu_threshold_low must be in [0,100], got %.2f", c.CPUThresholdLow)
	}
	if c.CPUThresholdLow >= c.CPUThresholdHigh {
		return fmt.Errorf("cpu_threshold_low (%.2f) must be below cpu_threshold_high (%.2f)",
			c.CPUThresholdLow, c.CPUThresholdHigh)
	}
	if c.MemoryThresholdHigh <= 0 || c.MemoryThresholdHigh > 1.0 {
		return fmt.Errorf("memory_threshold_high must be in (0,1], got %.2f", c.MemoryThresholdHigh)
	}
	if c.MemoryThresholdLow < 0 || c.MemoryThresholdLow >= c.MemoryThresholdHigh {
		return fmt.Errorf("memory_threshold_low must be in [0, memory_threshold_high), got %.2f", c.MemoryThresholdLow)
	}
	if c.TemperatureThreshold <= 0 {
		return fmt.Errorf("temperature_threshold must be positive, got %.2f", c.TemperatureThreshold)
	}
	if c.MonitoringInterval <= 0 {
		return fmt.Errorf("monitoring_interval must be positive, got %v", c.MonitoringInterval)
	}
	return nil
}
