/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: static.go
Description: Static resource monitor for the Vedic Dispatcher. Returns a fixed
snapshot on every sample, giving tests and reproducible research runs a fully
deterministic resource environment.
*/

package monitoring

import (
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
)

// StaticMonitor returns the same snapshot on every sample
type StaticMonitor struct {
	snapshot interfaces.ResourceSnapshot
}

// NewStaticMonitor creates a monitor pinned to the given snapshot
func NewStaticMonitor(snapshot interfaces.ResourceSnapshot) *StaticMonitor {
	if snapshot.Platform == "" {
		snapshot.Platform = interfaces.PlatformDesktop
	}
	return &StaticMonitor{snapshot: snapshot}
}

// NewIdleMonitor creates a static monitor describing an unloaded desktop.
// Convenient for deterministic classification tests.
func NewIdleMonitor() *StaticMonitor {
	return NewStaticMonitor(interfaces.ResourceSnapshot{
		CPUUsage:          5.0,
		MemoryUsage:       20.0,
		MemoryTotalMB:     8192,
		MemoryAvailableMB: 6553,
		TemperatureC:      40.0,
		Platform:          interfaces.PlatformDesktop,
	})
}

// Sample returns the pinned snapshot with a fresh timestamp
func (m *StaticMonitor) Sample() (*interfaces.ResourceSnapshot, error) {
	snapshot := m.snapshot
	snapshot.Timestamp = time.Now()
	return &snapshot, nil
}
