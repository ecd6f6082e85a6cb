/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: runtime.go
Description: Runtime-backed resource monitor for the Vedic Dispatcher. Samples the
Go runtime's heap statistics and goroutine count, standing in for the free-heap and
task-count metrics of embedded platforms where procfs is unavailable.
*/

package monitoring

import (
	"runtime"
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
)

// RuntimeMonitor samples resources from the Go runtime
type RuntimeMonitor struct {
	platform interfaces.Platform
}

// NewRuntimeMonitor creates a runtime resource monitor.
// Reports the embedded platform identity so selection biases toward
// low-complexity sutras.
func NewRuntimeMonitor() *RuntimeMonitor {
	return &RuntimeMonitor{platform: interfaces.PlatformEmbedded}
}

// Sample returns a snapshot derived from runtime memory statistics
func (m *RuntimeMonitor) Sample() (*interfaces.ResourceSnapshot, error) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	snapshot := &interfaces.ResourceSnapshot{
		Timestamp:     time.Now(),
		Platform:      m.platform,
		FreeHeapBytes: stats.HeapSys - stats.HeapInuse,
		TaskCount:     runtime.NumGoroutine(),
	}
	if stats.HeapSys > 0 {
		snapshot.MemoryUsage = 100.0 * float64(stats.HeapInuse) / float64(stats.HeapSys)
	}
	snapshot.MemoryTotalMB = stats.HeapSys / (1024 * 1024)
	snapshot.MemoryAvailableMB = snapshot.FreeHeapBytes / (1024 * 1024)

	return snapshot, nil
}
