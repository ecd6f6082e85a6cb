/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: procfs.go
Description: Procfs-backed resource monitor for the Vedic Dispatcher. Samples CPU
usage from /proc/stat via delta calculation, memory from /proc/meminfo, and the
first thermal zone when available. Used on desktop and server Linux platforms.
*/

package monitoring

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
)

// thermalThrottleC is the sensor temperature above which the throttle
// flag is raised regardless of configured thresholds
const thermalThrottleC = 90.0

// ProcfsMonitor samples system resources from the proc filesystem
type ProcfsMonitor struct {
	mu       sync.Mutex
	platform interfaces.Platform

	// Previous CPU counters for delta calculation
	prevTotal uint64
	prevIdle  uint64
}

// NewProcfsMonitor creates a procfs resource monitor
func NewProcfsMonitor(platform interfaces.Platform) *ProcfsMonitor {
	if platform == "" {
		platform = interfaces.PlatformDesktop
	}
	return &ProcfsMonitor{platform: platform}
}

// Sample returns a fresh resource snapshot
func (m *ProcfsMonitor) Sample() (*interfaces.ResourceSnapshot, error) {
	snapshot := &interfaces.ResourceSnapshot{
		Timestamp: time.Now(),
		Platform:  m.platform,
	}

	snapshot.CPUUsage = m.cpuUsage()

	totalMB, availableMB := memInfo()
	snapshot.MemoryTotalMB = totalMB
	snapshot.MemoryAvailableMB = availableMB
	if totalMB > 0 {
		snapshot.MemoryUsage = 100.0 * float64(totalMB-availableMB) / float64(totalMB)
	}

	snapshot.TemperatureC = thermalZoneTemp()
	snapshot.ThermalThrottling = snapshot.TemperatureC > thermalThrottleC

	return snapshot, nil
}

// cpuUsage reads /proc/stat and computes usage from counter deltas.
// The first call has no previous counters and reports 0.
func (m *ProcfsMonitor) cpuUsage() float64 {
	data, err := os.ReadFile("/proc/stat")
	if err != nil {
		return 0.0
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 {
		return 0.0
	}

	fields := strings.Fields(lines[0])
	if len(fields) < 5 || fields[0] != "cpu" {
		return 0.0
	}

	var total, idle uint64
	for i := 1; i < len(fields); i++ {
		val, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			continue
		}
		total += val
		if i == 4 { // idle time is the 5th field
			idle = val
		}
	}
	if total == 0 {
		return 0.0
	}

	m.mu.Lock()
	prevTotal, prevIdle := m.prevTotal, m.prevIdle
	m.prevTotal, m.prevIdle = total, idle
	m.mu.Unlock()

	if prevTotal == 0 {
		return 0.0
	}
	totalDelta := total - prevTotal
	idleDelta := idle - prevIdle
	if totalDelta == 0 {
		return 0.0
	}
	return 100.0 * (1.0 - float64(idleDelta)/float64(totalDelta))
}

// memInfo reads MemTotal and MemAvailable from /proc/meminfo in MB
func memInfo() (uint64, uint64) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, 0
	}

	var totalKB, availableKB uint64
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			if val, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
				totalKB = val
			}
		case "MemAvailable:":
			if val, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
				availableKB = val
			}
		}
	}
	return totalKB / 1024, availableKB / 1024
}

// thermalZoneTemp reads the first thermal zone in millidegrees, best effort
func thermalZoneTemp() float64 {
	data, err := os.ReadFile("/sys/class/thermal/thermal_zone0/temp")
	if err != nil {
		return 0.0
	}
	milli, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0.0
	}
	return float64(milli) / 1000.0
}
