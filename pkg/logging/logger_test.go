/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system. Verifies configuration validation,
log file creation, the dispatch logging helper, and the custom formatter.
*/

package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerConfigValidate tests config validation rules
func TestLoggerConfigValidate(t *testing.T) {
	valid := &LoggerConfig{Level: LogLevelInfo, Format: LogFormatCustom, MaxFiles: 5}
	assert.NoError(t, valid.Validate())

	bad := &LoggerConfig{Level: LogLevelInfo, Format: LogFormatCustom, MaxFiles: 0}
	assert.Error(t, bad.Validate())

	bad = &LoggerConfig{Level: "verbose", Format: LogFormatCustom, MaxFiles: 5}
	assert.Error(t, bad.Validate())

	bad = &LoggerConfig{Level: LogLevelInfo, Format: "xml", MaxFiles: 5}
	assert.Error(t, bad.Validate())
}

// TestNewLoggerCreatesLogFile tests timestamped file creation
func TestNewLoggerCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatJSON,
		OutputDir: dir,
		MaxFiles:  3,
	})
	require.NoError(t, err)
	defer logger.Close()

	files, err := filepath.Glob(filepath.Join(dir, "vedic-dispatcher_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

// TestLoggerDefaults tests that a nil config falls back to sane defaults
func TestLoggerDefaults(t *testing.T) {
	logger, err := NewLogger(nil)
	require.NoError(t, err)
	defer logger.Close()
	defer os.RemoveAll("./logs")

	assert.NotNil(t, logger.GetLogger())
}

// TestLogDispatch tests the dispatch logging helper
func TestLogDispatch(t *testing.T) {
	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatCustom,
		OutputDir: t.TempDir(),
		MaxFiles:  3,
		Timestamp: true,
	})
	require.NoError(t, err)
	defer logger.Close()

	// Must not panic with and without extra fields
	logger.LogDispatch("nikhilam", 98, 97, 9506, 2.1, nil)
	logger.LogDispatch("ekadhikena_purvena", 25, 25, 625, 3.4, map[string]interface{}{"mode": "optimized"})
}

// TestDispatchFormatter tests prefix detection and field formatting
func TestDispatchFormatter(t *testing.T) {
	f := &DispatchFormatter{Timestamp: false, Colors: false}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "Operation dispatched",
		Time:    time.Now(),
		Data: logrus.Fields{
			"sutra":   "nikhilam",
			"speedup": 2.5,
		},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "[DISPATCH]")
	assert.Contains(t, s, "INFO")
	assert.Contains(t, s, "sutra=nikhilam")
	assert.Contains(t, s, "speedup=2.5000")
}

// TestDispatchFormatterPrefixes tests event prefix mapping
func TestDispatchFormatterPrefixes(t *testing.T) {
	f := &DispatchFormatter{}
	assert.Equal(t, "DISPATCH", f.getEventPrefix("Operation dispatched"))
	assert.Equal(t, "MISMATCH", f.getEventPrefix("Sutra result mismatch"))
	assert.Equal(t, "TUNE", f.getEventPrefix("Adaptive thresholds tuned"))
	assert.Equal(t, "MONITOR", f.getEventPrefix("Resource sampling failed"))
	assert.Equal(t, "", f.getEventPrefix("unrelated message"))
}

// TestLoggerCleanup tests retention of at most MaxFiles log files
func TestLoggerCleanup(t *testing.T) {
	dir := t.TempDir()

	// Seed more stale files than the retention count
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "vedic-dispatcher_stale-"+string(rune('a'+i))+".log")
		require.NoError(t, os.WriteFile(name, []byte("old"), 0644))
	}

	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatText,
		OutputDir: dir,
		MaxFiles:  2,
	})
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "vedic-dispatcher_*.log"))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(files), 2)
}
