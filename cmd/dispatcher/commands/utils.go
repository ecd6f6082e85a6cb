/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Vedic Dispatcher commands. Provides common
configuration loading, logging setup, and engine construction used across all
command implementations.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/vedic-dispatcher/pkg/dispatch"
	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/logging"
	"github.com/kleascm/vedic-dispatcher/pkg/monitoring"
	"github.com/kleascm/vedic-dispatcher/pkg/validation"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("VEDIC")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Timestamp: true,
		Colors:    true,
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}
	return logging.NewLogger(config)
}

// createDispatcherConfig builds the dispatcher configuration from viper
func createDispatcherConfig() interfaces.DispatcherConfig {
	config := interfaces.DefaultConfig()
	config.CPUThresholdHigh = viper.GetFloat64("cpu_threshold_high")
	config.CPUThresholdLow = viper.GetFloat64("cpu_threshold_low")
	config.MemoryThresholdHigh = viper.GetFloat64("memory_threshold_high")
	config.MemoryThresholdLow = viper.GetFloat64("memory_threshold_low")
	config.TemperatureThreshold = viper.GetFloat64("temperature_threshold")
	config.MonitoringInterval = viper.GetDuration("monitoring_interval")
	config.AdaptiveTuning = viper.GetBool("adaptive_tuning")
	config.EnergyAware = viper.GetBool("energy_aware")
	return config
}

// createMonitor builds the resource monitor selected by configuration
func createMonitor() interfaces.ResourceMonitor {
	switch viper.GetString("monitor") {
	case "runtime":
		return monitoring.NewRuntimeMonitor()
	case "static":
		return monitoring.NewIdleMonitor()
	default:
		return monitoring.NewProcfsMonitor(interfaces.PlatformDesktop)
	}
}

// setupEngine wires logger, monitor, recorder, and configuration into
// a ready dispatcher
func setupEngine() (*dispatch.Dispatcher, *validation.Recorder, *logging.Logger, error) {
	if err := LoadConfig(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogging()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	recorder := validation.NewRecorder(validation.DefaultInitialCapacity)
	engine := dispatch.NewDispatcher(createMonitor(), recorder, logger.GetLogger())

	if err := engine.SetConfig(createDispatcherConfig()); err != nil {
		logger.Close()
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return engine, recorder, logger, nil
}
