/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Vedic Dispatcher. Provides commands
for dispatching single operations, running benchmark sessions, exporting the
validation dataset, and inspecting the sutra registry.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/vedic-dispatcher/cmd/dispatcher/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "vedic-dispatcher",
		Short: "Vedic Dispatcher - Adaptive sutra selection engine for integer arithmetic",
		Long: `Vedic Dispatcher selects, among several structurally distinct integer
multiplication algorithms (sutras), the one best suited to a given operand pair,
modulates that choice by live system resource constraints, executes it alongside
a trusted baseline to validate correctness and measure speedup, and records the
outcome for later statistical analysis.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().String("config", "", "Configuration file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().String("log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().Int("log-max-files", 10, "Maximum number of log files to keep")

	// Threshold configuration flags
	rootCmd.PersistentFlags().Float64("cpu-threshold-high", 80.0, "CPU percentage above which load modulation kicks in")
	rootCmd.PersistentFlags().Float64("cpu-threshold-low", 30.0, "CPU percentage below which the system is idle")
	rootCmd.PersistentFlags().Float64("memory-threshold-high", 0.8, "Memory fraction for high pressure")
	rootCmd.PersistentFlags().Float64("memory-threshold-low", 0.3, "Memory fraction for low pressure")
	rootCmd.PersistentFlags().Float64("temperature-threshold", 75.0, "Temperature bound in Celsius for thermal bias")
	rootCmd.PersistentFlags().Duration("monitoring-interval", 100*time.Millisecond, "Resource snapshot staleness bound")
	rootCmd.PersistentFlags().Bool("adaptive-tuning", true, "Enable periodic threshold tuning")
	rootCmd.PersistentFlags().Bool("energy-aware", false, "Prefer cheap sutras under thermal pressure")
	rootCmd.PersistentFlags().String("monitor", "procfs", "Resource monitor (procfs, runtime, static)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("cpu_threshold_high", rootCmd.PersistentFlags().Lookup("cpu-threshold-high"))
	viper.BindPFlag("cpu_threshold_low", rootCmd.PersistentFlags().Lookup("cpu-threshold-low"))
	viper.BindPFlag("memory_threshold_high", rootCmd.PersistentFlags().Lookup("memory-threshold-high"))
	viper.BindPFlag("memory_threshold_low", rootCmd.PersistentFlags().Lookup("memory-threshold-low"))
	viper.BindPFlag("temperature_threshold", rootCmd.PersistentFlags().Lookup("temperature-threshold"))
	viper.BindPFlag("monitoring_interval", rootCmd.PersistentFlags().Lookup("monitoring-interval"))
	viper.BindPFlag("adaptive_tuning", rootCmd.PersistentFlags().Lookup("adaptive-tuning"))
	viper.BindPFlag("energy_aware", rootCmd.PersistentFlags().Lookup("energy-aware"))
	viper.BindPFlag("monitor", rootCmd.PersistentFlags().Lookup("monitor"))

	// Add dispatch command
	dispatchCmd := &cobra.Command{
		Use:   "dispatch <a> <b>",
		Short: "Dispatch a single multiplication through the adaptive engine",
		Long: `Dispatch one multiplication: classify the operand pair against every
sutra's preconditions, modulate by live resources, execute the winner alongside
the standard baseline, and print the validated result with research metadata.`,
		Args: cobra.ExactArgs(2),
		RunE: commands.RunDispatch,
	}
	dispatchCmd.Flags().Bool("divide", false, "Dispatch a division instead of a multiplication")
	dispatchCmd.Flags().String("csv", "", "Append the validation record to this CSV file")
	viper.BindPFlag("divide", dispatchCmd.Flags().Lookup("divide"))
	viper.BindPFlag("csv_path", dispatchCmd.Flags().Lookup("csv"))
	rootCmd.AddCommand(dispatchCmd)

	// Add bench command
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a benchmark session over a generated workload",
		Long: `Run a benchmark session: dispatch a generated workload of operand pairs
covering every sutra's territory, report per-sutra selection counts and average
speedups, and optionally persist the validation dataset.`,
		RunE: commands.RunBench,
	}
	benchCmd.Flags().Int("operations", 1000, "Number of operations to dispatch")
	benchCmd.Flags().Int64("seed", 42, "Workload generator seed")
	benchCmd.Flags().String("db", "", "SQLite database path for persisting records")
	benchCmd.Flags().String("csv", "", "CSV file path for exporting records")
	viper.BindPFlag("bench_operations", benchCmd.Flags().Lookup("operations"))
	viper.BindPFlag("bench_seed", benchCmd.Flags().Lookup("seed"))
	viper.BindPFlag("bench_db", benchCmd.Flags().Lookup("db"))
	viper.BindPFlag("bench_csv", benchCmd.Flags().Lookup("csv"))
	rootCmd.AddCommand(benchCmd)

	// Add export command
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export persisted validation records as CSV",
		Long: `Export the validation records stored in a SQLite database to a CSV file
using the fixed research schema.`,
		RunE: commands.RunExport,
	}
	exportCmd.Flags().String("db", "./validation.db", "SQLite database path to read")
	exportCmd.Flags().String("out", "./validation.csv", "CSV output path")
	viper.BindPFlag("export_db", exportCmd.Flags().Lookup("db"))
	viper.BindPFlag("export_out", exportCmd.Flags().Lookup("out"))
	exportCmd.MarkFlagRequired("db")
	rootCmd.AddCommand(exportCmd)

	// Add list-sutras command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-sutras",
		Short: "List registered sutras and their profiles",
		Long: `List every sutra in the registry with its complexity factor, expected
speedup, memory overhead, and applicability description.`,
		Run: commands.ListSutras,
	})

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Perform system checks to validate resource monitor availability, log
directory writability, and configuration sanity. Useful for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
