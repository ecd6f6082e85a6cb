/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for the Vedic Dispatcher. Provides the sutra
registry listing and the built-in self-check used for CI/CD validation.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kleascm/vedic-dispatcher/pkg/dispatch"
	"github.com/kleascm/vedic-dispatcher/pkg/interfaces"
	"github.com/kleascm/vedic-dispatcher/pkg/sutras"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ListSutras prints every registered sutra with its profile
func ListSutras(cmd *cobra.Command, args []string) {
	registry := sutras.NewRegistry()

	fmt.Println("📜 Registered sutras (in tie-break priority order):")
	fmt.Println()
	for _, profile := range registry.Profiles() {
		fmt.Printf("  %s (%s)\n", profile.Name, profile.ID)
		fmt.Printf("    Complexity factor: %.1f\n", profile.ComplexityFactor)
		fmt.Printf("    Expected speedup:  %.1fx\n", profile.ExpectedSpeedup)
		fmt.Printf("    Memory overhead:   %d bytes\n", profile.MemoryOverhead)
		fmt.Printf("    Applicability:     %s\n", profile.Applicability)
		fmt.Println()
	}
}

// PerformSelfCheck validates the runtime environment and arithmetic core
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Performing Vedic Dispatcher self-checks...")

	checks := []struct {
		name string
		fn   func() error
	}{
		{"Configuration", checkConfiguration},
		{"Log directory", checkLogDirectory},
		{"Resource monitor", checkMonitor},
		{"Arithmetic core", checkArithmetic},
		{"Dispatch pipeline", checkPipeline},
	}

	failed := 0
	for _, check := range checks {
		if err := check.fn(); err != nil {
			fmt.Printf("  ❌ %s: %v\n", check.name, err)
			failed++
		} else {
			fmt.Printf("  ✅ %s\n", check.name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Println("\n✅ All checks passed")
	return nil
}

// checkConfiguration validates the viper-derived dispatcher configuration
func checkConfiguration() error {
	if err := LoadConfig(); err != nil {
		return err
	}
	config := createDispatcherConfig()
	return config.Validate()
}

// checkLogDirectory verifies the log directory is writable
func checkLogDirectory() error {
	dir := viper.GetString("log_dir")
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	probe := filepath.Join(dir, ".write-check")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("log directory not writable: %w", err)
	}
	os.Remove(probe)
	return nil
}

// checkMonitor verifies the configured resource monitor can sample
func checkMonitor() error {
	monitor := createMonitor()
	snapshot, err := monitor.Sample()
	if err != nil {
		return fmt.Errorf("monitor sample failed: %w", err)
	}
	if snapshot.CPUUsage < 0 || snapshot.CPUUsage > 100 {
		return fmt.Errorf("CPU usage out of range: %.2f", snapshot.CPUUsage)
	}
	return nil
}

// checkArithmetic spot-checks every sutra against the standard baseline
func checkArithmetic() error {
	cases := []struct {
		name string
		fn   interfaces.SutraFunc
		a, b int64
	}{
		{"ekadhikena", sutras.EkadhikenaPurvena, 25, 25},
		{"nikhilam", sutras.NikhilamMultiply, 98, 97},
		{"antyayordasake", sutras.Antyayordasake, 47, 43},
		{"urdhva", sutras.UrdhvaTiryagbhyam, 123456, 654321},
	}
	for _, c := range cases {
		want := c.a * c.b
		if got := c.fn(c.a, c.b); got != want {
			return fmt.Errorf("%s(%d, %d) = %d, want %d", c.name, c.a, c.b, got, want)
		}
	}
	if got := sutras.ParavartyaDivide(987654, 321); got != 987654/321 {
		return fmt.Errorf("paravartya(987654, 321) = %d, want %d", got, 987654/321)
	}
	return nil
}

// checkPipeline runs one deterministic dispatch end to end
func checkPipeline() error {
	engine, recorder, logger, err := setupEngine()
	if err != nil {
		return err
	}
	defer logger.Close()

	outcome, err := engine.Dispatch(105, 105)
	if err != nil {
		return err
	}
	if outcome.Result != 105*105 {
		return fmt.Errorf("dispatch returned %d, want %d", outcome.Result, 105*105)
	}
	if recorder.Count() != 1 {
		return fmt.Errorf("expected 1 validation record, got %d", recorder.Count())
	}
	if _, err := engine.DispatchDivide(10, 0); err != dispatch.ErrDivideByZero {
		return fmt.Errorf("divide by zero not rejected: %v", err)
	}
	return nil
}
