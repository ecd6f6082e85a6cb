/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dispatch.go
Description: Single-operation dispatch command. Runs one multiplication or
division through the full adaptive pipeline and prints the validated result
with the research metadata for that dispatch.
*/

package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/kleascm/vedic-dispatcher/pkg/dispatch"
	"github.com/kleascm/vedic-dispatcher/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunDispatch executes one operation through the adaptive engine
func RunDispatch(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid operand %q: %w", args[0], err)
	}
	b, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid operand %q: %w", args[1], err)
	}

	engine, recorder, logger, err := setupEngine()
	if err != nil {
		return err
	}
	defer logger.Close()

	divide := viper.GetBool("divide")

	var outcome *dispatch.DispatchOutcome
	if divide {
		outcome, err = engine.DispatchDivide(a, b)
	} else {
		outcome, err = engine.Dispatch(a, b)
	}
	if err != nil {
		if errors.Is(err, dispatch.ErrDivideByZero) {
			return fmt.Errorf("cannot dispatch %d / %d: %w", a, b, err)
		}
		return fmt.Errorf("dispatch failed: %w", err)
	}

	op := "×"
	if divide {
		op = "÷"
	}

	fmt.Printf("🧮 %d %s %d = %d\n\n", a, op, b, outcome.Result)
	fmt.Printf("Selected sutra:    %s\n", outcome.Analysis.Sutra)
	fmt.Printf("Confidence:        %.4f\n", outcome.Analysis.Confidence)
	fmt.Printf("Reasoning:         %s\n", outcome.Analysis.Reasoning)
	fmt.Printf("Dispatch mode:     %s\n", outcome.Mode)
	fmt.Printf("Predicted speedup: %.2fx\n", outcome.Record.PredictedSpeedup)
	fmt.Printf("Actual speedup:    %.2fx\n", outcome.Record.ActualSpeedup)
	fmt.Printf("Sutra time:        %s\n", outcome.Record.SutraTime)
	fmt.Printf("Baseline time:     %s\n", outcome.Record.StandardTime)
	fmt.Printf("Correctness:       %t\n", outcome.Record.CorrectnessVerified)
	fmt.Printf("Perf validated:    %t\n", outcome.Record.PerformanceValidated)

	logger.LogDispatch(string(outcome.Analysis.Sutra), a, b, outcome.Result,
		outcome.Record.ActualSpeedup, map[string]interface{}{
			"operation": op,
			"mode":      string(outcome.Mode),
		})

	if csvPath := viper.GetString("csv_path"); csvPath != "" {
		if err := exportRecorderCSV(recorder, csvPath); err != nil {
			return err
		}
		fmt.Printf("\n📊 Validation record appended to %s\n", csvPath)
	}

	return nil
}

// exportRecorderCSV writes the recorder's dataset to a CSV file
func exportRecorderCSV(recorder *validation.Recorder, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if _, err := recorder.Export(file); err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}
	return nil
}
