/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: export.go
Description: Export command for the Vedic Dispatcher. Reads persisted validation
records from a SQLite store and writes them to a CSV file in the fixed research
schema.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/kleascm/vedic-dispatcher/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunExport converts a persisted validation dataset to CSV
func RunExport(cmd *cobra.Command, args []string) error {
	dbPath := viper.GetString("export_db")
	outPath := viper.GetString("export_out")

	store, err := validation.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.LoadAll()
	if err != nil {
		return err
	}

	// Replay the stored records through a recorder so the CSV path
	// stays single-sourced
	recorder := validation.NewRecorder(len(records))
	for i := range records {
		if err := recorder.Record(records[i]); err != nil {
			return fmt.Errorf("failed to stage record for export: %w", err)
		}
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	rows, err := recorder.Export(file)
	if err != nil {
		return fmt.Errorf("failed to export records: %w", err)
	}

	fmt.Printf("📊 Exported %d validation records from %s to %s\n", rows, dbPath, outPath)
	return nil
}
