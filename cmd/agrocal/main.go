// Package main provides the CLI entry point for agrocal-go.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/samankwah/agrocal-go/pkg/agrocal"
	"github.com/samankwah/agrocal-go/pkg/agrocal/config"
	"github.com/samankwah/agrocal-go/pkg/agrocal/models"
	"github.com/samankwah/agrocal-go/pkg/agrocal/output"
)

var (
	outputPath string
	pretty     bool
	mode       string
	sheetsDir  string
	configPath string
	hint       string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "agrocal [input.xlsx]",
		Short: "Extract agricultural calendars from Excel files",
		Long: `agrocal-go reads hand-authored crop and poultry calendar workbooks,
reconstructs their timelines, activities and colour-coded schedules,
and outputs JSON.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&mode, "mode", "standard", "Extraction mode: light, standard, verbose")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&hint, "hint", "", "Commodity or title hint (default: input file name)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	extractMode := agrocal.Mode(mode)
	if !extractMode.Valid() {
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := cfg.Logging.Build(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	opts := agrocal.Options{
		Mode:   extractMode,
		Logger: logger,
		Config: cfg,
		Hint:   hint,
	}

	wb, err := agrocal.ParseFile(context.Background(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	// Serialize to JSON
	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	// Write per-sheet files
	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(wb *models.WorkbookCalendar, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, doc := range wb.Sheets {
		jsonData, err := output.DocumentToJSON(&doc, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
