package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-planner/internal/rendering"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your saved plan as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render your saved plan as a printable HTML page",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

var (
	exportOutput string
	printOutput  string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output file (default stdout; use "+rendering.ExportFilename+" to match the web download)")
	printCmd.Flags().StringVarP(&printOutput, "out", "o", "", "Output HTML file (default stdout)")
	rootCmd.AddCommand(exportCmd, printCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	data, err := rendering.ExportJSON(a.session.Snapshot(), time.Now())
	if err != nil {
		return err
	}
	return writeOutput(cmd, exportOutput, append(data, '\n'))
}

func runPrint(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	page, err := rendering.RenderPlanHTML(a.session.Snapshot())
	if err != nil {
		return err
	}
	return writeOutput(cmd, printOutput, []byte(page))
}

// writeOutput writes data to path, or to stdout when path is empty
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}
