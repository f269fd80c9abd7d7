// Package main provides the career_planner CLI: the questionnaire, match
// results, saved plan and the local HTTP adapter.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_planner",
	Short: "Career Path Planner",
	Long: "Career Path Planner scores academic majors against your courses, activities, skills and preferences, " +
		"and keeps a saved plan of majors, colleges and jobs on this machine.",
	SilenceUsage: true,
}

var (
	configPath  string
	dataDir     string
	storeKind   string
	catalogPath string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the saved profile (default ./data)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Storage backend: file or sqlite (default file)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (default built-in catalog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print profile details and debug logs")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
