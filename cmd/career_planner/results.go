package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-planner/internal/ranking"
	"github.com/jonathan/career-planner/internal/types"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Rank majors against your profile",
	Long:  "Scores every major in the catalog against your courses, skills, preferences and activities and prints the best matches with the reasons behind each score.",
	Args:  cobra.NoArgs,
	RunE:  runResults,
}

var (
	resultsLimit int
	resultsJSON  bool
)

func init() {
	resultsCmd.Flags().IntVarP(&resultsLimit, "limit", "n", 0, "Number of majors to show; 0 shows all (default from config)")
	resultsCmd.Flags().BoolVar(&resultsJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, _ []string) error {
	if resultsLimit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", resultsLimit)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	limit := a.cfg.ResultsLimit
	if cmd.Flags().Changed("limit") {
		limit = resultsLimit
	}

	snapshot := a.session.Snapshot()
	scored := ranking.ScoreAll(snapshot, a.catalog.Majors())

	if resultsJSON {
		data, err := json.MarshalIndent(&types.MatchResults{Ranked: ranking.TopN(scored, limit)}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if a.cfg.Verbose {
		a.printer.PrintProfile(snapshot)
	}
	a.printer.PrintMatchResults(&types.MatchResults{Ranked: scored}, limit)
	return nil
}
