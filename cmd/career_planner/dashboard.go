package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-planner/internal/rendering"
	"github.com/jonathan/career-planner/internal/types"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your saved plan and progress",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

var dashboardJSON bool

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Print the dashboard as JSON")
	rootCmd.AddCommand(dashboardCmd)
}

// dashboardView is the JSON form of the dashboard
type dashboardView struct {
	Profile         *types.Profile        `json:"profile"`
	ValuesStatement string                `json:"valuesStatement"`
	Checklist       []types.ChecklistItem `json:"checklist"`
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p := a.session.Snapshot()
	if dashboardJSON {
		data, err := json.MarshalIndent(dashboardView{
			Profile:         p,
			ValuesStatement: rendering.ValuesStatement(p.Goals),
			Checklist:       rendering.ProgressChecklist(p),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal dashboard to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printGoals(a, p)
	return nil
}

// printGoals prints the dashboard box for p
func printGoals(a *app, p *types.Profile) {
	a.printer.PrintDashboard(p, rendering.ValuesStatement(p.Goals), rendering.ProgressChecklist(p))
}
