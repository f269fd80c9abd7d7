package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the majors, colleges and jobs catalog",
}

var catalogMajorsCmd = &cobra.Command{
	Use:   "majors",
	Short: "List majors",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogCollegesCmd = &cobra.Command{
	Use:   "colleges",
	Short: "List colleges",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List jobs and internships",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogJSON bool

func init() {
	catalogCmd.PersistentFlags().BoolVar(&catalogJSON, "json", false, "Print entries as JSON")
	catalogCmd.AddCommand(catalogMajorsCmd, catalogCollegesCmd, catalogJobsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var entries any
	switch cmd.Name() {
	case "majors":
		entries = a.catalog.Majors()
		if !catalogJSON {
			a.printer.PrintMajors(a.catalog.Majors())
		}
	case "colleges":
		entries = a.catalog.Colleges()
		if !catalogJSON {
			a.printer.PrintColleges(a.catalog.Colleges())
		}
	case "jobs":
		entries = a.catalog.Jobs()
		if !catalogJSON {
			a.printer.PrintJobs(a.catalog.Jobs())
		}
	}

	if catalogJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	return nil
}
