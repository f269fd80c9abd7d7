package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-planner/internal/types"
)

var saveCmd = &cobra.Command{
	Use:   "save <major|college|job> <id>",
	Short: "Save a catalog entry to your plan",
	Args:  cobra.ExactArgs(2),
	RunE:  runSave,
}

var unsaveCmd = &cobra.Command{
	Use:   "unsave <major|college|job> <id>",
	Short: "Remove an entry from your plan",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnsave,
}

func init() {
	rootCmd.AddCommand(saveCmd, unsaveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	kind, id := args[0], args[1]

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	// Unknown ids are reported here; the session itself ignores them.
	var found bool
	switch kind {
	case "major":
		_, found = a.catalog.Major(id)
	case "college":
		_, found = a.catalog.College(id)
	case "job":
		_, found = a.catalog.Job(id)
	default:
		return fmt.Errorf("unknown kind %q: want major, college or job", kind)
	}
	if !found {
		return fmt.Errorf("no %s with id %q in the catalog", kind, id)
	}

	ctx := commandContext(cmd)
	var p *types.Profile
	switch kind {
	case "major":
		p = a.session.SaveMajor(ctx, id)
	case "college":
		p = a.session.SaveCollege(ctx, id)
	case "job":
		p = a.session.SaveJob(ctx, id)
	}

	printGoals(a, p)
	return nil
}

func runUnsave(cmd *cobra.Command, args []string) error {
	kind, id := args[0], args[1]

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := commandContext(cmd)
	var p *types.Profile
	switch kind {
	case "major":
		p = a.session.RemoveSavedMajor(ctx, id)
	case "college":
		p = a.session.RemoveSavedCollege(ctx, id)
	case "job":
		p = a.session.RemoveSavedJob(ctx, id)
	default:
		return fmt.Errorf("unknown kind %q: want major, college or job", kind)
	}

	printGoals(a, p)
	return nil
}
