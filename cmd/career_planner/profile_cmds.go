package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-planner/internal/types"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Record the courses you have taken",
}

var courseSetCmd = &cobra.Command{
	Use:   "set <course> <basic|honors|ap_ib>",
	Short: "Add a course or change its level",
	Args:  cobra.ExactArgs(2),
	RunE:  runCourseSet,
}

var courseRemoveCmd = &cobra.Command{
	Use:   "remove <course>",
	Short: "Remove a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCourseRemove,
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Record extracurricular activities",
}

var activityAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an activity",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runActivityAdd,
}

var activityRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the activity at index (as listed by 'profile')",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivityRemove,
}

var skillCmd = &cobra.Command{
	Use:   "skill <skill> <1-5>",
	Short: "Rate one of your skills",
	Args:  cobra.ExactArgs(2),
	RunE:  runSkill,
}

var prefCmd = &cobra.Command{
	Use:   "pref <axis> <0-100>",
	Short: "Set a work-style preference slider",
	Args:  cobra.ExactArgs(2),
	RunE:  runPref,
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Set your priorities and lifestyle goals",
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace your goals",
	Args:  cobra.NoArgs,
	RunE:  runGoalsSet,
}

var goalsMoveCmd = &cobra.Command{
	Use:   "move <from-rank> <to-rank>",
	Short: "Move a priority to a new rank",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsMove,
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show everything you have entered",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear your profile and saved plan",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var (
	activityHours  int
	goalPriorities []string
	goalCity       string
	goalSchedule   string
)

func init() {
	activityAddCmd.Flags().IntVar(&activityHours, "hours", 5, "Hours per week")

	goalsSetCmd.Flags().StringSliceVarP(&goalPriorities, "priority", "p", nil, "Priority ids, most important first (repeatable)")
	goalsSetCmd.Flags().StringVar(&goalCity, "city", "", "Preferred setting: city, town or either")
	goalsSetCmd.Flags().StringVar(&goalSchedule, "schedule", "", "Preferred schedule: traditional, flexible or either")

	courseCmd.AddCommand(courseSetCmd, courseRemoveCmd)
	activityCmd.AddCommand(activityAddCmd, activityRemoveCmd)
	goalsCmd.AddCommand(goalsSetCmd, goalsMoveCmd)
	rootCmd.AddCommand(courseCmd, activityCmd, skillCmd, prefCmd, goalsCmd, profileCmd, resetCmd)
}

func runCourseSet(cmd *cobra.Command, args []string) error {
	level, ok := types.ParseCourseLevel(args[1])
	if !ok {
		return fmt.Errorf("unknown course level %q: want basic, honors or ap_ib", args[1])
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintProfile(a.session.SetCourse(commandContext(cmd), args[0], level))
	return nil
}

func runCourseRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintProfile(a.session.RemoveCourse(commandContext(cmd), args[0]))
	return nil
}

func runActivityAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("activity name is empty")
	}
	if activityHours < types.MinActivityHour {
		return fmt.Errorf("hours must be non-negative")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintProfile(a.session.AddActivity(commandContext(cmd), name, activityHours))
	return nil
}

func runActivityRemove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid activity index %q: %w", args[0], err)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintProfile(a.session.RemoveActivity(commandContext(cmd), index))
	return nil
}

func runSkill(cmd *cobra.Command, args []string) error {
	rating, err := strconv.Atoi(args[1])
	if err != nil || rating < types.MinSkillRating || rating > types.MaxSkillRating {
		return fmt.Errorf("rating must be a whole number from %d to %d, got %q", types.MinSkillRating, types.MaxSkillRating, args[1])
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintProfile(a.session.RateSkill(commandContext(cmd), args[0], rating))
	return nil
}

func runPref(cmd *cobra.Command, args []string) error {
	value, err := strconv.Atoi(args[1])
	if err != nil || value < types.MinPreference || value > types.MaxPreference {
		return fmt.Errorf("preference must be a whole number from %d to %d, got %q", types.MinPreference, types.MaxPreference, args[1])
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintProfile(a.session.SetPreference(commandContext(cmd), args[0], value))
	return nil
}

func runGoalsSet(cmd *cobra.Command, _ []string) error {
	city := types.CityPreference(goalCity)
	if !city.Valid() {
		return fmt.Errorf("unknown city preference %q: want city, town or either", goalCity)
	}
	schedule := types.SchedulePreference(goalSchedule)
	if !schedule.Valid() {
		return fmt.Errorf("unknown schedule preference %q: want traditional, flexible or either", goalSchedule)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p := a.session.SetGoals(commandContext(cmd), goalPriorities, city, schedule)
	printGoals(a, p)
	return nil
}

func runGoalsMove(cmd *cobra.Command, args []string) error {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid rank %q: %w", args[0], err)
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid rank %q: %w", args[1], err)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	// Ranks are 1-based on the command line.
	p := a.session.MovePriority(commandContext(cmd), from-1, to-1)
	printGoals(a, p)
	return nil
}

func runProfile(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintProfile(a.session.Snapshot())
	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.session.Reset(commandContext(cmd))
	fmt.Fprintln(cmd.OutOrStdout(), "Profile cleared.")
	return nil
}
