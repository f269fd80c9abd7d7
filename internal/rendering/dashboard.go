package rendering

import (
	"strings"

	"github.com/jonathan/career-planner/internal/types"
)

// Checklist item ids, in display order
const (
	ChecklistChooseMajor       = "choose-major"
	ChecklistResearchColleges  = "research-colleges"
	ChecklistApplyInternship   = "apply-internship"
	ChecklistScholarshipRemind = "set-scholarship-reminders"
)

// minResearchedColleges is how many saved colleges complete the research step
const minResearchedColleges = 3

// ValuesStatement summarizes the user's goals in a sentence or three.
// It is empty until at least one priority is set.
func ValuesStatement(goals types.Goals) string {
	if len(goals.Priorities) == 0 {
		return ""
	}

	sentences := []string{"You value " + PriorityLabel(goals.Priorities[0].Priority) + " most highly."}

	switch goals.CityTown {
	case types.CityUrban:
		sentences = append(sentences, "You prefer urban environments.")
	case types.CityTown:
		sentences = append(sentences, "You prefer small town environments.")
	}

	switch goals.Schedule {
	case types.ScheduleTraditional, types.ScheduleFlexible:
		sentences = append(sentences, "You prefer "+string(goals.Schedule)+" work schedules.")
	}

	return strings.Join(sentences, " ")
}

// PriorityLabel turns a priority id such as "work-life-balance" into display text
func PriorityLabel(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}

// ProgressChecklist reports which planning steps the profile has completed
func ProgressChecklist(profile *types.Profile) []types.ChecklistItem {
	if profile == nil {
		profile = &types.Profile{}
	}

	return []types.ChecklistItem{
		{
			ID:        ChecklistChooseMajor,
			Label:     "Choose a major",
			Completed: len(profile.SavedMajors) > 0,
		},
		{
			ID:        ChecklistResearchColleges,
			Label:     "Research 3+ colleges",
			Completed: len(profile.SavedColleges) >= minResearchedColleges,
		},
		{
			ID:        ChecklistApplyInternship,
			Label:     "Apply to internship",
			Completed: len(profile.SavedJobs) > 0,
		},
		{
			// Reminders live outside the planner, so this never completes here.
			ID:        ChecklistScholarshipRemind,
			Label:     "Set scholarship reminders",
			Completed: false,
		},
	}
}
