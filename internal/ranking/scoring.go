// Package ranking scores catalog majors against a user profile.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-planner/internal/types"
)

// Points awarded per matching signal
const (
	coursePoints      = 10.0
	strongSkillPoints = 15.0
	someSkillPoints   = 5.0
	preferencePoints  = 10.0
	activityPoints    = 8.0
)

const (
	// preferenceTolerance is the exclusive bound on |user - target| for a preference match
	preferenceTolerance = 20
	// neutralPreference is used for axes the user never set
	neutralPreference = 50
)

// computeCourseScore awards points for each recorded course related to the major,
// weighted by the level the course was taken at.
func computeCourseScore(profile *types.Profile, major *types.MajorDefinition) (float64, []string) {
	if len(profile.Courses) == 0 || len(major.RelatedCourses) == 0 {
		return 0, nil
	}

	related := make(map[string]bool, len(major.RelatedCourses))
	for _, c := range major.RelatedCourses {
		related[c] = true
	}

	score := 0.0
	var reasons []string
	for _, course := range profile.Courses {
		if !related[course.Course] {
			continue
		}
		score += coursePoints * course.Level.Multiplier()
		reasons = append(reasons, fmt.Sprintf("You took %s at %s level", course.Course, course.Level))
	}

	return score, reasons
}

// computeSkillScore compares the user's ratings with the levels the major requires.
// Unrated skills count as 0 and contribute nothing.
func computeSkillScore(profile *types.Profile, major *types.MajorDefinition) (float64, []string) {
	score := 0.0
	var reasons []string
	for _, skill := range sortedKeys(major.RequiredSkills) {
		required := major.RequiredSkills[skill]
		rating := profile.Skills[skill]

		switch {
		case rating >= required && rating > 0:
			score += strongSkillPoints
			reasons = append(reasons, fmt.Sprintf("Strong %s skills", skill))
		case rating > 0:
			score += someSkillPoints
			reasons = append(reasons, fmt.Sprintf("Some %s experience", skill))
		}
	}

	return score, reasons
}

// computePreferenceScore awards points for each preference axis where the user's
// value lies within preferenceTolerance of the major's target. Axes the user left
// unset count as neutral, but a profile with no preferences at all scores nothing.
func computePreferenceScore(profile *types.Profile, major *types.MajorDefinition) (float64, []string) {
	if len(profile.Preferences) == 0 {
		return 0, nil
	}

	score := 0.0
	var reasons []string
	for _, axis := range sortedKeys(major.Preferences) {
		value, ok := profile.Preferences[axis]
		if !ok {
			value = neutralPreference
		}

		diff := value - major.Preferences[axis]
		if diff < 0 {
			diff = -diff
		}
		if diff < preferenceTolerance {
			score += preferencePoints
			reasons = append(reasons, fmt.Sprintf("Matches your %s preference", axis))
		}
	}

	return score, reasons
}

// computeActivityScore awards points once per activity whose name contains any of
// the major's activity keywords (case-insensitive).
func computeActivityScore(profile *types.Profile, major *types.MajorDefinition) (float64, []string) {
	if len(profile.Activities) == 0 || len(major.RelatedActivities) == 0 {
		return 0, nil
	}

	keywords := make([]string, 0, len(major.RelatedActivities))
	for _, k := range major.RelatedActivities {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}

	score := 0.0
	var reasons []string
	for _, activity := range profile.Activities {
		name := strings.ToLower(activity.Name)
		for _, keyword := range keywords {
			if strings.Contains(name, keyword) {
				score += activityPoints
				reasons = append(reasons, fmt.Sprintf("Your %s experience", activity.Name))
				break
			}
		}
	}

	return score, reasons
}

// sortedKeys returns map keys in ascending order so that reasons are reproducible
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
