// Package ranking scores catalog majors against a user profile.
package ranking

import (
	"sort"

	"github.com/jonathan/career-planner/internal/catalog"
	"github.com/jonathan/career-planner/internal/types"
)

const (
	maxScore   = 100.0
	maxReasons = 3
)

// ScoreAll scores every major against the profile and returns them sorted by
// score, highest first. Majors with equal scores keep their catalog order.
// A nil profile is scored as an empty one. Inputs are never modified.
func ScoreAll(profile *types.Profile, majors []types.MajorDefinition) []types.ScoredMajor {
	if profile == nil {
		profile = &types.Profile{}
	}

	scored := make([]types.ScoredMajor, 0, len(majors))
	for i := range majors {
		scored = append(scored, ScoreMajor(profile, &majors[i]))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// ScoreMajor computes the fit score and the top reasons for a single major.
func ScoreMajor(profile *types.Profile, major *types.MajorDefinition) types.ScoredMajor {
	if profile == nil {
		profile = &types.Profile{}
	}

	courseScore, courseReasons := computeCourseScore(profile, major)
	skillScore, skillReasons := computeSkillScore(profile, major)
	prefScore, prefReasons := computePreferenceScore(profile, major)
	activityScore, activityReasons := computeActivityScore(profile, major)

	total := courseScore + skillScore + prefScore + activityScore
	if total > maxScore {
		total = maxScore
	}
	if total < 0 {
		total = 0
	}

	reasons := make([]string, 0, maxReasons)
	for _, group := range [][]string{courseReasons, skillReasons, prefReasons, activityReasons} {
		for _, r := range group {
			if len(reasons) == maxReasons {
				break
			}
			reasons = append(reasons, r)
		}
	}

	return types.ScoredMajor{
		Major:   catalog.CopyMajor(*major),
		Score:   total,
		Reasons: reasons,
	}
}

// TopN returns the first n results. n <= 0 returns all of them.
func TopN(results []types.ScoredMajor, n int) []types.ScoredMajor {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}
