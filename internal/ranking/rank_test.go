package ranking

import (
	"fmt"
	"testing"

	"github.com/jonathan/career-planner/internal/catalog"
	"github.com/jonathan/career-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAll_EmptyProfileScoresZero(t *testing.T) {
	majors := catalog.Default().Majors()

	results := ScoreAll(&types.Profile{}, majors)
	require.Len(t, results, len(majors))

	for _, r := range results {
		assert.Equal(t, 0.0, r.Score, r.Major.ID)
		assert.Empty(t, r.Reasons, r.Major.ID)
	}
}

func TestScoreAll_NilProfileDoesNotPanic(t *testing.T) {
	majors := []types.MajorDefinition{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}

	results := ScoreAll(nil, majors)

	require.Len(t, results, 2)
	assert.Equal(t, 0.0, results[0].Score)
	assert.Empty(t, results[0].Reasons)
}

func TestScoreAll_EntryPerMajorWithinBounds(t *testing.T) {
	profile := &types.Profile{
		Courses: []types.CourseRecord{
			{Course: "mathematics", Level: types.LevelAPIB},
			{Course: "physics", Level: types.LevelHonors},
			{Course: "english", Level: types.LevelBasic},
			{Course: "biology", Level: types.LevelBasic},
		},
		Skills: map[string]int{
			"problem-solving": 5, "mathematics": 5, "creativity": 5,
			"communication": 5, "leadership": 5,
		},
		Preferences: map[string]int{"theory-applied": 50, "people-technical": 50},
		Activities: []types.ActivityRecord{
			{Name: "Robotics", Hours: 5}, {Name: "Volunteer tutoring", Hours: 2},
			{Name: "Debate", Hours: 3}, {Name: "Science olympiad", Hours: 4},
		},
	}
	majors := catalog.Default().Majors()

	results := ScoreAll(profile, majors)

	require.Len(t, results, len(majors))
	seen := make(map[string]bool)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 100.0)
		assert.LessOrEqual(t, len(r.Reasons), 3)
		assert.False(t, seen[r.Major.ID], "duplicate result for %s", r.Major.ID)
		seen[r.Major.ID] = true
	}
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestScoreAll_ClampsAtHundred(t *testing.T) {
	major := types.MajorDefinition{
		ID:             "everything",
		RelatedCourses: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
	}
	profile := &types.Profile{}
	for _, c := range major.RelatedCourses {
		profile.Courses = append(profile.Courses, types.CourseRecord{Course: c, Level: types.LevelAPIB})
	}

	results := ScoreAll(profile, []types.MajorDefinition{major})

	require.Len(t, results, 1)
	assert.Equal(t, 100.0, results[0].Score)
	assert.Len(t, results[0].Reasons, 3)
}

func TestScoreMajor_ReasonOrderFollowsSubScores(t *testing.T) {
	major := types.MajorDefinition{
		ID:                "m",
		RelatedCourses:    []string{"chemistry"},
		RequiredSkills:    map[string]int{"communication": 3},
		Preferences:       map[string]int{"structured-flexible": 50},
		RelatedActivities: []string{"lab"},
	}
	profile := &types.Profile{
		Courses:     []types.CourseRecord{{Course: "chemistry", Level: types.LevelBasic}},
		Skills:      map[string]int{"communication": 1},
		Preferences: map[string]int{"theory-applied": 95},
		Activities:  []types.ActivityRecord{{Name: "Lab assistant", Hours: 3}},
	}

	scored := ScoreMajor(profile, &major)

	// 10 (course) + 5 (skill) + 10 (neutral preference) + 8 (activity)
	assert.Equal(t, 33.0, scored.Score)
	assert.Equal(t, []string{
		"You took chemistry at basic level",
		"Some communication experience",
		"Matches your structured-flexible preference",
	}, scored.Reasons)
}

func TestScoreAll_MathematicsAPIBContributesFifteen(t *testing.T) {
	major := types.MajorDefinition{ID: "cs", RelatedCourses: []string{"mathematics"}}
	profile := &types.Profile{
		Courses: []types.CourseRecord{{Course: "mathematics", Level: types.LevelAPIB}},
	}

	results := ScoreAll(profile, []types.MajorDefinition{major})

	assert.Equal(t, 15.0, results[0].Score)
}

func TestScoreAll_StableForTies(t *testing.T) {
	majors := make([]types.MajorDefinition, 0, 6)
	for i := 0; i < 6; i++ {
		majors = append(majors, types.MajorDefinition{ID: fmt.Sprintf("major_%d", i)})
	}
	// Give the last one a score so it moves to the front; the rest tie at zero
	majors[5].RelatedCourses = []string{"art"}
	profile := &types.Profile{Courses: []types.CourseRecord{{Course: "art", Level: types.LevelBasic}}}

	results := ScoreAll(profile, majors)

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Major.ID)
	}
	assert.Equal(t, []string{"major_5", "major_0", "major_1", "major_2", "major_3", "major_4"}, ids)
}

func TestScoreAll_Deterministic(t *testing.T) {
	profile := &types.Profile{
		Courses:     []types.CourseRecord{{Course: "english", Level: types.LevelHonors}},
		Skills:      map[string]int{"communication": 4, "creativity": 2, "leadership": 3},
		Preferences: map[string]int{"people-technical": 25},
		Activities:  []types.ActivityRecord{{Name: "School newspaper writing", Hours: 3}},
	}
	majors := catalog.Default().Majors()

	first := ScoreAll(profile, majors)
	second := ScoreAll(profile, majors)

	assert.Equal(t, first, second)
}

func TestScoreAll_DoesNotMutateInputs(t *testing.T) {
	majors := catalog.Default().Majors()
	profile := &types.Profile{Skills: map[string]int{"creativity": 5}}

	results := ScoreAll(profile, majors)
	results[0].Major.RequiredSkills["creativity"] = 1
	results[0].Major.RelatedCourses[0] = "changed"

	assert.Equal(t, catalog.Default().Majors(), majors)
	assert.Equal(t, map[string]int{"creativity": 5}, profile.Skills)
}

func TestTopN(t *testing.T) {
	results := []types.ScoredMajor{{Score: 3}, {Score: 2}, {Score: 1}}

	assert.Len(t, TopN(results, 2), 2)
	assert.Len(t, TopN(results, 0), 3)
	assert.Len(t, TopN(results, 10), 3)
}
