package rendering

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-planner/internal/catalog"
	"github.com/jonathan/career-planner/internal/schemas"
	"github.com/jonathan/career-planner/internal/types"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.FixedZone("EST", -5*60*60))

func samplePlanProfile(t *testing.T) *types.Profile {
	t.Helper()

	cat := catalog.Default()
	p := &types.Profile{}
	p.SetCourse("mathematics", types.LevelAPIB)
	p.RateSkill("analytical", 4)

	m, ok := cat.Major("computer-science")
	require.True(t, ok)
	p.SaveMajor(m)
	c, ok := cat.College("state-university")
	require.True(t, ok)
	p.SaveCollege(c)
	j, ok := cat.Job("tutor")
	require.True(t, ok)
	p.SaveJob(j)
	p.SetGoals([]string{"work-life-balance", "salary"}, types.CityUrban, types.ScheduleFlexible)
	return p
}

func TestBuildPlanExport_OnlySavedListsAndGoals(t *testing.T) {
	p := samplePlanProfile(t)

	export := BuildPlanExport(p, fixedNow)

	assert.Equal(t, "2026-03-14T14:26:53.589Z", export.GeneratedAt)
	assert.Equal(t, p.SavedMajors, export.SavedMajors)
	assert.Equal(t, p.SavedColleges, export.SavedColleges)
	assert.Equal(t, p.SavedJobs, export.SavedJobs)
	assert.Equal(t, p.Goals, export.Goals)

	data, err := ExportJSON(p, fixedNow)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Len(t, fields, 5)
	assert.NotContains(t, fields, "courses")
	assert.NotContains(t, fields, "skills")
	assert.NoError(t, schemas.ValidatePlanExport(data))
}

func TestBuildPlanExport_DoesNotAliasProfile(t *testing.T) {
	p := samplePlanProfile(t)

	export := BuildPlanExport(p, fixedNow)
	export.SavedMajors[0].Name = "changed"

	assert.Equal(t, "Computer Science", p.SavedMajors[0].Name)
}

func TestExportJSON_EmptyProfile(t *testing.T) {
	data, err := ExportJSON(nil, fixedNow)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"savedMajors": []`)
	assert.Contains(t, string(data), `"savedJobs": []`)
	assert.NoError(t, schemas.ValidatePlanExport(data))
}
