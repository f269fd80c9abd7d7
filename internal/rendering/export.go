package rendering

import (
	"encoding/json"
	"time"

	"github.com/jonathan/career-planner/internal/types"
)

// GeneratedAtLayout is the ISO-8601 UTC layout, with milliseconds, used for
// the generatedAt field of exported plans.
const GeneratedAtLayout = "2006-01-02T15:04:05.000Z"

// ExportFilename is the suggested download name for an exported plan
const ExportFilename = "career-plan.json"

// BuildPlanExport assembles the export document from a profile snapshot.
// The saved lists are always non-nil so they serialize as arrays.
func BuildPlanExport(profile *types.Profile, now time.Time) *types.PlanExport {
	p := &types.Profile{}
	if profile != nil {
		p = profile.Clone()
	}

	export := &types.PlanExport{
		SavedMajors:   p.SavedMajors,
		SavedColleges: p.SavedColleges,
		SavedJobs:     p.SavedJobs,
		Goals:         p.Goals,
		GeneratedAt:   now.UTC().Format(GeneratedAtLayout),
	}
	if export.SavedMajors == nil {
		export.SavedMajors = []types.MajorDefinition{}
	}
	if export.SavedColleges == nil {
		export.SavedColleges = []types.College{}
	}
	if export.SavedJobs == nil {
		export.SavedJobs = []types.Job{}
	}
	return export
}

// ExportJSON renders the export document as indented JSON
func ExportJSON(profile *types.Profile, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(BuildPlanExport(profile, now), "", "  ")
	if err != nil {
		return nil, &RenderError{
			Message: "failed to encode plan export",
			Cause:   err,
		}
	}
	return data, nil
}
