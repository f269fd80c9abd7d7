// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is everything one user has entered plus their saved catalog entries.
// Saved entries are snapshots, not references into the catalog.
type Profile struct {
	Courses       []CourseRecord    `json:"courses"`
	Activities    []ActivityRecord  `json:"activities"`
	Skills        map[string]int    `json:"skills"`
	Preferences   map[string]int    `json:"preferences"`
	Goals         Goals             `json:"goals"`
	SavedMajors   []MajorDefinition `json:"savedMajors"`
	SavedColleges []College         `json:"savedColleges"`
	SavedJobs     []Job             `json:"savedJobs"`
}

// PlanExport is the downloadable summary of a profile's saved plan
type PlanExport struct {
	SavedMajors   []MajorDefinition `json:"savedMajors"`
	SavedColleges []College         `json:"savedColleges"`
	SavedJobs     []Job             `json:"savedJobs"`
	Goals         Goals             `json:"goals"`
	GeneratedAt   string            `json:"generatedAt"`
}

// ChecklistItem is one entry of the dashboard progress checklist
type ChecklistItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}
