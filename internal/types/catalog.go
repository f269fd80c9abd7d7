// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MajorDefinition is a catalog entry for an academic major with the
// metadata used to score it against a profile
type MajorDefinition struct {
	ID                string         `json:"id" validate:"required"`
	Name              string         `json:"name" validate:"required"`
	RelatedCourses    []string       `json:"relatedCourses" validate:"dive,required"`
	RequiredSkills    map[string]int `json:"requiredSkills" validate:"dive,keys,required,endkeys,min=1,max=5"`
	Preferences       map[string]int `json:"preferences" validate:"dive,keys,required,endkeys,min=0,max=100"`
	RelatedActivities []string       `json:"relatedActivities" validate:"dive,required"`
	SalaryRange       string         `json:"salaryRange"`
	JobGrowth         string         `json:"jobGrowth"`
	EntryRoles        []string       `json:"entryRoles"`
}

// College is a static college listing
type College struct {
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Location  string   `json:"location"`
	Tuition   string   `json:"tuition"`
	Size      string   `json:"size"`
	AdmitRate string   `json:"admitRate"`
	Programs  []string `json:"programs"`
	Website   string   `json:"website" validate:"omitempty,url"`
}

// Job is a static job or internship listing
type Job struct {
	ID       string   `json:"id" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Company  string   `json:"company"`
	Schedule string   `json:"schedule"`
	Location string   `json:"location"`
	Pay      string   `json:"pay"`
	Skills   []string `json:"skills"`
	Link     string   `json:"link" validate:"omitempty,url"`
}

// CatalogFile is the on-disk shape of a catalog fixture
type CatalogFile struct {
	Majors   []MajorDefinition `json:"majors" validate:"required,min=1,dive"`
	Colleges []College         `json:"colleges" validate:"dive"`
	Jobs     []Job             `json:"jobs" validate:"dive"`
}
