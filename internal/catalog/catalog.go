// Package catalog holds the static majors, colleges and jobs the planner works with.
package catalog

import (
	"github.com/jonathan/career-planner/internal/types"
)

// Catalog is an immutable set of majors, colleges and jobs.
// Accessors return copies so callers cannot modify the catalog.
type Catalog struct {
	majors   []types.MajorDefinition
	colleges []types.College
	jobs     []types.Job

	majorIndex   map[string]int
	collegeIndex map[string]int
	jobIndex     map[string]int
}

// New builds a catalog from the given entries. Entries are copied; the first
// occurrence wins when ids repeat. Use Load for validated input from disk.
func New(majors []types.MajorDefinition, colleges []types.College, jobs []types.Job) *Catalog {
	c := &Catalog{
		majorIndex:   make(map[string]int, len(majors)),
		collegeIndex: make(map[string]int, len(colleges)),
		jobIndex:     make(map[string]int, len(jobs)),
	}

	for _, m := range majors {
		if _, dup := c.majorIndex[m.ID]; dup {
			continue
		}
		c.majorIndex[m.ID] = len(c.majors)
		c.majors = append(c.majors, CopyMajor(m))
	}
	for _, col := range colleges {
		if _, dup := c.collegeIndex[col.ID]; dup {
			continue
		}
		c.collegeIndex[col.ID] = len(c.colleges)
		c.colleges = append(c.colleges, CopyCollege(col))
	}
	for _, j := range jobs {
		if _, dup := c.jobIndex[j.ID]; dup {
			continue
		}
		c.jobIndex[j.ID] = len(c.jobs)
		c.jobs = append(c.jobs, CopyJob(j))
	}

	return c
}

// Majors returns all majors in catalog order
func (c *Catalog) Majors() []types.MajorDefinition {
	out := make([]types.MajorDefinition, len(c.majors))
	for i, m := range c.majors {
		out[i] = CopyMajor(m)
	}
	return out
}

// Colleges returns all colleges in catalog order
func (c *Catalog) Colleges() []types.College {
	out := make([]types.College, len(c.colleges))
	for i, col := range c.colleges {
		out[i] = CopyCollege(col)
	}
	return out
}

// Jobs returns all jobs in catalog order
func (c *Catalog) Jobs() []types.Job {
	out := make([]types.Job, len(c.jobs))
	for i, j := range c.jobs {
		out[i] = CopyJob(j)
	}
	return out
}

// Major looks up a major by id
func (c *Catalog) Major(id string) (types.MajorDefinition, bool) {
	i, ok := c.majorIndex[id]
	if !ok {
		return types.MajorDefinition{}, false
	}
	return CopyMajor(c.majors[i]), true
}

// College looks up a college by id
func (c *Catalog) College(id string) (types.College, bool) {
	i, ok := c.collegeIndex[id]
	if !ok {
		return types.College{}, false
	}
	return CopyCollege(c.colleges[i]), true
}

// Job looks up a job by id
func (c *Catalog) Job(id string) (types.Job, bool) {
	i, ok := c.jobIndex[id]
	if !ok {
		return types.Job{}, false
	}
	return CopyJob(c.jobs[i]), true
}

// CopyMajor returns a deep copy of m
func CopyMajor(m types.MajorDefinition) types.MajorDefinition {
	m.RelatedCourses = cloneStrings(m.RelatedCourses)
	m.RelatedActivities = cloneStrings(m.RelatedActivities)
	m.EntryRoles = cloneStrings(m.EntryRoles)
	m.RequiredSkills = cloneInts(m.RequiredSkills)
	m.Preferences = cloneInts(m.Preferences)
	return m
}

// CopyCollege returns a deep copy of c
func CopyCollege(c types.College) types.College {
	c.Programs = cloneStrings(c.Programs)
	return c
}

// CopyJob returns a deep copy of j
func CopyJob(j types.Job) types.Job {
	j.Skills = cloneStrings(j.Skills)
	return j
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

func cloneInts(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
