// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Rating and preference bounds accepted by the mutation methods
const (
	MinSkillRating  = 1
	MaxSkillRating  = 5
	MinPreference   = 0
	MaxPreference   = 100
	MinActivityHour = 0
)

// The methods below never fail: input they cannot use is ignored and the
// profile is left unchanged.

// SetCourse records a course, replacing the level if the course is already present
func (p *Profile) SetCourse(courseID string, level CourseLevel) {
	courseID = strings.TrimSpace(courseID)
	parsed, ok := ParseCourseLevel(string(level))
	if courseID == "" || !ok {
		return
	}

	for i := range p.Courses {
		if p.Courses[i].Course == courseID {
			p.Courses[i].Level = parsed
			return
		}
	}
	p.Courses = append(p.Courses, CourseRecord{Course: courseID, Level: parsed})
}

// RemoveCourse drops a recorded course
func (p *Profile) RemoveCourse(courseID string) {
	out := p.Courses[:0]
	for _, c := range p.Courses {
		if c.Course != courseID {
			out = append(out, c)
		}
	}
	p.Courses = out
}

// AddActivity appends an activity. Blank names and negative hours are ignored.
func (p *Profile) AddActivity(name string, hours int) {
	name = strings.TrimSpace(name)
	if name == "" || hours < MinActivityHour {
		return
	}
	p.Activities = append(p.Activities, ActivityRecord{Name: name, Hours: hours})
}

// RemoveActivity removes the activity at index
func (p *Profile) RemoveActivity(index int) {
	if index < 0 || index >= len(p.Activities) {
		return
	}
	p.Activities = append(p.Activities[:index], p.Activities[index+1:]...)
}

// RateSkill sets the self-rating for a skill
func (p *Profile) RateSkill(skill string, rating int) {
	skill = strings.TrimSpace(skill)
	if skill == "" || rating < MinSkillRating || rating > MaxSkillRating {
		return
	}
	if p.Skills == nil {
		p.Skills = make(map[string]int)
	}
	p.Skills[skill] = rating
}

// SetPreference sets the value of a preference axis
func (p *Profile) SetPreference(axis string, value int) {
	axis = strings.TrimSpace(axis)
	if axis == "" || value < MinPreference || value > MaxPreference {
		return
	}
	if p.Preferences == nil {
		p.Preferences = make(map[string]int)
	}
	p.Preferences[axis] = value
}

// SetGoals replaces the goals wholesale. Priorities are ranked by position;
// blank and repeated ids are dropped. Unknown city or schedule values are
// stored as unset.
func (p *Profile) SetGoals(priorityIDs []string, city CityPreference, schedule SchedulePreference) {
	goals := Goals{CityTown: city, Schedule: schedule}
	if !city.Valid() {
		goals.CityTown = CityUnset
	}
	if !schedule.Valid() {
		goals.Schedule = ScheduleUnset
	}

	seen := make(map[string]bool, len(priorityIDs))
	for _, id := range priorityIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		goals.Priorities = append(goals.Priorities, Priority{Priority: id})
	}
	rerank(goals.Priorities)

	p.Goals = goals
}

// MovePriority moves the priority at position from to position to and re-ranks
func (p *Profile) MovePriority(from, to int) {
	n := len(p.Goals.Priorities)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}

	moved := p.Goals.Priorities[from]
	rest := append(p.Goals.Priorities[:from:from], p.Goals.Priorities[from+1:]...)
	reordered := make([]Priority, 0, n)
	reordered = append(reordered, rest[:to]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, rest[to:]...)

	rerank(reordered)
	p.Goals.Priorities = reordered
}

func rerank(priorities []Priority) {
	for i := range priorities {
		priorities[i].Rank = i + 1
	}
}

// SaveMajor stores a snapshot of m unless a major with the same id is already saved
func (p *Profile) SaveMajor(m MajorDefinition) {
	if m.ID == "" {
		return
	}
	for _, saved := range p.SavedMajors {
		if saved.ID == m.ID {
			return
		}
	}
	p.SavedMajors = append(p.SavedMajors, m)
}

// SaveCollege stores a snapshot of c unless a college with the same id is already saved
func (p *Profile) SaveCollege(c College) {
	if c.ID == "" {
		return
	}
	for _, saved := range p.SavedColleges {
		if saved.ID == c.ID {
			return
		}
	}
	p.SavedColleges = append(p.SavedColleges, c)
}

// SaveJob stores a snapshot of j unless a job with the same id is already saved
func (p *Profile) SaveJob(j Job) {
	if j.ID == "" {
		return
	}
	for _, saved := range p.SavedJobs {
		if saved.ID == j.ID {
			return
		}
	}
	p.SavedJobs = append(p.SavedJobs, j)
}

// RemoveSavedMajor drops a saved major
func (p *Profile) RemoveSavedMajor(id string) {
	out := p.SavedMajors[:0]
	for _, m := range p.SavedMajors {
		if m.ID != id {
			out = append(out, m)
		}
	}
	p.SavedMajors = out
}

// RemoveSavedCollege drops a saved college
func (p *Profile) RemoveSavedCollege(id string) {
	out := p.SavedColleges[:0]
	for _, c := range p.SavedColleges {
		if c.ID != id {
			out = append(out, c)
		}
	}
	p.SavedColleges = out
}

// RemoveSavedJob drops a saved job
func (p *Profile) RemoveSavedJob(id string) {
	out := p.SavedJobs[:0]
	for _, j := range p.SavedJobs {
		if j.ID != id {
			out = append(out, j)
		}
	}
	p.SavedJobs = out
}

// Normalize repairs a profile decoded from storage: later entries for the same
// course replace earlier ones, and repeated saved ids keep only the first entry.
func (p *Profile) Normalize() {
	courses := p.Courses
	p.Courses = nil
	for _, c := range courses {
		p.SetCourse(c.Course, c.Level)
	}

	majors, colleges, jobs := p.SavedMajors, p.SavedColleges, p.SavedJobs
	p.SavedMajors, p.SavedColleges, p.SavedJobs = nil, nil, nil
	for _, m := range majors {
		p.SaveMajor(m)
	}
	for _, c := range colleges {
		p.SaveCollege(c)
	}
	for _, j := range jobs {
		p.SaveJob(j)
	}
	rerank(p.Goals.Priorities)
	if !p.Goals.CityTown.Valid() {
		p.Goals.CityTown = CityUnset
	}
	if !p.Goals.Schedule.Valid() {
		p.Goals.Schedule = ScheduleUnset
	}
}

// Clone returns a deep copy of the profile
func (p *Profile) Clone() *Profile {
	out := &Profile{
		Courses:     append([]CourseRecord(nil), p.Courses...),
		Activities:  append([]ActivityRecord(nil), p.Activities...),
		Skills:      cloneIntMap(p.Skills),
		Preferences: cloneIntMap(p.Preferences),
		Goals: Goals{
			Priorities: append([]Priority(nil), p.Goals.Priorities...),
			CityTown:   p.Goals.CityTown,
			Schedule:   p.Goals.Schedule,
		},
	}

	for _, m := range p.SavedMajors {
		m.RelatedCourses = append([]string(nil), m.RelatedCourses...)
		m.RelatedActivities = append([]string(nil), m.RelatedActivities...)
		m.EntryRoles = append([]string(nil), m.EntryRoles...)
		m.RequiredSkills = cloneIntMap(m.RequiredSkills)
		m.Preferences = cloneIntMap(m.Preferences)
		out.SavedMajors = append(out.SavedMajors, m)
	}
	for _, c := range p.SavedColleges {
		c.Programs = append([]string(nil), c.Programs...)
		out.SavedColleges = append(out.SavedColleges, c)
	}
	for _, j := range p.SavedJobs {
		j.Skills = append([]string(nil), j.Skills...)
		out.SavedJobs = append(out.SavedJobs, j)
	}

	return out
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
