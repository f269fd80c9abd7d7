// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CityPreference is where the user would rather live
type CityPreference string

// City preference values. The zero value means unset.
const (
	CityUnset  CityPreference = ""
	CityUrban  CityPreference = "city"
	CityTown   CityPreference = "town"
	CityEither CityPreference = "either"
)

// Valid reports whether c is a known value (including unset)
func (c CityPreference) Valid() bool {
	switch c {
	case CityUnset, CityUrban, CityTown, CityEither:
		return true
	}
	return false
}

// SchedulePreference is the kind of work schedule the user prefers
type SchedulePreference string

// Schedule preference values. The zero value means unset.
const (
	ScheduleUnset       SchedulePreference = ""
	ScheduleTraditional SchedulePreference = "traditional"
	ScheduleFlexible    SchedulePreference = "flexible"
	ScheduleEither      SchedulePreference = "either"
)

// Valid reports whether s is a known value (including unset)
func (s SchedulePreference) Valid() bool {
	switch s {
	case ScheduleUnset, ScheduleTraditional, ScheduleFlexible, ScheduleEither:
		return true
	}
	return false
}

// Priority is one ranked life/career priority. Rank is 1-based and equals
// the position of the entry in Goals.Priorities.
type Priority struct {
	Priority string `json:"priority"`
	Rank     int    `json:"rank"`
}

// Goals holds the user's ranked priorities and lifestyle preferences
type Goals struct {
	Priorities []Priority         `json:"priorities,omitempty"`
	CityTown   CityPreference     `json:"cityTown,omitempty"`
	Schedule   SchedulePreference `json:"schedule,omitempty"`
}
