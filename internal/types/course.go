// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// CourseLevel is the difficulty level a course was taken at
type CourseLevel string

// Supported course levels
const (
	LevelBasic  CourseLevel = "basic"
	LevelHonors CourseLevel = "honors"
	LevelAPIB   CourseLevel = "ap_ib"
)

// ParseCourseLevel converts user input into a CourseLevel.
// Matching is case-insensitive and accepts "ap-ib" as an alias of "ap_ib".
// The second return value is false for unknown levels.
func ParseCourseLevel(s string) (CourseLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return LevelBasic, true
	case "honors":
		return LevelHonors, true
	case "ap_ib", "ap-ib", "apib":
		return LevelAPIB, true
	default:
		return "", false
	}
}

// Multiplier returns the weight applied to a matching course at this level.
// Unknown levels weigh the same as basic.
func (l CourseLevel) Multiplier() float64 {
	switch l {
	case LevelAPIB:
		return 1.5
	case LevelHonors:
		return 1.2
	default:
		return 1.0
	}
}

// CourseRecord is a course the user has taken
type CourseRecord struct {
	Course string      `json:"course"`
	Level  CourseLevel `json:"level"`
}

// ActivityRecord is an extracurricular activity with weekly hours
type ActivityRecord struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}
