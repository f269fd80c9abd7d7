// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResults is a ranked collection of scored majors
type MatchResults struct {
	Ranked []ScoredMajor `json:"ranked"`
}

// ScoredMajor is a major with its fit score and the top reasons behind it
type ScoredMajor struct {
	Major MajorDefinition `json:"major"`
	// Score is clamped to [0, 100]
	Score float64 `json:"score"`
	// Reasons holds at most three explanations, in scoring order
	Reasons []string `json:"reasons"`
}
