package catalog

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents catalog content that fails schema, field or uniqueness checks
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
