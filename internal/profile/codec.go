// Package profile owns the user's planner profile: decoding it from its
// persisted form and applying mutations through a Session.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/career-planner/internal/schemas"
	"github.com/jonathan/career-planner/internal/types"
)

// StorageKey is the key the profile document is persisted under
const StorageKey = "careerPathPlanner"

// FieldError reports a persisted field that could not be decoded and was
// left at its default.
type FieldError struct {
	Field string
	Cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Cause)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}

// Encode serializes a profile into its persisted document form.
func Encode(p *types.Profile) ([]byte, error) {
	if p == nil {
		p = &types.Profile{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return data, nil
}

// Decode rebuilds a profile from a persisted document.
//
// Every known top-level field that is present and decodes cleanly replaces the
// default; anything else keeps the default. A document that is not a JSON
// object yields the empty profile. The returned profile is never nil; the
// error, when set, describes what was skipped and is meant to be logged, not
// acted on.
func Decode(doc []byte) (*types.Profile, error) {
	p := &types.Profile{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return p, fmt.Errorf("decoding profile document: %w", err)
	}

	errs := []error{
		decodeField(fields, "courses", &p.Courses),
		decodeField(fields, "activities", &p.Activities),
		decodeField(fields, "skills", &p.Skills),
		decodeField(fields, "preferences", &p.Preferences),
		decodeField(fields, "goals", &p.Goals),
		decodeField(fields, "savedMajors", &p.SavedMajors),
		decodeField(fields, "savedColleges", &p.SavedColleges),
		decodeField(fields, "savedJobs", &p.SavedJobs),
	}

	if err := schemas.ValidateProfile(doc); err != nil {
		errs = append(errs, err)
	}

	p.Normalize()
	return p, errors.Join(errs...)
}

func decodeField[T any](fields map[string]json.RawMessage, name string, dst *T) error {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return &FieldError{Field: name, Cause: err}
	}
	*dst = v
	return nil
}
