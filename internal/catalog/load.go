package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/career-planner/internal/schemas"
	"github.com/jonathan/career-planner/internal/types"
)

// Load reads a catalog fixture from a JSON file
func Load(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(content)
}

// Parse decodes and validates a catalog document. Every major needs an id and a
// name, skill levels must be 1-5, preference targets 0-100, and ids must be
// unique within each list.
func Parse(content []byte) (*Catalog, error) {
	var file types.CatalogFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := schemas.ValidateCatalog(content); err != nil {
		return nil, &ValidationError{Message: "catalog does not match schema", Cause: err}
	}

	validate := validator.New()
	if err := validate.Struct(&file); err != nil {
		return nil, &ValidationError{Message: "invalid catalog entry", Cause: err}
	}

	if err := checkUnique(file); err != nil {
		return nil, err
	}

	return New(file.Majors, file.Colleges, file.Jobs), nil
}

func checkUnique(file types.CatalogFile) error {
	seen := make(map[string]bool, len(file.Majors))
	for _, m := range file.Majors {
		if seen[m.ID] {
			return &ValidationError{Message: fmt.Sprintf("duplicate major id %q", m.ID)}
		}
		seen[m.ID] = true
	}

	seen = make(map[string]bool, len(file.Colleges))
	for _, c := range file.Colleges {
		if seen[c.ID] {
			return &ValidationError{Message: fmt.Sprintf("duplicate college id %q", c.ID)}
		}
		seen[c.ID] = true
	}

	seen = make(map[string]bool, len(file.Jobs))
	for _, j := range file.Jobs {
		if seen[j.ID] {
			return &ValidationError{Message: fmt.Sprintf("duplicate job id %q", j.ID)}
		}
		seen[j.ID] = true
	}

	return nil
}
