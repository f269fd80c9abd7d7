// Package schemas embeds the JSON Schema documents describing the planner's
// persisted and exported artifacts.
package schemas

import _ "embed"

// Catalog validates catalog fixture files
//
//go:embed catalog.schema.json
var Catalog string

// Profile validates persisted profile documents
//
//go:embed profile.schema.json
var Profile string

// PlanExport validates exported plan documents
//
//go:embed plan_export.schema.json
var PlanExport string
