package rendering

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	"github.com/jonathan/career-planner/internal/types"
)

//go:embed templates/plan.html.tmpl
var planTemplate string

// planData is the data passed to the plan template
type planData struct {
	Majors     []types.MajorDefinition
	Colleges   []types.College
	Jobs       []types.Job
	Priorities []types.Priority
	Statement  string
}

// RenderPlanHTML renders the printable "Career Plan" page for a profile.
// Sections with nothing saved are left out.
func RenderPlanHTML(profile *types.Profile) (string, error) {
	tmpl, err := parsePlanTemplate(planTemplate)
	if err != nil {
		return "", err
	}

	if profile == nil {
		profile = &types.Profile{}
	}
	data := planData{
		Majors:     profile.SavedMajors,
		Colleges:   profile.SavedColleges,
		Jobs:       profile.SavedJobs,
		Priorities: profile.Goals.Priorities,
		Statement:  ValuesStatement(profile.Goals),
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute plan template",
			Cause:   err,
		}
	}
	return out.String(), nil
}

func parsePlanTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("plan").Funcs(template.FuncMap{
		"priorityLabel": PriorityLabel,
		"joinDetails":   joinDetails,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse plan template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// joinDetails joins the non-empty parts with a bullet separator
func joinDetails(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " • ")
}
