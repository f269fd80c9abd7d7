// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxReasonWidth keeps a reason on a single boxed line
	maxReasonWidth = 48
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// PrintMatchResults outputs ranked majors with their scores and reasons.
// limit <= 0 prints every result.
func (p *Printer) PrintMatchResults(results *types.MatchResults, limit int) {
	if results == nil || len(results.Ranked) == 0 {
		p.printBox("MAJOR MATCHES", "No majors to rank.")
		return
	}

	count := len(results.Ranked)
	if limit > 0 && limit < count {
		count = limit
	}

	var sb strings.Builder
	for i := 0; i < count; i++ {
		m := results.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s  (%.0f%% match)\n", i+1, m.Major.Name, m.Score))
		if m.Major.SalaryRange != "" || m.Major.JobGrowth != "" {
			sb.WriteString(fmt.Sprintf("    %s • %s\n", m.Major.SalaryRange, m.Major.JobGrowth))
		}
		for _, reason := range m.Reasons {
			sb.WriteString(fmt.Sprintf("    ✓ %s\n", truncate(reason, maxReasonWidth)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results.Ranked) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more majors", len(results.Ranked)-count))
	}

	p.printBox("MAJOR MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs a summary of everything the user has entered
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Courses (%d):\n", len(profile.Courses)))
	for _, c := range profile.Courses {
		sb.WriteString(fmt.Sprintf("  • %s [%s]\n", c.Course, c.Level))
	}

	sb.WriteString(fmt.Sprintf("Activities (%d):\n", len(profile.Activities)))
	for i, a := range profile.Activities {
		sb.WriteString(fmt.Sprintf("  %d. %s (%d hrs/week)\n", i, a.Name, a.Hours))
	}

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		for _, skill := range sortedKeys(profile.Skills) {
			sb.WriteString(fmt.Sprintf("  • %-20s %s\n", skill, stars(profile.Skills[skill])))
		}
	}

	if len(profile.Preferences) > 0 {
		sb.WriteString("Preferences:\n")
		for _, axis := range sortedKeys(profile.Preferences) {
			sb.WriteString(fmt.Sprintf("  • %-20s %d\n", axis, profile.Preferences[axis]))
		}
	}

	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDashboard outputs the saved plan, the values statement and the
// progress checklist.
func (p *Printer) PrintDashboard(profile *types.Profile, statement string, checklist []types.ChecklistItem) {
	if profile == nil {
		profile = &types.Profile{}
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Saved majors (%d):\n", len(profile.SavedMajors)))
	for _, m := range profile.SavedMajors {
		sb.WriteString(fmt.Sprintf("  • %s [%s]\n", m.Name, m.ID))
	}
	sb.WriteString(fmt.Sprintf("Saved colleges (%d):\n", len(profile.SavedColleges)))
	for _, c := range profile.SavedColleges {
		sb.WriteString(fmt.Sprintf("  • %s, %s [%s]\n", c.Name, c.Location, c.ID))
	}
	sb.WriteString(fmt.Sprintf("Saved jobs (%d):\n", len(profile.SavedJobs)))
	for _, j := range profile.SavedJobs {
		sb.WriteString(fmt.Sprintf("  • %s at %s [%s]\n", j.Title, j.Company, j.ID))
	}

	if len(profile.Goals.Priorities) > 0 {
		sb.WriteString("\nPriorities:\n")
		for _, pr := range profile.Goals.Priorities {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", pr.Rank, pr.Priority))
		}
	}
	if statement != "" {
		sb.WriteString("\n" + statement + "\n")
	}

	if len(checklist) > 0 {
		sb.WriteString("\nProgress:\n")
		for _, item := range checklist {
			mark := " "
			if item.Completed {
				mark = "x"
			}
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", mark, item.Label))
		}
	}

	p.printBox("DASHBOARD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMajors outputs the major catalog
func (p *Printer) PrintMajors(majors []types.MajorDefinition) {
	var sb strings.Builder
	for _, m := range majors {
		sb.WriteString(fmt.Sprintf("%-22s %s\n", m.ID, m.Name))
	}
	p.printBox(fmt.Sprintf("MAJORS (%d)", len(majors)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintColleges outputs the college catalog
func (p *Printer) PrintColleges(colleges []types.College) {
	var sb strings.Builder
	for _, c := range colleges {
		sb.WriteString(fmt.Sprintf("%-22s %s\n", c.ID, c.Name))
		sb.WriteString(fmt.Sprintf("%-22s %s • %s • admit %s\n", "", c.Location, c.Tuition, c.AdmitRate))
	}
	p.printBox(fmt.Sprintf("COLLEGES (%d)", len(colleges)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs the job catalog
func (p *Printer) PrintJobs(jobs []types.Job) {
	var sb strings.Builder
	for _, j := range jobs {
		sb.WriteString(fmt.Sprintf("%-22s %s\n", j.ID, j.Title))
		sb.WriteString(fmt.Sprintf("%-22s %s • %s • %s\n", "", j.Company, j.Schedule, j.Pay))
	}
	p.printBox(fmt.Sprintf("JOBS (%d)", len(jobs)), strings.TrimSuffix(sb.String(), "\n"))
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
