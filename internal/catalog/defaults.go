package catalog

import "github.com/jonathan/career-planner/internal/types"

// Default returns the built-in catalog: eight majors, five colleges and five jobs.
func Default() *Catalog {
	return New(defaultMajors(), defaultColleges(), defaultJobs())
}

func defaultMajors() []types.MajorDefinition {
	return []types.MajorDefinition{
		{
			ID:                "computer-science",
			Name:              "Computer Science",
			RelatedCourses:    []string{"computer-science", "mathematics", "calculus", "physics"},
			RequiredSkills:    map[string]int{"problem-solving": 4, "mathematics": 4, "creativity": 3},
			Preferences:       map[string]int{"theory-applied": 60, "people-technical": 80, "structured-flexible": 40},
			RelatedActivities: []string{"programming", "robotics", "gaming", "technology"},
			SalaryRange:       "$70,000 - $120,000",
			JobGrowth:         "+22%",
			EntryRoles:        []string{"Software Developer", "Web Developer", "Data Analyst"},
		},
		{
			ID:                "engineering",
			Name:              "Engineering",
			RelatedCourses:    []string{"mathematics", "physics", "chemistry", "calculus"},
			RequiredSkills:    map[string]int{"problem-solving": 5, "mathematics": 5, "communication": 3},
			Preferences:       map[string]int{"theory-applied": 70, "people-technical": 90, "structured-flexible": 30},
			RelatedActivities: []string{"robotics", "building", "science", "math"},
			SalaryRange:       "$65,000 - $110,000",
			JobGrowth:         "+8%",
			EntryRoles:        []string{"Engineer", "Project Manager", "Consultant"},
		},
		{
			ID:                "business",
			Name:              "Business Administration",
			RelatedCourses:    []string{"mathematics", "english", "history", "government"},
			RequiredSkills:    map[string]int{"communication": 4, "leadership": 4, "problem-solving": 3},
			Preferences:       map[string]int{"theory-applied": 40, "people-technical": 30, "structured-flexible": 50},
			RelatedActivities: []string{"leadership", "debate", "sports", "volunteer"},
			SalaryRange:       "$50,000 - $90,000",
			JobGrowth:         "+5%",
			EntryRoles:        []string{"Manager", "Analyst", "Consultant"},
		},
		{
			ID:                "psychology",
			Name:              "Psychology",
			RelatedCourses:    []string{"psychology", "biology", "english", "mathematics"},
			RequiredSkills:    map[string]int{"communication": 5, "problem-solving": 4, "creativity": 3},
			Preferences:       map[string]int{"theory-applied": 50, "people-technical": 20, "structured-flexible": 60},
			RelatedActivities: []string{"volunteer", "counseling", "helping", "research"},
			SalaryRange:       "$40,000 - $80,000",
			JobGrowth:         "+8%",
			EntryRoles:        []string{"Counselor", "Researcher", "Social Worker"},
		},
		{
			ID:                "medicine",
			Name:              "Pre-Medicine",
			RelatedCourses:    []string{"biology", "chemistry", "physics", "mathematics"},
			RequiredSkills:    map[string]int{"problem-solving": 5, "communication": 4, "mathematics": 4},
			Preferences:       map[string]int{"theory-applied": 60, "people-technical": 30, "structured-flexible": 20},
			RelatedActivities: []string{"volunteer", "healthcare", "science", "helping"},
			SalaryRange:       "$200,000 - $400,000",
			JobGrowth:         "+4%",
			EntryRoles:        []string{"Doctor", "Researcher", "Specialist"},
		},
		{
			ID:                "education",
			Name:              "Education",
			RelatedCourses:    []string{"english", "history", "mathematics", "psychology"},
			RequiredSkills:    map[string]int{"communication": 5, "leadership": 4, "creativity": 4},
			Preferences:       map[string]int{"theory-applied": 30, "people-technical": 10, "structured-flexible": 40},
			RelatedActivities: []string{"teaching", "volunteer", "tutoring", "mentoring"},
			SalaryRange:       "$40,000 - $70,000",
			JobGrowth:         "+4%",
			EntryRoles:        []string{"Teacher", "Administrator", "Curriculum Developer"},
		},
		{
			ID:                "arts",
			Name:              "Fine Arts",
			RelatedCourses:    []string{"art", "music", "english", "history"},
			RequiredSkills:    map[string]int{"creativity": 5, "communication": 3, "problem-solving": 3},
			Preferences:       map[string]int{"theory-applied": 20, "people-technical": 40, "structured-flexible": 80},
			RelatedActivities: []string{"art", "music", "creative", "performance"},
			SalaryRange:       "$30,000 - $60,000",
			JobGrowth:         "+2%",
			EntryRoles:        []string{"Artist", "Designer", "Performer"},
		},
		{
			ID:                "communications",
			Name:              "Communications",
			RelatedCourses:    []string{"english", "history", "government", "psychology"},
			RequiredSkills:    map[string]int{"communication": 5, "creativity": 4, "leadership": 3},
			Preferences:       map[string]int{"theory-applied": 30, "people-technical": 20, "structured-flexible": 60},
			RelatedActivities: []string{"writing", "media", "journalism", "public-speaking"},
			SalaryRange:       "$35,000 - $70,000",
			JobGrowth:         "+4%",
			EntryRoles:        []string{"Journalist", "PR Specialist", "Content Creator"},
		},
	}
}

func defaultColleges() []types.College {
	return []types.College{
		{
			ID:        "stanford",
			Name:      "Stanford University",
			Location:  "Stanford, CA",
			Tuition:   "$56,169/year",
			Size:      "Large (17,000+)",
			AdmitRate: "4%",
			Programs:  []string{"Computer Science", "Engineering", "Business", "Medicine"},
			Website:   "https://stanford.edu",
		},
		{
			ID:        "mit",
			Name:      "MIT",
			Location:  "Cambridge, MA",
			Tuition:   "$53,790/year",
			Size:      "Medium (11,000+)",
			AdmitRate: "7%",
			Programs:  []string{"Engineering", "Computer Science", "Mathematics", "Physics"},
			Website:   "https://mit.edu",
		},
		{
			ID:        "uc-berkeley",
			Name:      "UC Berkeley",
			Location:  "Berkeley, CA",
			Tuition:   "$14,226/year (in-state)",
			Size:      "Large (45,000+)",
			AdmitRate: "17%",
			Programs:  []string{"Engineering", "Business", "Psychology", "Communications"},
			Website:   "https://berkeley.edu",
		},
		{
			ID:        "harvard",
			Name:      "Harvard University",
			Location:  "Cambridge, MA",
			Tuition:   "$54,269/year",
			Size:      "Large (23,000+)",
			AdmitRate: "5%",
			Programs:  []string{"Medicine", "Business", "Psychology", "Education"},
			Website:   "https://harvard.edu",
		},
		{
			ID:        "state-university",
			Name:      "State University",
			Location:  "Various Locations",
			Tuition:   "$8,000-$15,000/year",
			Size:      "Large (20,000+)",
			AdmitRate: "60-80%",
			Programs:  []string{"All Majors Available"},
			Website:   "https://stateuniversity.edu",
		},
	}
}

func defaultJobs() []types.Job {
	return []types.Job{
		{
			ID:       "software-intern",
			Title:    "Software Development Intern",
			Company:  "Tech Corp",
			Schedule: "Summer",
			Location: "Remote",
			Pay:      "$20-25/hour",
			Skills:   []string{"Programming", "Problem Solving", "Communication"},
			Link:     "https://example.com/apply",
		},
		{
			ID:       "research-assistant",
			Title:    "Research Assistant",
			Company:  "University Lab",
			Schedule: "Part-time",
			Location: "Local",
			Pay:      "$15-18/hour",
			Skills:   []string{"Research", "Analysis", "Writing"},
			Link:     "https://example.com/apply",
		},
		{
			ID:       "retail-sales",
			Title:    "Retail Sales Associate",
			Company:  "Local Store",
			Schedule: "Weekends",
			Location: "Local",
			Pay:      "$12-15/hour",
			Skills:   []string{"Communication", "Customer Service", "Sales"},
			Link:     "https://example.com/apply",
		},
		{
			ID:       "tutor",
			Title:    "Tutor",
			Company:  "Learning Center",
			Schedule: "After School",
			Location: "Local",
			Pay:      "$15-20/hour",
			Skills:   []string{"Teaching", "Communication", "Subject Knowledge"},
			Link:     "https://example.com/apply",
		},
		{
			ID:       "camp-counselor",
			Title:    "Summer Camp Counselor",
			Company:  "Youth Camp",
			Schedule: "Summer",
			Location: "Local",
			Pay:      "$10-15/hour",
			Skills:   []string{"Leadership", "Communication", "Childcare"},
			Link:     "https://example.com/apply",
		},
	}
}
