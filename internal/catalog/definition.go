package catalog

import "github.com/noah-isme/aps-eligibility-api/internal/models"

// CourseDefinition is the declarative authoring form of a course. University
// references are free text (identifier or abbreviation) and are resolved through
// the Registry when the Catalog is built.
type CourseDefinition struct {
	Name          string
	Faculty       string
	DurationYears int
	DurationLabel string
	DefaultAPS    int
	Overrides     map[string]int
	Rule          RuleDefinition
	Subjects      []models.SubjectRequirement
	Description   string
	Careers       []string
}

// RuleDefinition is the authoring form of an assignment rule.
type RuleDefinition struct {
	Kind         models.RuleKind
	Universities []string
}

func all() RuleDefinition {
	return RuleDefinition{Kind: models.RuleAll}
}

func exclude(refs ...string) RuleDefinition {
	return RuleDefinition{Kind: models.RuleExclude, Universities: refs}
}

func includeOnly(refs ...string) RuleDefinition {
	return RuleDefinition{Kind: models.RuleIncludeOnly, Universities: refs}
}

func required(name string, level int) models.SubjectRequirement {
	return models.SubjectRequirement{Name: name, MinLevel: level, Required: true}
}

func optional(name string, level int) models.SubjectRequirement {
	return models.SubjectRequirement{Name: name, MinLevel: level}
}
