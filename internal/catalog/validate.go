package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/noah-isme/aps-eligibility-api/internal/models"
)

// Issue describes one authoring mistake in the catalog definitions.
type Issue struct {
	Course  string `json:"course"`
	Faculty string `json:"faculty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate reports every authoring mistake in defs without building a catalog. It
// is meant for offline checks; New tolerates all of these by dropping the bad
// reference.
func Validate(registry *Registry, defs []CourseDefinition) []Issue {
	if registry == nil {
		registry = NewRegistry(nil)
	}
	var issues []Issue
	seen := make(map[string]struct{}, len(defs))

	for _, def := range defs {
		add := func(field, format string, args ...interface{}) {
			issues = append(issues, Issue{
				Course:  def.Name,
				Faculty: def.Faculty,
				Field:   field,
				Message: fmt.Sprintf(format, args...),
			})
		}

		if strings.TrimSpace(def.Name) == "" {
			add("name", "course name is empty")
		}
		key := nameKey(def.Faculty) + "|" + nameKey(def.Name)
		if _, dup := seen[key]; dup {
			add("name", "duplicate course within faculty %q", def.Faculty)
		}
		seen[key] = struct{}{}

		if def.DefaultAPS < 0 {
			add("defaultAps", "default APS %d is negative", def.DefaultAPS)
		}

		refs := make([]string, 0, len(def.Overrides))
		for ref := range def.Overrides {
			refs = append(refs, ref)
		}
		sort.Strings(refs)
		for _, ref := range refs {
			if _, ok := registry.Resolve(ref); !ok {
				add("universityOverrides", "unknown university %q", ref)
			}
			if aps := def.Overrides[ref]; aps < 0 {
				add("universityOverrides", "override for %q is negative (%d)", ref, aps)
			}
		}

		switch def.Rule.Kind {
		case models.RuleAll, "":
			if len(def.Rule.Universities) > 0 {
				add("assignmentRule", "rule %q does not take universities", models.RuleAll)
			}
		case models.RuleExclude, models.RuleIncludeOnly:
			for _, ref := range def.Rule.Universities {
				if _, ok := registry.Resolve(ref); !ok {
					add("assignmentRule", "unknown university %q", ref)
				}
			}
		default:
			add("assignmentRule", "unknown rule kind %q", def.Rule.Kind)
		}

		for _, subject := range def.Subjects {
			if strings.TrimSpace(subject.Name) == "" {
				add("subjects", "subject name is empty")
				continue
			}
			if subject.MinLevel < 1 || subject.MinLevel > MaxLevel {
				add("subjects", "%s level %d outside 1-%d", subject.Name, subject.MinLevel, MaxLevel)
			}
		}
	}
	return issues
}

// MaxLevel is the highest NSC achievement level.
const MaxLevel = 7
