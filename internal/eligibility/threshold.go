package eligibility

import "github.com/noah-isme/aps-eligibility-api/internal/models"

// ResolveRequiredAPS returns the APS cutoff for course at university id: the
// override when the course has one, otherwise the course default.
//
// The value is only meaningful when the assignment rule offers the course at id;
// callers must check that with ResolveUniversities before displaying it.
func ResolveRequiredAPS(course models.Course, id models.UniversityID) int {
	if aps, ok := course.Override(id); ok {
		return aps
	}
	return course.DefaultAPS
}
