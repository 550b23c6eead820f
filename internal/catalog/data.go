package catalog

import "github.com/noah-isme/aps-eligibility-api/internal/models"

// Static catalog content. Requirements follow the published undergraduate
// prospectuses and are reviewed before each application cycle.

const (
	subjectEnglish         = "English"
	subjectMathematics     = "Mathematics"
	subjectMathLiteracy    = "Mathematical Literacy"
	subjectPhysical        = "Physical Sciences"
	subjectLife            = "Life Sciences"
	subjectAccounting      = "Accounting"
	subjectGeography       = "Geography"
	subjectHistory         = "History"
	subjectBusiness        = "Business Studies"
	subjectEconomics       = "Economics"
	subjectAgriculture     = "Agricultural Sciences"
	subjectVisualArts      = "Visual Arts"
	subjectEGD             = "Engineering Graphics and Design"
	subjectIT              = "Information Technology"
	subjectConsumerStudies = "Consumer Studies"
)

// Faculty labels.
const (
	facultyHealth      = "Health Sciences"
	facultyLaw         = "Law"
	facultyScience     = "Science"
	facultyEngineering = "Engineering and the Built Environment"
	facultyCommerce    = "Commerce"
	facultyHumanities  = "Humanities"
	facultyEducation   = "Education"
	facultyAgriculture = "Agriculture"
	facultyArts        = "Arts and Design"
	facultyIT          = "Information and Communication Technology"
)

var technologyUniversities = []string{"TUT", "CPUT", "DUT", "CUT", "VUT", "MUT"}

// DefaultUniversities returns the South African public universities.
func DefaultUniversities() []models.University {
	return []models.University{
		{ID: "uct", Abbreviation: "UCT", Name: "University of Cape Town", Province: "Western Cape", Type: models.UniversityTypeTraditional},
		{ID: "wits", Abbreviation: "Wits", Name: "University of the Witwatersrand", Province: "Gauteng", Type: models.UniversityTypeTraditional},
		{ID: "su", Abbreviation: "SU", Name: "Stellenbosch University", Province: "Western Cape", Type: models.UniversityTypeTraditional},
		{ID: "up", Abbreviation: "UP", Name: "University of Pretoria", Province: "Gauteng", Type: models.UniversityTypeTraditional},
		{ID: "ukzn", Abbreviation: "UKZN", Name: "University of KwaZulu-Natal", Province: "KwaZulu-Natal", Type: models.UniversityTypeTraditional},
		{ID: "uj", Abbreviation: "UJ", Name: "University of Johannesburg", Province: "Gauteng", Type: models.UniversityTypeComprehensive},
		{ID: "ru", Abbreviation: "RU", Name: "Rhodes University", Province: "Eastern Cape", Type: models.UniversityTypeTraditional},
		{ID: "nwu", Abbreviation: "NWU", Name: "North-West University", Province: "North West", Type: models.UniversityTypeTraditional},
		{ID: "ufs", Abbreviation: "UFS", Name: "University of the Free State", Province: "Free State", Type: models.UniversityTypeTraditional},
		{ID: "uwc", Abbreviation: "UWC", Name: "University of the Western Cape", Province: "Western Cape", Type: models.UniversityTypeTraditional},
		{ID: "ufh", Abbreviation: "UFH", Name: "University of Fort Hare", Province: "Eastern Cape", Type: models.UniversityTypeTraditional},
		{ID: "unisa", Abbreviation: "UNISA", Name: "University of South Africa", Province: "Gauteng", Type: models.UniversityTypeComprehensive},
		{ID: "ul", Abbreviation: "UL", Name: "University of Limpopo", Province: "Limpopo", Type: models.UniversityTypeTraditional},
		{ID: "univen", Abbreviation: "UNIVEN", Name: "University of Venda", Province: "Limpopo", Type: models.UniversityTypeComprehensive},
		{ID: "unizulu", Abbreviation: "UNIZULU", Name: "University of Zululand", Province: "KwaZulu-Natal", Type: models.UniversityTypeComprehensive},
		{ID: "wsu", Abbreviation: "WSU", Name: "Walter Sisulu University", Province: "Eastern Cape", Type: models.UniversityTypeComprehensive},
		{ID: "nmu", Abbreviation: "NMU", Name: "Nelson Mandela University", Province: "Eastern Cape", Type: models.UniversityTypeComprehensive},
		{ID: "smu", Abbreviation: "SMU", Name: "Sefako Makgatho Health Sciences University", Province: "Gauteng", Type: models.UniversityTypeTraditional},
		{ID: "ump", Abbreviation: "UMP", Name: "University of Mpumalanga", Province: "Mpumalanga", Type: models.UniversityTypeComprehensive},
		{ID: "spu", Abbreviation: "SPU", Name: "Sol Plaatje University", Province: "Northern Cape", Type: models.UniversityTypeComprehensive},
		{ID: "tut", Abbreviation: "TUT", Name: "Tshwane University of Technology", Province: "Gauteng", Type: models.UniversityTypeTechnology},
		{ID: "cput", Abbreviation: "CPUT", Name: "Cape Peninsula University of Technology", Province: "Western Cape", Type: models.UniversityTypeTechnology},
		{ID: "dut", Abbreviation: "DUT", Name: "Durban University of Technology", Province: "KwaZulu-Natal", Type: models.UniversityTypeTechnology},
		{ID: "cut", Abbreviation: "CUT", Name: "Central University of Technology", Province: "Free State", Type: models.UniversityTypeTechnology},
		{ID: "vut", Abbreviation: "VUT", Name: "Vaal University of Technology", Province: "Gauteng", Type: models.UniversityTypeTechnology},
		{ID: "mut", Abbreviation: "MUT", Name: "Mangosuthu University of Technology", Province: "KwaZulu-Natal", Type: models.UniversityTypeTechnology},
	}
}

// DefaultCourses returns the bundled course definitions.
func DefaultCourses() []CourseDefinition {
	nonTechnology := union([]string{"SMU"}, technologyUniversities...)

	return []CourseDefinition{
		// Health Sciences
		{
			Name: "Bachelor of Medicine and Bachelor of Surgery (MBChB)", Faculty: facultyHealth, DurationYears: 6,
			DefaultAPS: 40,
			Overrides:  map[string]int{"UCT": 44, "Wits": 44, "SU": 42, "UP": 42, "WSU": 38, "UL": 36},
			Rule:       includeOnly("UCT", "Wits", "SU", "UP", "UKZN", "UFS", "WSU", "SMU", "UL"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 5), required(subjectMathematics, 6), required(subjectPhysical, 6), optional(subjectLife, 6),
			},
			Description: "Six year professional degree leading to registration as a medical practitioner.",
			Careers:     []string{"Medical doctor", "Surgeon", "Researcher"},
		},
		{
			Name: "Bachelor of Pharmacy", Faculty: facultyHealth, DurationYears: 4,
			DefaultAPS: 34,
			Overrides:  map[string]int{"UKZN": 35, "NWU": 34, "Wits": 38},
			Rule:       includeOnly("Wits", "UKZN", "NWU", "RU", "NMU", "UWC", "SMU", "UL"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 5), required(subjectPhysical, 5), optional(subjectLife, 5),
			},
			Careers: []string{"Pharmacist", "Pharmaceutical researcher"},
		},
		{
			Name: "Bachelor of Nursing", Faculty: facultyHealth, DurationYears: 4,
			DefaultAPS: 30,
			Overrides:  map[string]int{"UCT": 34, "UP": 32, "UNIZULU": 28, "CPUT": 30, "DUT": 30},
			Rule:       exclude("UNISA", "SU", "RU", "SPU", "VUT", "MUT", "CUT", "TUT"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectLife, 4), optional(subjectMathematics, 3), optional(subjectPhysical, 3),
			},
			Careers: []string{"Registered nurse", "Midwife"},
		},
		{
			Name: "BSc Physiotherapy", Faculty: facultyHealth, DurationYears: 4,
			DefaultAPS: 36,
			Overrides:  map[string]int{"UCT": 40, "Wits": 38},
			Rule:       includeOnly("UCT", "Wits", "SU", "UP", "UKZN", "UWC", "UFS", "SMU"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 5), required(subjectMathematics, 5), required(subjectPhysical, 5), required(subjectLife, 5),
			},
		},
		{
			Name: "Bachelor of Dental Surgery (BDS)", Faculty: facultyHealth, DurationYears: 5,
			DefaultAPS: 40,
			Rule:       includeOnly("Wits", "UP", "UWC", "SMU"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 5), required(subjectMathematics, 6), required(subjectPhysical, 6), required(subjectLife, 6),
			},
		},

		// Law
		{
			Name: "Bachelor of Laws (LLB)", Faculty: facultyLaw, DurationYears: 4,
			DefaultAPS: 32,
			Overrides:  map[string]int{"UCT": 38, "Wits": 40, "SU": 36, "UP": 35, "UJ": 33, "UNISA": 20},
			Rule:       exclude("SMU", "UMP", "SPU", "CPUT", "DUT", "CUT", "VUT", "MUT"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 5), optional(subjectMathematics, 3), optional(subjectHistory, 4),
			},
			Careers: []string{"Attorney", "Advocate", "Legal advisor"},
		},

		// Science
		{
			Name: "BSc Computer Science", Faculty: facultyScience, DurationYears: 3,
			DefaultAPS: 30,
			Overrides:  map[string]int{"UCT": 38, "Wits": 40, "SU": 35, "UP": 34, "UJ": 31, "UNISA": 22},
			Rule:       exclude(nonTechnology...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 5), optional(subjectPhysical, 4), optional(subjectIT, 5),
			},
			Careers: []string{"Software developer", "Data scientist", "Systems analyst"},
		},
		{
			Name: "BSc Biological Sciences", Faculty: facultyScience, DurationYears: 3,
			DefaultAPS: 28,
			Overrides:  map[string]int{"UCT": 36, "Wits": 36, "SU": 32},
			Rule:       exclude(nonTechnology...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 4), required(subjectLife, 5), optional(subjectPhysical, 4),
			},
		},
		{
			Name: "BSc Mathematical Sciences", Faculty: facultyScience, DurationYears: 3,
			DefaultAPS: 30,
			Overrides:  map[string]int{"UCT": 36, "SU": 34},
			Rule:       exclude(union(nonTechnology, "UNIZULU", "UMP")...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 6), optional(subjectPhysical, 5),
			},
		},
		{
			Name: "BSc Environmental and Geographical Science", Faculty: facultyScience, DurationYears: 3,
			DefaultAPS: 28,
			Overrides:  map[string]int{"UCT": 34},
			Rule:       includeOnly("UCT", "Wits", "UKZN", "UJ", "RU", "NWU", "UFS", "UWC", "UL", "UNIVEN"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 4), optional(subjectGeography, 5),
			},
		},

		// Engineering
		{
			Name: "BSc Engineering (Civil)", Faculty: facultyEngineering, DurationYears: 4,
			DefaultAPS: 36,
			Overrides:  map[string]int{"UCT": 42, "Wits": 42, "SU": 38, "UP": 35},
			Rule:       includeOnly("UCT", "Wits", "SU", "UP", "UKZN", "UJ", "NWU"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 5), required(subjectMathematics, 7), required(subjectPhysical, 6), optional(subjectEGD, 5),
			},
			Careers: []string{"Civil engineer", "Structural engineer"},
		},
		{
			Name: "BSc Engineering (Electrical)", Faculty: facultyEngineering, DurationYears: 4,
			DefaultAPS: 36,
			Overrides:  map[string]int{"UCT": 42, "Wits": 42, "SU": 38},
			Rule:       includeOnly("UCT", "Wits", "SU", "UP", "UKZN", "UJ", "NWU"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 5), required(subjectMathematics, 7), required(subjectPhysical, 6),
			},
		},
		{
			Name: "Diploma in Civil Engineering", Faculty: facultyEngineering, DurationYears: 3,
			DefaultAPS: 26,
			Overrides:  map[string]int{"CPUT": 28, "DUT": 28},
			Rule:       includeOnly(union(technologyUniversities, "UJ", "NMU", "WSU", "UNISA")...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 4), required(subjectPhysical, 4),
			},
		},
		{
			Name: "Bachelor of Architecture", Faculty: facultyEngineering, DurationYears: 3,
			DefaultAPS: 32,
			Overrides:  map[string]int{"UCT": 36, "Wits": 36},
			Rule:       includeOnly("UCT", "Wits", "UP", "UKZN", "UJ", "NMU", "UFS", "TUT", "CPUT", "DUT"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 5), optional(subjectPhysical, 4), optional(subjectVisualArts, 4),
			},
		},

		// Commerce
		{
			Name: "BCom Accounting", Faculty: facultyCommerce, DurationYears: 3,
			DefaultAPS: 30,
			Overrides:  map[string]int{"UCT": 38, "Wits": 38, "SU": 34, "UP": 34, "UJ": 31, "UNISA": 20},
			Rule:       exclude("SMU", "VUT", "MUT"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 5), optional(subjectAccounting, 5),
			},
			Careers: []string{"Chartered accountant", "Auditor", "Financial manager"},
		},
		{
			Name: "BCom Economics", Faculty: facultyCommerce, DurationYears: 3,
			DefaultAPS: 28,
			Overrides:  map[string]int{"UCT": 36, "Wits": 36, "SU": 32},
			Rule:       exclude(nonTechnology...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 4), optional(subjectEconomics, 4),
			},
		},
		{
			Name: "BCom Business Management", Faculty: facultyCommerce, DurationYears: 3,
			DefaultAPS: 26,
			Overrides:  map[string]int{"UJ": 27, "UP": 30, "UNISA": 18},
			Rule:       exclude("SMU"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), optional(subjectMathematics, 3), optional(subjectBusiness, 4),
			},
		},
		{
			Name: "Diploma in Accounting", Faculty: facultyCommerce, DurationYears: 3,
			DefaultAPS: 24,
			Rule:       includeOnly(union(technologyUniversities, "UJ", "NMU", "WSU", "UNISA")...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathLiteracy, 4), optional(subjectAccounting, 4),
			},
		},

		// Humanities
		{
			Name: "Bachelor of Arts", Faculty: facultyHumanities, DurationYears: 3,
			DefaultAPS: 26,
			Overrides:  map[string]int{"UCT": 34, "Wits": 34, "SU": 30, "UNISA": 18},
			Rule:       exclude(nonTechnology...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), optional(subjectHistory, 4),
			},
		},
		{
			Name: "Bachelor of Social Work", Faculty: facultyHumanities, DurationYears: 4,
			DefaultAPS: 28,
			Overrides:  map[string]int{"UCT": 32, "Wits": 32},
			Rule:       exclude(union(nonTechnology, "SPU")...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), optional(subjectLife, 4),
			},
		},
		{
			Name: "Bachelor of Psychology", Faculty: facultyHumanities, DurationYears: 4,
			DefaultAPS: 30,
			Overrides:  map[string]int{"UCT": 36, "SU": 34},
			Rule:       exclude(nonTechnology...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 5), required(subjectMathematics, 4),
			},
		},

		// Education
		{
			Name: "Bachelor of Education (Foundation Phase)", Faculty: facultyEducation, DurationYears: 4,
			DefaultAPS: 24,
			Overrides:  map[string]int{"Wits": 30, "UP": 28, "UNISA": 20},
			Rule:       exclude("SMU", "UCT", "RU", "CPUT", "DUT", "VUT", "MUT"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), optional(subjectMathLiteracy, 4),
			},
			Careers: []string{"Foundation phase teacher"},
		},
		{
			Name: "Bachelor of Education (Senior Phase and FET)", Faculty: facultyEducation, DurationYears: 4,
			DefaultAPS: 26,
			Overrides:  map[string]int{"Wits": 32, "UP": 28, "SU": 30},
			Rule:       exclude("SMU", "VUT", "MUT"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), optional(subjectMathematics, 4),
			},
		},

		// Agriculture
		{
			Name: "BSc Agriculture", Faculty: facultyAgriculture, DurationYears: 4,
			DefaultAPS: 26,
			Overrides:  map[string]int{"SU": 32, "UP": 30},
			Rule:       includeOnly("SU", "UP", "UKZN", "NWU", "UFS", "UFH", "UL", "UNIVEN", "UNIZULU", "UMP"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 4), required(subjectPhysical, 4), optional(subjectAgriculture, 5),
			},
		},

		// Arts and Design
		{
			Name: "Diploma in Fashion Design", Faculty: facultyArts, DurationYears: 3,
			DefaultAPS: 22,
			Rule:       includeOnly("TUT", "CPUT", "DUT", "UJ", "NMU"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), optional(subjectVisualArts, 4), optional(subjectConsumerStudies, 4),
			},
		},
		{
			Name: "Bachelor of Fine Art", Faculty: facultyArts, DurationYears: 4,
			DefaultAPS: 28,
			Overrides:  map[string]int{"UCT": 30, "Wits": 32},
			Rule:       includeOnly("UCT", "Wits", "SU", "RU", "UKZN", "UJ", "TUT"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), optional(subjectVisualArts, 5),
			},
		},

		// ICT
		{
			Name: "Diploma in Information Technology", Faculty: facultyIT, DurationYears: 3,
			DefaultAPS: 24,
			Overrides:  map[string]int{"CPUT": 26, "TUT": 25},
			Rule:       includeOnly(union(technologyUniversities, "UJ", "NMU", "WSU", "UNISA")...),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 4), optional(subjectIT, 4),
			},
		},
		{
			Name: "Bachelor of Information Technology", Faculty: facultyIT, DurationYears: 3,
			DefaultAPS: 30,
			Overrides:  map[string]int{"UP": 34, "UJ": 31},
			Rule:       includeOnly("UP", "UJ", "NWU", "UFS", "NMU", "UWC", "TUT", "CPUT", "DUT", "CUT", "VUT"),
			Subjects: []models.SubjectRequirement{
				required(subjectEnglish, 4), required(subjectMathematics, 5),
			},
		},
	}
}

func union(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
