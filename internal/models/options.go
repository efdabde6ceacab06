package models

// Option catalogs for the intake form selects. The picker renders from
// these and the resolver treats any non-empty value as answered, so the
// lists can change without touching the completion logic.

var RoleOptions = []string{
	"Student",
	"Faculty",
	"Staff",
}

var SchoolOptions = []string{
	"School of Engineering",
	"College of Arts and Science",
	"Peabody College",
	"School of Medicine",
	"School of Nursing",
	"Owen Graduate School of Management",
	"Divinity School",
	"Blair School of Music",
	"Law School",
	"Next Steps",
	OtherOption,
}

var PurposeOptions = []string{
	"Personal project",
	"Class project",
	"Student organization",
	"Senior design",
	PurposeResearchLab,
	PurposeVUMC,
	OtherOption,
}

var JobTypeOptions = []string{
	string(JobTypePrint),
	string(JobTypeLaserCut),
}

var MaterialOptions = []string{
	"MDF (1/4 inch)",
	"Plywood (1/8 inch)",
	"Cardboard (1/8 inch)",
	"Acrylic (1/8 inch)",
	"Acrylic (1/4 inch)",
	OtherOption,
}
