package service

import (
	"math"

	"github.com/thewondry/job-service/internal/models"
)

// Conditional field resolution for the intake form. Pure functions of
// the current answer set; re-evaluated on every field change and every
// file add or remove.

var baseRequiredFields = []string{
	"email",
	"role",
	"school",
	"purpose",
	"job_type",
	"size",
}

// RequiredFields returns the base required fields plus the conditional
// fields the current answers activate: the _other override when its
// governing select is "Other", the lab fields when the purpose implies
// lab funding, and material only for laser cutting.
func RequiredFields(sub *models.Submission) []string {
	fields := make([]string, len(baseRequiredFields))
	copy(fields, baseRequiredFields)

	if sub.School == models.OtherOption {
		fields = append(fields, "school_other")
	}
	if sub.Purpose == models.OtherOption {
		fields = append(fields, "purpose_other")
	}
	if models.IsLabFunded(sub.Purpose) {
		fields = append(fields, "lab_name", "lab_faculty", "lab_funding_acknowledged")
	}
	if sub.JobType == string(models.JobTypeLaserCut) {
		fields = append(fields, "material")
		if sub.Material == models.OtherOption {
			fields = append(fields, "material_other")
		}
	}

	return fields
}

// Completion computes the intake progress as a rounded integer
// percentage: answered fields plus one point for having at least one
// file, over all currently required fields plus one.
func Completion(sub *models.Submission, fileCount int) int {
	fields := RequiredFields(sub)

	filled := 0
	for _, field := range fields {
		if fieldAnswered(sub, field) {
			filled++
		}
	}
	if fileCount > 0 {
		filled++
	}

	total := len(fields) + 1
	return int(math.Round(float64(filled) / float64(total) * 100))
}

// MissingFields lists every required field without an answer, plus the
// file requirement when no file is attached.
func MissingFields(sub *models.Submission, fileCount int) []string {
	var missing []string
	for _, field := range RequiredFields(sub) {
		if !fieldAnswered(sub, field) {
			missing = append(missing, field)
		}
	}
	if fileCount == 0 {
		missing = append(missing, "files")
	}
	return missing
}

// ValidateSubmission returns a ValidationError naming every missing
// field, or nil when the submission is complete.
func ValidateSubmission(sub *models.Submission, fileCount int) error {
	if missing := MissingFields(sub, fileCount); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func fieldAnswered(sub *models.Submission, field string) bool {
	switch field {
	case "email":
		return sub.Email != ""
	case "role":
		return sub.Role != ""
	case "school":
		return sub.School != ""
	case "school_other":
		return sub.SchoolOther != ""
	case "purpose":
		return sub.Purpose != ""
	case "purpose_other":
		return sub.PurposeOther != ""
	case "lab_name":
		return sub.LabName != ""
	case "lab_faculty":
		return sub.LabFaculty != ""
	case "lab_funding_acknowledged":
		return sub.LabFundingAcknowledged
	case "job_type":
		return sub.JobType != ""
	case "material":
		return sub.Material != ""
	case "material_other":
		return sub.MaterialOther != ""
	case "size":
		return sub.Size != ""
	default:
		return false
	}
}
