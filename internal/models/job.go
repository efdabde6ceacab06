package models

import (
	"time"
)

type Job struct {
	ID                     string     `json:"id" db:"id"`
	Email                  string     `json:"email" db:"email"`
	Role                   string     `json:"role" db:"role"`
	School                 string     `json:"school" db:"school"`
	Purpose                string     `json:"purpose" db:"purpose"`
	LabName                *string    `json:"lab_name,omitempty" db:"lab_name"`
	LabFaculty             *string    `json:"lab_faculty,omitempty" db:"lab_faculty"`
	LabFundingAcknowledged bool       `json:"lab_funding_acknowledged" db:"lab_funding_acknowledged"`
	JobType                string     `json:"job_type" db:"job_type"`
	Material               *string    `json:"material,omitempty" db:"material"`
	Size                   string     `json:"size" db:"size"`
	Notes                  *string    `json:"notes,omitempty" db:"notes"`
	Status                 string     `json:"status" db:"status"` // received, in_progress, completed
	StaffNotes             *string    `json:"staff_notes,omitempty" db:"staff_notes"`
	TimeReceived           time.Time  `json:"time_received" db:"time_received"`
	CompletedAt            *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// HasStaffNotes flags a job for staff attention, independent of status.
func (j *Job) HasStaffNotes() bool {
	return j.StaffNotes != nil && *j.StaffNotes != ""
}

type JobStatus string

const (
	JobStatusReceived   JobStatus = "received"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

func (js JobStatus) String() string {
	return string(js)
}

func IsValidJobStatus(status string) bool {
	switch status {
	case "received", "in_progress", "completed":
		return true
	default:
		return false
	}
}

type JobType string

const (
	JobTypePrint    JobType = "3D Print"
	JobTypeLaserCut JobType = "Laser Cut"
)

type Role string

const (
	RoleStudent Role = "Student"
	RoleFaculty Role = "Faculty"
	RoleStaff   Role = "Staff"
)

// Purposes that imply lab funding and require the lab fields.
const (
	PurposeResearchLab = "Research lab"
	PurposeVUMC        = "VUMC"
)

// OtherOption is the sentinel enum value that switches a select field
// to its free-text override.
const OtherOption = "Other"

// Choice is an enum-or-other form value. Other carries the free text
// when Value is OtherOption; Effective resolves it once at the
// submission boundary.
type Choice struct {
	Value string `json:"value"`
	Other string `json:"other,omitempty"`
}

func (c Choice) Effective() string {
	if c.Value == OtherOption {
		return c.Other
	}
	return c.Value
}

func (c Choice) IsOther() bool {
	return c.Value == OtherOption
}

func IsLabFunded(purpose string) bool {
	return purpose == PurposeResearchLab || purpose == PurposeVUMC
}
