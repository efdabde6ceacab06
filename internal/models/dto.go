package models

import "time"

// Data Transfer Objects

// Submission holds the raw intake form answers before the enum-or-other
// values are resolved. Field names match the form exactly.
type Submission struct {
	Email                  string `json:"email"`
	Role                   string `json:"role"`
	School                 string `json:"school"`
	SchoolOther            string `json:"school_other"`
	Purpose                string `json:"purpose"`
	PurposeOther           string `json:"purpose_other"`
	LabName                string `json:"lab_name"`
	LabFaculty             string `json:"lab_faculty"`
	LabFundingAcknowledged bool   `json:"lab_funding_acknowledged"`
	JobType                string `json:"job_type"`
	Material               string `json:"material"`
	MaterialOther          string `json:"material_other"`
	Size                   string `json:"size"`
	Notes                  string `json:"notes"`
}

// SubmissionFile is one design file carried alongside a Submission.
type SubmissionFile struct {
	Name    string
	Content []byte
}

type CreateJobResponse struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	TimeReceived time.Time `json:"time_received"`
	Files        int       `json:"files"`
}

type JobDetailResponse struct {
	Job   Job              `json:"job"`
	Files []FileAttachment `json:"files"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=received in_progress completed"`
}

type UpdateStaffNotesRequest struct {
	StaffNotes string `json:"staff_notes"`
}

type AttachFileResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
}

// DragEvent is a completed drag gesture on the board: one job dropped
// onto one status column.
type DragEvent struct {
	JobID    string `json:"job_id"`
	ToStatus string `json:"to_status"`
}

// BoardCard is the staff-facing projection of a job on the board.
type BoardCard struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	JobType       string     `json:"job_type"`
	Material      *string    `json:"material,omitempty"`
	Status        string     `json:"status"`
	TimeReceived  time.Time  `json:"time_received"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	HasStaffNotes bool       `json:"has_staff_notes"`
}

// BoardSnapshot groups all jobs by status column, ordered per column
// rules. RefreshedAt records when the snapshot was rebuilt from the
// store.
type BoardSnapshot struct {
	Received    []BoardCard `json:"received"`
	InProgress  []BoardCard `json:"in_progress"`
	Completed   []BoardCard `json:"completed"`
	RefreshedAt time.Time   `json:"refreshed_at"`
}

// CompletionResponse reports the resolver's view of a submission.
type CompletionResponse struct {
	Percent       int      `json:"percent"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// FormOptions is the option catalog the intake form renders from.
type FormOptions struct {
	Roles              []string `json:"roles"`
	Schools            []string `json:"schools"`
	Purposes           []string `json:"purposes"`
	JobTypes           []string `json:"job_types"`
	Materials          []string `json:"materials"`
	AcceptedExtensions []string `json:"accepted_extensions"`
	LabFundedPurposes  []string `json:"lab_funded_purposes"`
}
