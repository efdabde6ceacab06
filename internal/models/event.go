package models

// JobStatusChangedEvent is published after a successful transition into
// in_progress or completed. The mailer consumes it and emails the
// submitter; delivery is best-effort and never rolls back the
// transition.
type JobStatusChangedEvent struct {
	JobID     string `json:"job_id"`
	Email     string `json:"email"`
	JobType   string `json:"job_type"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	Timestamp int64  `json:"timestamp"`
}
