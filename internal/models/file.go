package models

type FileAttachment struct {
	ID       string `json:"id" db:"id"`
	JobID    string `json:"job_id" db:"job_id"`
	FileName string `json:"file_name" db:"file_name"`
	FilePath string `json:"file_path" db:"file_path"`
}

// AcceptedExtensions is advisory for the upload picker; Attach does not
// re-validate it.
var AcceptedExtensions = []string{".stl", ".3mf", ".dxf", ".dwg"}
