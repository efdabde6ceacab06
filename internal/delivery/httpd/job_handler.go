package httpd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thewondry/job-service/internal/models"
)

const maxSubmissionSize = 64 << 20 // 64MB across all files in one submission

// SubmitJob accepts the multipart intake form: the submission fields
// plus one or more design files under "files".
func (h *Handler) SubmitJob(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSubmissionSize); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	sub := &models.Submission{
		Email:                  r.FormValue("email"),
		Role:                   r.FormValue("role"),
		School:                 r.FormValue("school"),
		SchoolOther:            r.FormValue("school_other"),
		Purpose:                r.FormValue("purpose"),
		PurposeOther:           r.FormValue("purpose_other"),
		LabName:                r.FormValue("lab_name"),
		LabFaculty:             r.FormValue("lab_faculty"),
		LabFundingAcknowledged: r.FormValue("lab_funding_acknowledged") == "true",
		JobType:                r.FormValue("job_type"),
		Material:               r.FormValue("material"),
		MaterialOther:          r.FormValue("material_other"),
		Size:                   r.FormValue("size"),
		Notes:                  r.FormValue("notes"),
	}

	var files []models.SubmissionFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			file, err := header.Open()
			if err != nil {
				writeError(w, http.StatusBadRequest, "Failed to open uploaded file")
				return
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
				return
			}
			files = append(files, models.SubmissionFile{
				Name:    header.Filename,
				Content: content,
			})
		}
	}

	ctx := r.Context()
	response, err := h.jobService.SubmitJob(ctx, sub, files)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jobs, err := h.jobService.ListJobs(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, jobs)
}

func (h *Handler) GetJobByID(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(jobID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id format")
		return
	}

	ctx := r.Context()
	detail, err := h.jobService.GetJobByID(ctx, jobID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, detail)
}

func (h *Handler) GetFormOptions(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.jobService.FormOptions())
}

// CheckCompletion re-evaluates the conditional fields and progress
// percentage for the current answer set. The form calls it on every
// field change and file add or remove.
func (h *Handler) CheckCompletion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		models.Submission
		FileCount int `json:"file_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	writeSuccess(w, h.jobService.CheckCompletion(&req.Submission, req.FileCount))
}
