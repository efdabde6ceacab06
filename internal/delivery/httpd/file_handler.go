package httpd

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thewondry/job-service/internal/service"
)

func (h *Handler) AttachFile(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(jobID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id format")
		return
	}

	if err := r.ParseMultipartForm(maxSubmissionSize); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	ctx := r.Context()
	attachment, err := h.fileService.Attach(ctx, jobID, header.Filename, content)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, attachment)
}

func (h *Handler) ListJobFiles(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(jobID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id format")
		return
	}

	ctx := r.Context()
	files, err := h.fileService.ListFor(ctx, jobID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, files)
}

// DownloadFile streams the raw stored bytes; presenting or saving them
// is the caller's concern.
func (h *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	fileName := chi.URLParam(r, "fileName")
	if jobID == "" || fileName == "" {
		writeError(w, http.StatusBadRequest, "Job id and file name are required")
		return
	}

	ctx := r.Context()
	content, err := h.fileService.Fetch(ctx, service.StoragePath(jobID, fileName))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
