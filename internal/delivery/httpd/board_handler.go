package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thewondry/job-service/internal/models"
)

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	snapshot, err := h.boardService.Refresh(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, snapshot)
}

// UpdateJobStatus consumes a drag-and-drop gesture: the job id from the
// URL and the destination column from the body.
func (h *Handler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(jobID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job id format")
		return
	}

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	ctx := r.Context()
	snapshot, err := h.boardService.Drop(ctx, models.DragEvent{
		JobID:    jobID,
		ToStatus: req.Status,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, snapshot)
}
