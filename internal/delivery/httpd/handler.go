package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/service"
)

type Handler struct {
	jobService   service.JobService
	boardService service.BoardService
	fileService  service.FileService
	noteService  service.NoteService
	logger       zerolog.Logger
}

func NewHandler(
	jobService service.JobService,
	boardService service.BoardService,
	fileService service.FileService,
	noteService service.NoteService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		jobService:   jobService,
		boardService: boardService,
		fileService:  fileService,
		noteService:  noteService,
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Get("/form-options", h.GetFormOptions)

		api.Route("/jobs", func(r chi.Router) {
			r.Post("/", h.SubmitJob)
			r.Post("/completion", h.CheckCompletion)
			r.Get("/", h.ListJobs)
			r.Get("/{id}", h.GetJobByID)
			r.Put("/{id}/status", h.UpdateJobStatus)
			r.Put("/{id}/notes", h.UpdateStaffNotes)
			r.Post("/{id}/files", h.AttachFile)
			r.Get("/{id}/files", h.ListJobFiles)
		})

		api.Get("/board", h.GetBoard)
		api.Get("/files/{jobID}/{fileName}", h.DownloadFile)
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "job-service",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

// handleServiceError maps the service error taxonomy onto HTTP status
// codes. Every failure surfaces the operation's error text; nothing is
// silently swallowed or retried.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":          http.StatusText(http.StatusBadRequest),
			"message":        validationErr.Error(),
			"missing_fields": validationErr.Missing,
		})
	case errors.Is(err, service.ErrJobNotFound), errors.Is(err, service.ErrFileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    data,
	}
	writeJSON(w, http.StatusOK, response)
}
