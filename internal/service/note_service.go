package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/repository"
)

// NoteService is the sole mutator of staff_notes. Writes are
// unconditional overwrites: last write wins, no version check.
type NoteService interface {
	SetNote(ctx context.Context, jobID, text string) error
}

type noteService struct {
	jobRepo repository.JobRepository
	logger  zerolog.Logger
}

func NewNoteService(jobRepo repository.JobRepository, logger zerolog.Logger) NoteService {
	return &noteService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

func (s *noteService) SetNote(ctx context.Context, jobID, text string) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return ErrJobNotFound
	}

	var notes *string
	if text != "" {
		notes = &text
	}

	if err := s.jobRepo.UpdateStaffNotes(ctx, jobID, notes); err != nil {
		return fmt.Errorf("failed to update staff notes: %w", err)
	}

	s.logger.Info().
		Str("job_id", jobID).
		Bool("cleared", notes == nil).
		Msg("Staff notes updated")

	return nil
}
