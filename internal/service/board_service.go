package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
	"github.com/thewondry/job-service/internal/repository"
)

// BoardService owns the single authoritative in-memory snapshot of the
// workflow board. Every mutation is followed by a full re-fetch, so the
// board always reflects store-confirmed state, never an optimistic
// guess.
type BoardService interface {
	Snapshot(ctx context.Context) (*models.BoardSnapshot, error)
	Refresh(ctx context.Context) (*models.BoardSnapshot, error)
	Drop(ctx context.Context, event models.DragEvent) (*models.BoardSnapshot, error)
	Lookup(jobID string) (*models.BoardCard, bool)
}

type boardService struct {
	jobRepo  repository.JobRepository
	workflow WorkflowService
	logger   zerolog.Logger
	now      func() time.Time

	mu       sync.RWMutex
	snapshot *models.BoardSnapshot
}

func NewBoardService(
	jobRepo repository.JobRepository,
	workflow WorkflowService,
	logger zerolog.Logger,
) BoardService {
	return &boardService{
		jobRepo:  jobRepo,
		workflow: workflow,
		logger:   logger,
		now:      time.Now,
	}
}

// Snapshot returns the current board, refreshing first if none has been
// built yet.
func (s *boardService) Snapshot(ctx context.Context) (*models.BoardSnapshot, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap != nil {
		return snap, nil
	}
	return s.Refresh(ctx)
}

// Refresh rebuilds the snapshot wholesale from the store and swaps it
// in atomically. There is no incremental merge.
func (s *boardService) Refresh(ctx context.Context) (*models.BoardSnapshot, error) {
	jobs, err := s.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	snap := buildSnapshot(jobs, s.now().UTC())

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	return snap, nil
}

// Drop consumes a completed drag gesture. A drop onto the job's current
// column persists nothing. Otherwise the workflow engine applies the
// transition and — success or failure — the board is refreshed before
// returning, so a failed transition still reconciles the view with the
// store.
func (s *boardService) Drop(ctx context.Context, event models.DragEvent) (*models.BoardSnapshot, error) {
	if card, ok := s.Lookup(event.JobID); ok && card.Status == event.ToStatus {
		return s.Snapshot(ctx)
	}

	_, transitionErr := s.workflow.Transition(ctx, event.JobID, event.ToStatus)

	snap, refreshErr := s.Refresh(ctx)
	if transitionErr != nil {
		if refreshErr != nil {
			s.logger.Error().Err(refreshErr).Msg("Board refresh failed after failed transition")
		}
		return snap, transitionErr
	}
	if refreshErr != nil {
		return nil, refreshErr
	}

	return snap, nil
}

// Lookup finds a card in the current snapshot, for rendering the drag
// ghost. The underlying record stays untouched until the gesture
// completes.
func (s *boardService) Lookup(jobID string) (*models.BoardCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, false
	}
	for _, column := range [][]models.BoardCard{
		s.snapshot.Received,
		s.snapshot.InProgress,
		s.snapshot.Completed,
	} {
		for i := range column {
			if column[i].ID == jobID {
				card := column[i]
				return &card, true
			}
		}
	}
	return nil, false
}

func buildSnapshot(jobs []models.Job, refreshedAt time.Time) *models.BoardSnapshot {
	byStatus := map[string][]models.Job{}
	for _, job := range jobs {
		byStatus[job.Status] = append(byStatus[job.Status], job)
	}

	snap := &models.BoardSnapshot{RefreshedAt: refreshedAt}
	snap.Received = toCards(SortColumn(models.JobStatusReceived.String(), byStatus[models.JobStatusReceived.String()]))
	snap.InProgress = toCards(SortColumn(models.JobStatusInProgress.String(), byStatus[models.JobStatusInProgress.String()]))
	snap.Completed = toCards(SortColumn(models.JobStatusCompleted.String(), byStatus[models.JobStatusCompleted.String()]))
	return snap
}

func toCards(jobs []models.Job) []models.BoardCard {
	cards := make([]models.BoardCard, 0, len(jobs))
	for _, job := range jobs {
		cards = append(cards, models.BoardCard{
			ID:            job.ID,
			Email:         job.Email,
			JobType:       job.JobType,
			Material:      job.Material,
			Status:        job.Status,
			TimeReceived:  job.TimeReceived,
			CompletedAt:   job.CompletedAt,
			HasStaffNotes: job.HasStaffNotes(),
		})
	}
	return cards
}
