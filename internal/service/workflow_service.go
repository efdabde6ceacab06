package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
	"github.com/thewondry/job-service/internal/repository"
	"github.com/thewondry/job-service/internal/service/integration"
)

// WorkflowService owns the job status state machine. It is the sole
// mutator of status and completed_at.
type WorkflowService interface {
	Transition(ctx context.Context, jobID, newStatus string) (*models.Job, error)
}

type workflowService struct {
	jobRepo  repository.JobRepository
	notifier integration.Notifier
	logger   zerolog.Logger
	now      func() time.Time
}

func NewWorkflowService(
	jobRepo repository.JobRepository,
	notifier integration.Notifier,
	logger zerolog.Logger,
) WorkflowService {
	return &workflowService{
		jobRepo:  jobRepo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Transition moves a job to newStatus. Any status is reachable from any
// other by direct staff action. Entering completed stamps completed_at
// with the transition time; leaving it clears the stamp. A transition
// to the current status is a no-op: no write, no notification.
func (s *workflowService) Transition(ctx context.Context, jobID, newStatus string) (*models.Job, error) {
	if !models.IsValidJobStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if job.Status == newStatus {
		return job, nil
	}

	var completedAt *time.Time
	if newStatus == models.JobStatusCompleted.String() {
		t := s.now().UTC()
		completedAt = &t
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, newStatus, completedAt); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	oldStatus := job.Status
	job.Status = newStatus
	job.CompletedAt = completedAt

	s.logger.Info().
		Str("job_id", jobID).
		Str("from", oldStatus).
		Str("to", newStatus).
		Msg("Job status transitioned")

	s.notify(ctx, job, oldStatus)

	return job, nil
}

// notify schedules the submitter notification for transitions into
// in_progress or completed. Delivery is best-effort: a publish failure
// is logged and never rolls back the transition.
func (s *workflowService) notify(ctx context.Context, job *models.Job, oldStatus string) {
	if job.Status != models.JobStatusInProgress.String() &&
		job.Status != models.JobStatusCompleted.String() {
		return
	}

	event := &models.JobStatusChangedEvent{
		JobID:     job.ID,
		Email:     job.Email,
		JobType:   job.JobType,
		OldStatus: oldStatus,
		NewStatus: job.Status,
		Timestamp: s.now().Unix(),
	}

	if err := s.notifier.PublishStatusChanged(ctx, event); err != nil {
		s.logger.Error().Err(err).
			Str("job_id", job.ID).
			Str("email", job.Email).
			Msg("Failed to publish status changed event")
	}
}

// SortColumn orders jobs within one board column: received is a FIFO
// intake queue (oldest first), completed shows the most recently
// received first, in_progress keeps fetch order.
func SortColumn(status string, jobs []models.Job) []models.Job {
	switch status {
	case models.JobStatusReceived.String():
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].TimeReceived.Before(jobs[j].TimeReceived)
		})
	case models.JobStatusCompleted.String():
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].TimeReceived.After(jobs[j].TimeReceived)
		})
	}
	return jobs
}
