package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
	"github.com/thewondry/job-service/internal/repository"
)

// JobService handles intake: validating a submission, creating the job
// record, and attaching its design files.
type JobService interface {
	SubmitJob(ctx context.Context, sub *models.Submission, files []models.SubmissionFile) (*models.CreateJobResponse, error)
	GetJobByID(ctx context.Context, id string) (*models.JobDetailResponse, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	CheckCompletion(sub *models.Submission, fileCount int) *models.CompletionResponse
	FormOptions() *models.FormOptions
}

type jobService struct {
	jobRepo     repository.JobRepository
	fileService FileService
	logger      zerolog.Logger
	now         func() time.Time
}

func NewJobService(
	jobRepo repository.JobRepository,
	fileService FileService,
	logger zerolog.Logger,
) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		fileService: fileService,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitJob validates the submission, creates the job row, then
// attaches the files strictly in order. The first attachment failure
// aborts the remaining uploads but the job row survives: the caller
// gets the error and the job keeps the attachments persisted so far.
func (s *jobService) SubmitJob(ctx context.Context, sub *models.Submission, files []models.SubmissionFile) (*models.CreateJobResponse, error) {
	if err := ValidateSubmission(sub, len(files)); err != nil {
		return nil, err
	}

	job := newJobFromSubmission(sub, s.now().UTC())

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.logger.Info().
		Str("job_id", job.ID).
		Str("email", job.Email).
		Str("job_type", job.JobType).
		Int("files", len(files)).
		Msg("Job created")

	attached := 0
	for _, file := range files {
		if _, err := s.fileService.Attach(ctx, job.ID, file.Name, file.Content); err != nil {
			s.logger.Error().Err(err).
				Str("job_id", job.ID).
				Str("file_name", file.Name).
				Int("attached", attached).
				Msg("File attachment failed; aborting remaining uploads")
			return nil, fmt.Errorf("job %s created but file %q failed: %w", job.ID, file.Name, err)
		}
		attached++
	}

	return &models.CreateJobResponse{
		ID:           job.ID,
		Status:       job.Status,
		TimeReceived: job.TimeReceived,
		Files:        attached,
	}, nil
}

func (s *jobService) GetJobByID(ctx context.Context, id string) (*models.JobDetailResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	files, err := s.fileService.ListFor(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.JobDetailResponse{
		Job:   *job,
		Files: files,
	}, nil
}

func (s *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) CheckCompletion(sub *models.Submission, fileCount int) *models.CompletionResponse {
	return &models.CompletionResponse{
		Percent:       Completion(sub, fileCount),
		MissingFields: MissingFields(sub, fileCount),
	}
}

func (s *jobService) FormOptions() *models.FormOptions {
	return &models.FormOptions{
		Roles:              models.RoleOptions,
		Schools:            models.SchoolOptions,
		Purposes:           models.PurposeOptions,
		JobTypes:           models.JobTypeOptions,
		Materials:          models.MaterialOptions,
		AcceptedExtensions: models.AcceptedExtensions,
		LabFundedPurposes:  []string{models.PurposeResearchLab, models.PurposeVUMC},
	}
}

// newJobFromSubmission resolves the enum-or-other values once at the
// submission boundary and populates the lab fields only for lab-funded
// purposes.
func newJobFromSubmission(sub *models.Submission, received time.Time) *models.Job {
	school := models.Choice{Value: sub.School, Other: sub.SchoolOther}.Effective()
	purpose := models.Choice{Value: sub.Purpose, Other: sub.PurposeOther}.Effective()

	job := &models.Job{
		ID:           uuid.New().String(),
		Email:        sub.Email,
		Role:         sub.Role,
		School:       school,
		Purpose:      purpose,
		JobType:      sub.JobType,
		Size:         sub.Size,
		Status:       models.JobStatusReceived.String(),
		TimeReceived: received,
	}

	if models.IsLabFunded(sub.Purpose) {
		labName, labFaculty := sub.LabName, sub.LabFaculty
		job.LabName = &labName
		job.LabFaculty = &labFaculty
		job.LabFundingAcknowledged = sub.LabFundingAcknowledged
	}

	if sub.JobType == string(models.JobTypeLaserCut) {
		material := models.Choice{Value: sub.Material, Other: sub.MaterialOther}.Effective()
		job.Material = &material
	}

	if sub.Notes != "" {
		notes := sub.Notes
		job.Notes = &notes
	}

	return job
}
