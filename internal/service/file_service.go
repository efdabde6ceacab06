package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
	"github.com/thewondry/job-service/internal/repository"
)

// FileService associates uploaded design files with jobs. Objects live
// at <job-id>/<original-file-name>; uploading the same name for the
// same job overwrites the stored object.
type FileService interface {
	Attach(ctx context.Context, jobID, fileName string, content []byte) (*models.FileAttachment, error)
	ListFor(ctx context.Context, jobID string) ([]models.FileAttachment, error)
	Fetch(ctx context.Context, path string) ([]byte, error)
}

type fileService struct {
	fileRepo repository.FileRepository
	jobRepo  repository.JobRepository
	storage  repository.FileStorage
	logger   zerolog.Logger
}

func NewFileService(
	fileRepo repository.FileRepository,
	jobRepo repository.JobRepository,
	storage repository.FileStorage,
	logger zerolog.Logger,
) FileService {
	return &fileService{
		fileRepo: fileRepo,
		jobRepo:  jobRepo,
		storage:  storage,
		logger:   logger,
	}
}

// StoragePath derives the object key for a job-scoped file.
func StoragePath(jobID, fileName string) string {
	return fmt.Sprintf("%s/%s", jobID, fileName)
}

// Attach uploads the file bytes and then records the attachment row.
// If the metadata write fails after a successful upload, the stored
// object is left orphaned; that window is logged, not retried.
func (s *fileService) Attach(ctx context.Context, jobID, fileName string, content []byte) (*models.FileAttachment, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	path := StoragePath(jobID, fileName)

	if err := s.storage.Upload(ctx, path, bytes.NewReader(content), int64(len(content))); err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	attachment := &models.FileAttachment{
		ID:       uuid.New().String(),
		JobID:    jobID,
		FileName: fileName,
		FilePath: path,
	}

	if err := s.fileRepo.Create(ctx, attachment); err != nil {
		s.logger.Warn().
			Str("job_id", jobID).
			Str("path", path).
			Msg("Attachment record write failed after upload; stored object is orphaned")
		return nil, fmt.Errorf("failed to create attachment record: %w", err)
	}

	s.logger.Info().
		Str("job_id", jobID).
		Str("file_name", fileName).
		Str("path", path).
		Msg("File attached to job")

	return attachment, nil
}

func (s *fileService) ListFor(ctx context.Context, jobID string) ([]models.FileAttachment, error) {
	files, err := s.fileRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return files, nil
}

func (s *fileService) Fetch(ctx context.Context, path string) ([]byte, error) {
	content, err := s.storage.Download(ctx, path)
	if err != nil {
		if err == repository.ErrObjectNotFound {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	return content, nil
}
