package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
)

type FileRepository interface {
	Create(ctx context.Context, file *models.FileAttachment) error
	GetByJobID(ctx context.Context, jobID string) ([]models.FileAttachment, error)
}

type fileRepository struct {
	*PostgresRepository
}

func NewFileRepository(db *sql.DB, logger zerolog.Logger) FileRepository {
	return &fileRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *fileRepository) Create(ctx context.Context, file *models.FileAttachment) error {
	query := `
		INSERT INTO files (id, job_id, file_name, file_path)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		file.ID,
		file.JobID,
		file.FileName,
		file.FilePath,
	)

	return err
}

func (r *fileRepository) GetByJobID(ctx context.Context, jobID string) ([]models.FileAttachment, error) {
	query := `
		SELECT id, job_id, file_name, file_path
		FROM files
		WHERE job_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []models.FileAttachment
	for rows.Next() {
		var file models.FileAttachment
		err := rows.Scan(
			&file.ID,
			&file.JobID,
			&file.FileName,
			&file.FilePath,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}
