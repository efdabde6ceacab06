package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	GetAll(ctx context.Context) ([]models.Job, error)
	UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error
	UpdateStaffNotes(ctx context.Context, id string, staffNotes *string) error
}

type jobRepository struct {
	*PostgresRepository
}

func NewJobRepository(db *sql.DB, logger zerolog.Logger) JobRepository {
	return &jobRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const jobColumns = `id, email, role, school, purpose, lab_name, lab_faculty, lab_funding_acknowledged,
		job_type, material, size, notes, status, staff_notes, time_received, completed_at`

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.ExecContext(ctx, query,
		job.ID,
		job.Email,
		job.Role,
		job.School,
		job.Purpose,
		job.LabName,
		job.LabFaculty,
		job.LabFundingAcknowledged,
		job.JobType,
		job.Material,
		job.Size,
		job.Notes,
		job.Status,
		job.StaffNotes,
		job.TimeReceived,
		job.CompletedAt,
	)

	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = $1
	`

	job := &models.Job{}
	err := scanJob(r.db.QueryRowContext(ctx, query, id), job)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return job, err
}

func (r *jobRepository) GetAll(ctx context.Context) ([]models.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		ORDER BY time_received
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var job models.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// UpdateStatus writes status and completed_at together so a transition
// is a single statement at the store.
func (r *jobRepository) UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error {
	query := `
		UPDATE jobs
		SET status = $1, completed_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, status, completedAt, id)
	return err
}

func (r *jobRepository) UpdateStaffNotes(ctx context.Context, id string, staffNotes *string) error {
	query := `
		UPDATE jobs
		SET staff_notes = $1
		WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, staffNotes, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner, job *models.Job) error {
	return row.Scan(
		&job.ID,
		&job.Email,
		&job.Role,
		&job.School,
		&job.Purpose,
		&job.LabName,
		&job.LabFaculty,
		&job.LabFundingAcknowledged,
		&job.JobType,
		&job.Material,
		&job.Size,
		&job.Notes,
		&job.Status,
		&job.StaffNotes,
		&job.TimeReceived,
		&job.CompletedAt,
	)
}
