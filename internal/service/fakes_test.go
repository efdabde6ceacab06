package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/thewondry/job-service/internal/models"
	"github.com/thewondry/job-service/internal/repository"
)

// In-memory doubles for the external collaborators: job rows,
// attachment rows, object storage, and the notification publisher.

type fakeJobRepo struct {
	jobs map[string]*models.Job

	getErr          error
	createErr       error
	updateStatusErr error

	statusWrites int
	notesWrites  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.Job{}}
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (*models.Job, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) GetAll(_ context.Context) ([]models.Job, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	jobs := make([]models.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, *job)
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].TimeReceived.Before(jobs[j].TimeReceived)
	})
	return jobs, nil
}

func (r *fakeJobRepo) UpdateStatus(_ context.Context, id, status string, completedAt *time.Time) error {
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	job, ok := r.jobs[id]
	if !ok {
		return errors.New("no such job")
	}
	r.statusWrites++
	job.Status = status
	job.CompletedAt = completedAt
	return nil
}

func (r *fakeJobRepo) UpdateStaffNotes(_ context.Context, id string, staffNotes *string) error {
	job, ok := r.jobs[id]
	if !ok {
		return errors.New("no such job")
	}
	r.notesWrites++
	job.StaffNotes = staffNotes
	return nil
}

type fakeFileRepo struct {
	records []models.FileAttachment

	// failOn makes the Nth Create call fail (1-based); 0 never fails.
	failOn int
	calls  int
}

func (r *fakeFileRepo) Create(_ context.Context, file *models.FileAttachment) error {
	r.calls++
	if r.failOn > 0 && r.calls == r.failOn {
		return errors.New("attachment insert refused")
	}
	r.records = append(r.records, *file)
	return nil
}

func (r *fakeFileRepo) GetByJobID(_ context.Context, jobID string) ([]models.FileAttachment, error) {
	var files []models.FileAttachment
	for _, record := range r.records {
		if record.JobID == jobID {
			files = append(files, record)
		}
	}
	return files, nil
}

type fakeStorage struct {
	objects map[string][]byte

	// failOn makes the Nth Upload call fail (1-based); 0 never fails.
	failOn  int
	uploads int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Upload(_ context.Context, path string, data io.Reader, _ int64) error {
	s.uploads++
	if s.failOn > 0 && s.uploads == s.failOn {
		return errors.New("storage unavailable")
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(data); err != nil {
		return err
	}
	s.objects[path] = buf.Bytes()
	return nil
}

func (s *fakeStorage) Download(_ context.Context, path string) ([]byte, error) {
	content, ok := s.objects[path]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return content, nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.objects[path]
	return ok, nil
}

func (s *fakeStorage) List(_ context.Context, prefix string) ([]string, error) {
	var paths []string
	for path := range s.objects {
		if len(path) >= len(prefix) && path[:len(prefix)] == prefix {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

type fakeNotifier struct {
	events     []*models.JobStatusChangedEvent
	publishErr error
}

func (n *fakeNotifier) PublishStatusChanged(_ context.Context, event *models.JobStatusChangedEvent) error {
	if n.publishErr != nil {
		return n.publishErr
	}
	n.events = append(n.events, event)
	return nil
}

func (n *fakeNotifier) Close() error { return nil }
