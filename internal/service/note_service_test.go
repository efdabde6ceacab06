package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
)

func TestSetNoteOverwrites(t *testing.T) {
	repo := newFakeJobRepo()
	job := seedJob(repo, "job-1", models.JobStatusReceived.String(), time.Now())
	existing := "older note"
	job.StaffNotes = &existing
	svc := NewNoteService(repo, zerolog.Nop())

	if err := svc.SetNote(context.Background(), "job-1", "needs supports"); err != nil {
		t.Fatalf("SetNote: %v", err)
	}
	if job.StaffNotes == nil || *job.StaffNotes != "needs supports" {
		t.Fatalf("note not overwritten: %v", job.StaffNotes)
	}

	// Last write wins: a second overwrite replaces without any check.
	if err := svc.SetNote(context.Background(), "job-1", "printed, awaiting pickup"); err != nil {
		t.Fatalf("SetNote: %v", err)
	}
	if *job.StaffNotes != "printed, awaiting pickup" {
		t.Fatalf("second write lost: %q", *job.StaffNotes)
	}
}

func TestSetNoteEmptyClears(t *testing.T) {
	repo := newFakeJobRepo()
	job := seedJob(repo, "job-1", models.JobStatusReceived.String(), time.Now())
	existing := "resolved"
	job.StaffNotes = &existing
	svc := NewNoteService(repo, zerolog.Nop())

	if err := svc.SetNote(context.Background(), "job-1", ""); err != nil {
		t.Fatalf("SetNote: %v", err)
	}
	if job.StaffNotes != nil {
		t.Fatalf("empty text must clear the note, got %q", *job.StaffNotes)
	}
	if job.HasStaffNotes() {
		t.Fatal("cleared note must not flag staff attention")
	}
}

func TestSetNoteUnknownJob(t *testing.T) {
	svc := NewNoteService(newFakeJobRepo(), zerolog.Nop())

	if err := svc.SetNote(context.Background(), "missing", "x"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("want ErrJobNotFound, got %v", err)
	}
}

// Notes are independent of status: setting one never touches the
// workflow fields.
func TestSetNoteLeavesWorkflowFieldsAlone(t *testing.T) {
	repo := newFakeJobRepo()
	job := seedJob(repo, "job-1", models.JobStatusCompleted.String(), time.Now())
	done := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	job.CompletedAt = &done
	svc := NewNoteService(repo, zerolog.Nop())

	if err := svc.SetNote(context.Background(), "job-1", "box on shelf 3"); err != nil {
		t.Fatalf("SetNote: %v", err)
	}
	if job.Status != models.JobStatusCompleted.String() {
		t.Fatalf("status touched: %q", job.Status)
	}
	if job.CompletedAt == nil || !job.CompletedAt.Equal(done) {
		t.Fatalf("completed_at touched: %v", job.CompletedAt)
	}
	if repo.statusWrites != 0 {
		t.Fatalf("status write issued by note manager: %d", repo.statusWrites)
	}
}
