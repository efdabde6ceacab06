package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
)

func newTestBoard(repo *fakeJobRepo, notifier *fakeNotifier) BoardService {
	workflow := newTestWorkflow(repo, notifier, time.Now())
	return NewBoardService(repo, workflow, zerolog.Nop())
}

func TestBoardSnapshotGroupsAndOrders(t *testing.T) {
	repo := newFakeJobRepo()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	seedJob(repo, "r-old", models.JobStatusReceived.String(), base)
	seedJob(repo, "r-new", models.JobStatusReceived.String(), base.Add(time.Hour))
	seedJob(repo, "p-1", models.JobStatusInProgress.String(), base.Add(2*time.Hour))
	seedJob(repo, "c-old", models.JobStatusCompleted.String(), base.Add(3*time.Hour))
	seedJob(repo, "c-new", models.JobStatusCompleted.String(), base.Add(4*time.Hour))

	board := newTestBoard(repo, &fakeNotifier{})
	snap, err := board.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if len(snap.Received) != 2 || snap.Received[0].ID != "r-old" || snap.Received[1].ID != "r-new" {
		t.Fatalf("received column: %+v", snap.Received)
	}
	if len(snap.Completed) != 2 || snap.Completed[0].ID != "c-new" || snap.Completed[1].ID != "c-old" {
		t.Fatalf("completed column: %+v", snap.Completed)
	}
	if len(snap.InProgress) != 1 || snap.InProgress[0].ID != "p-1" {
		t.Fatalf("in_progress column: %+v", snap.InProgress)
	}
}

func TestBoardDropTransitionsAndRefreshes(t *testing.T) {
	repo := newFakeJobRepo()
	notifier := &fakeNotifier{}
	seedJob(repo, "job-1", models.JobStatusReceived.String(), time.Now())
	board := newTestBoard(repo, notifier)

	snap, err := board.Drop(context.Background(), models.DragEvent{
		JobID:    "job-1",
		ToStatus: models.JobStatusInProgress.String(),
	})
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if len(snap.InProgress) != 1 || snap.InProgress[0].ID != "job-1" {
		t.Fatalf("job not in in_progress column after drop: %+v", snap)
	}
	if snap.InProgress[0].CompletedAt != nil {
		t.Fatal("completed_at must stay null")
	}
	if len(notifier.events) != 1 {
		t.Fatalf("want exactly 1 notification, got %d", len(notifier.events))
	}
}

func TestBoardDropSameColumnPersistsNothing(t *testing.T) {
	repo := newFakeJobRepo()
	notifier := &fakeNotifier{}
	seedJob(repo, "job-1", models.JobStatusReceived.String(), time.Now())
	board := newTestBoard(repo, notifier)

	if _, err := board.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if _, err := board.Drop(context.Background(), models.DragEvent{
		JobID:    "job-1",
		ToStatus: models.JobStatusReceived.String(),
	}); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if repo.statusWrites != 0 {
		t.Fatalf("same-column drop wrote %d times", repo.statusWrites)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("same-column drop scheduled %d notifications", len(notifier.events))
	}
}

func TestBoardDropFailureStillRefreshes(t *testing.T) {
	repo := newFakeJobRepo()
	seedJob(repo, "job-1", models.JobStatusReceived.String(), time.Now())
	board := newTestBoard(repo, &fakeNotifier{})

	// Unknown destination column: the transition is rejected but the
	// board must still come back reconciled with the store.
	snap, err := board.Drop(context.Background(), models.DragEvent{
		JobID:    "job-1",
		ToStatus: "archived",
	})
	if err == nil {
		t.Fatal("expected transition error")
	}
	if snap == nil {
		t.Fatal("expected a refreshed snapshot alongside the error")
	}
	if len(snap.Received) != 1 || snap.Received[0].ID != "job-1" {
		t.Fatalf("snapshot diverged from store: %+v", snap)
	}
}

func TestBoardDragGhostLookupLeavesRecordUntouched(t *testing.T) {
	repo := newFakeJobRepo()
	seedJob(repo, "job-1", models.JobStatusReceived.String(), time.Now())
	board := newTestBoard(repo, &fakeNotifier{})

	if _, err := board.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	card, ok := board.Lookup("job-1")
	if !ok {
		t.Fatal("Lookup missed a job present on the board")
	}
	card.Status = models.JobStatusCompleted.String()

	if repo.jobs["job-1"].Status != models.JobStatusReceived.String() {
		t.Fatal("lookup mutated the underlying record")
	}
	if fresh, _ := board.Lookup("job-1"); fresh.Status != models.JobStatusReceived.String() {
		t.Fatal("lookup returned a shared card")
	}
}

func TestBoardFlagsStaffAttention(t *testing.T) {
	repo := newFakeJobRepo()
	job := seedJob(repo, "job-1", models.JobStatusReceived.String(), time.Now())
	note := "waiting on filament restock"
	job.StaffNotes = &note
	seedJob(repo, "job-2", models.JobStatusReceived.String(), time.Now().Add(time.Minute))

	board := newTestBoard(repo, &fakeNotifier{})
	snap, err := board.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if !snap.Received[0].HasStaffNotes {
		t.Fatal("job with staff notes must be flagged")
	}
	if snap.Received[1].HasStaffNotes {
		t.Fatal("job without staff notes must not be flagged")
	}
}
