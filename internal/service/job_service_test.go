package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thewondry/job-service/internal/models"
)

func newTestJobService(jobRepo *fakeJobRepo, fileRepo *fakeFileRepo, storage *fakeStorage) JobService {
	fileService := NewFileService(fileRepo, jobRepo, storage, zerolog.Nop())
	svc := NewJobService(jobRepo, fileService, zerolog.Nop()).(*jobService)
	svc.now = func() time.Time { return time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC) }
	return svc
}

func TestSubmitPersonalPrintJob(t *testing.T) {
	jobRepo := newFakeJobRepo()
	fileRepo := &fakeFileRepo{}
	storage := newFakeStorage()
	svc := newTestJobService(jobRepo, fileRepo, storage)

	sub := completeSubmission()
	files := []models.SubmissionFile{{Name: "bracket.stl", Content: []byte("solid bracket")}}

	if got := Completion(sub, len(files)); got != 100 {
		t.Fatalf("completion: want 100, got %d", got)
	}

	resp, err := svc.SubmitJob(context.Background(), sub, files)
	if err != nil {
		t.Fatalf("SubmitJob: %v", err)
	}
	if resp.Status != models.JobStatusReceived.String() {
		t.Fatalf("status: want received, got %q", resp.Status)
	}
	if resp.Files != 1 {
		t.Fatalf("files attached: want 1, got %d", resp.Files)
	}

	job := jobRepo.jobs[resp.ID]
	if job == nil {
		t.Fatal("job row missing")
	}
	if job.LabName != nil {
		t.Fatalf("lab_name must be null for a personal project, got %q", *job.LabName)
	}
	if job.Material != nil {
		t.Fatalf("material must be null for a 3D print, got %q", *job.Material)
	}
	if job.CompletedAt != nil {
		t.Fatal("completed_at must be null at intake")
	}
	if _, ok := storage.objects[resp.ID+"/bracket.stl"]; !ok {
		t.Fatal("design file not stored under <job-id>/<filename>")
	}
}

func TestSubmitRejectsIncompleteSubmission(t *testing.T) {
	jobRepo := newFakeJobRepo()
	svc := newTestJobService(jobRepo, &fakeFileRepo{}, newFakeStorage())

	sub := completeSubmission()
	sub.Purpose = models.PurposeVUMC // activates lab fields, all empty

	_, err := svc.SubmitJob(context.Background(), sub, []models.SubmissionFile{{Name: "a.stl", Content: []byte("a")}})
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(jobRepo.jobs) != 0 {
		t.Fatal("validation failure must happen before any store call")
	}
}

func TestSubmitResolvesOtherOverrides(t *testing.T) {
	jobRepo := newFakeJobRepo()
	svc := newTestJobService(jobRepo, &fakeFileRepo{}, newFakeStorage())

	sub := completeSubmission()
	sub.School = models.OtherOption
	sub.SchoolOther = "Fisk University"
	sub.JobType = string(models.JobTypeLaserCut)
	sub.Material = models.OtherOption
	sub.MaterialOther = "Cork (1/8 inch)"

	resp, err := svc.SubmitJob(context.Background(), sub, []models.SubmissionFile{{Name: "panel.dxf", Content: []byte("dxf")}})
	if err != nil {
		t.Fatalf("SubmitJob: %v", err)
	}

	job := jobRepo.jobs[resp.ID]
	if job.School != "Fisk University" {
		t.Fatalf("school: want override text, got %q", job.School)
	}
	if job.Material == nil || *job.Material != "Cork (1/8 inch)" {
		t.Fatalf("material: want override text, got %v", job.Material)
	}
}

func TestSubmitSecondFileFailureKeepsJobAndFirstAttachment(t *testing.T) {
	jobRepo := newFakeJobRepo()
	fileRepo := &fakeFileRepo{}
	storage := newFakeStorage()
	storage.failOn = 2
	svc := newTestJobService(jobRepo, fileRepo, storage)

	files := []models.SubmissionFile{
		{Name: "top.stl", Content: []byte("top")},
		{Name: "middle.stl", Content: []byte("middle")},
		{Name: "bottom.stl", Content: []byte("bottom")},
	}

	_, err := svc.SubmitJob(context.Background(), completeSubmission(), files)
	if err == nil {
		t.Fatal("expected failure on second upload")
	}

	if len(jobRepo.jobs) != 1 {
		t.Fatalf("job row must survive partial failure, have %d rows", len(jobRepo.jobs))
	}
	if len(fileRepo.records) != 1 {
		t.Fatalf("want exactly 1 attachment record, got %d", len(fileRepo.records))
	}
	if fileRepo.records[0].FileName != "top.stl" {
		t.Fatalf("surviving attachment: want top.stl, got %q", fileRepo.records[0].FileName)
	}
	if storage.uploads != 2 {
		t.Fatalf("third upload must not be attempted, saw %d upload calls", storage.uploads)
	}
}

func TestGetJobByIDIncludesAttachments(t *testing.T) {
	jobRepo := newFakeJobRepo()
	fileRepo := &fakeFileRepo{}
	svc := newTestJobService(jobRepo, fileRepo, newFakeStorage())

	resp, err := svc.SubmitJob(context.Background(), completeSubmission(),
		[]models.SubmissionFile{{Name: "bracket.stl", Content: []byte("solid")}})
	if err != nil {
		t.Fatalf("SubmitJob: %v", err)
	}

	detail, err := svc.GetJobByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("GetJobByID: %v", err)
	}
	if detail.Job.ID != resp.ID {
		t.Fatalf("job id mismatch: %q vs %q", detail.Job.ID, resp.ID)
	}
	if len(detail.Files) != 1 || detail.Files[0].FilePath != resp.ID+"/bracket.stl" {
		t.Fatalf("unexpected attachments: %+v", detail.Files)
	}
}

func TestFormOptionsCatalog(t *testing.T) {
	svc := newTestJobService(newFakeJobRepo(), &fakeFileRepo{}, newFakeStorage())

	opts := svc.FormOptions()
	if len(opts.Schools) == 0 || opts.Schools[len(opts.Schools)-1] != models.OtherOption {
		t.Fatalf("schools must end with the Other option: %v", opts.Schools)
	}
	if len(opts.AcceptedExtensions) != 4 {
		t.Fatalf("want 4 accepted extensions, got %v", opts.AcceptedExtensions)
	}
}
