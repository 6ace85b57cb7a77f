package jobs

import (
	"errors"
	"strings"
	"testing"

	"github.com/ytget/voidplay/internal/catalog"
	"github.com/ytget/voidplay/internal/model"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard(catalog.MockJobs())

	jobs := board.GetAll()
	if len(jobs) != 6 {
		t.Fatalf("Expected 6 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "job-1" || jobs[5].ID != "job-6" {
		t.Errorf("Expected jobs ordered by ID, got %s..%s", jobs[0].ID, jobs[5].ID)
	}
}

func TestAdd(t *testing.T) {
	board := NewBoard(nil)

	job, err := board.Add("v-7")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if job.Status != model.JobStatusPending || job.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("Expected pending job with %d attempts, got %+v", DefaultMaxAttempts, job)
	}

	_, err = board.Add("v-7")
	if !errors.Is(err, ErrJobExists) {
		t.Errorf("Expected ErrJobExists for duplicate video, got %v", err)
	}

	if _, exists := board.Get(job.ID); !exists {
		t.Error("Expected job to exist")
	}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "failed job", id: "job-5"},
		{name: "pending job", id: "job-3"},
		{name: "processing job", id: "job-1", wantErr: ErrNotRetryable},
		{name: "uploading job", id: "job-2", wantErr: ErrNotRetryable},
		{name: "published job", id: "job-6", wantErr: ErrNotRetryable},
		{name: "unknown job", id: "job-99", wantErr: ErrJobNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(catalog.MockJobs())

			job, err := board.Retry(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if job.Status != model.JobStatusPending || job.Attempts != 0 || job.Progress != 0 || job.Error != "" {
				t.Errorf("Expected reset job, got %+v", job)
			}
			if job.StartedAt != nil {
				t.Error("Expected start time cleared")
			}
		})
	}
}

func TestCancel(t *testing.T) {
	board := NewBoard(catalog.MockJobs())

	if err := board.Cancel("job-5"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, exists := board.Get("job-5"); exists {
		t.Error("Expected job to be removed")
	}
	if err := board.Cancel("job-5"); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("Expected ErrJobNotFound, got %v", err)
	}
	if err := board.Cancel("job-1"); !errors.Is(err, ErrJobActive) {
		t.Errorf("Expected ErrJobActive, got %v", err)
	}
}

func TestStats(t *testing.T) {
	board := NewBoard(catalog.MockJobs())
	stats := board.Stats(len(catalog.Corpus()))

	want := model.AdminStats{Pending: 2, Processing: 2, Failed: 1, Completed: 1, TotalVideos: 40, ActiveJobs: 2}
	if stats != want {
		t.Errorf("Expected %+v, got %+v", want, stats)
	}
}

func TestUpdateCallback(t *testing.T) {
	board := NewBoard(catalog.MockJobs())

	var updated []string
	board.SetUpdateCallback(func(job model.Job) {
		updated = append(updated, job.ID)
	})

	if _, err := board.Retry("job-5"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := board.Cancel("job-4"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.Join(updated, ",") != "job-5,job-4" {
		t.Errorf("Expected updates for job-5 and job-4, got %v", updated)
	}
}

func TestGenerateJobID(t *testing.T) {
	id1 := generateJobID()
	id2 := generateJobID()

	if id1 == id2 {
		t.Error("Expected different job IDs")
	}
	if !strings.HasPrefix(id1, "job-") {
		t.Errorf("Expected ID to start with 'job-', got: %s", id1)
	}
	if len(id1) != len("job-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("job-")+36, len(id1), id1)
	}
}
