package jobs

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/voidplay/internal/model"
)

// DefaultMaxAttempts is the attempt limit of jobs added without one
const DefaultMaxAttempts = 3

var (
	// ErrJobNotFound is returned for unknown job ids
	ErrJobNotFound = errors.New("job not found")
	// ErrJobActive is returned when an operation needs an idle job
	ErrJobActive = errors.New("job is active")
	// ErrNotRetryable is returned when retrying a job that is running or done
	ErrNotRetryable = errors.New("job cannot be retried")
	// ErrJobExists is returned when a video already has an unfinished job
	ErrJobExists = errors.New("job already exists")
)

// Board handles admin job operations
type Board struct {
	jobs      map[string]*model.Job
	jobsMutex sync.RWMutex
	onUpdate  func(model.Job)
}

// NewBoard creates a board holding the given jobs
func NewBoard(initial []model.Job) *Board {
	b := &Board{jobs: make(map[string]*model.Job, len(initial))}
	for _, j := range initial {
		job := j
		b.jobs[job.ID] = &job
	}
	return b
}

// SetUpdateCallback sets the callback function for job updates
func (b *Board) SetUpdateCallback(callback func(model.Job)) {
	b.jobsMutex.Lock()
	defer b.jobsMutex.Unlock()
	b.onUpdate = callback
}

// Add queues a pending job for a video
func (b *Board) Add(videoID string) (model.Job, error) {
	b.jobsMutex.Lock()
	for _, job := range b.jobs {
		if job.VideoID == videoID && !job.Status.IsFinished() {
			b.jobsMutex.Unlock()
			return model.Job{}, fmt.Errorf("%w for video: %s", ErrJobExists, videoID)
		}
	}

	job := &model.Job{
		ID:          generateJobID(),
		VideoID:     videoID,
		Status:      model.JobStatusPending,
		MaxAttempts: DefaultMaxAttempts,
	}
	b.jobs[job.ID] = job
	snapshot := *job
	b.jobsMutex.Unlock()

	b.notifyUpdate(snapshot)
	return snapshot, nil
}

// Get returns a job by ID
func (b *Board) Get(id string) (model.Job, bool) {
	b.jobsMutex.RLock()
	defer b.jobsMutex.RUnlock()
	job, exists := b.jobs[id]
	if !exists {
		return model.Job{}, false
	}
	return *job, true
}

// GetAll returns all jobs ordered by ID
func (b *Board) GetAll() []model.Job {
	b.jobsMutex.RLock()
	defer b.jobsMutex.RUnlock()

	jobs := make([]model.Job, 0, len(b.jobs))
	for _, job := range b.jobs {
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].ID < jobs[k].ID })
	return jobs
}

// Retry resets a failed or pending job and queues it again
func (b *Board) Retry(id string) (model.Job, error) {
	b.jobsMutex.Lock()
	job, exists := b.jobs[id]
	if !exists {
		b.jobsMutex.Unlock()
		return model.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	if !job.CanRetry() {
		status := job.Status
		b.jobsMutex.Unlock()
		return model.Job{}, fmt.Errorf("%w: %s is %s", ErrNotRetryable, id, status)
	}

	job.Status = model.JobStatusPending
	job.Attempts = 0
	job.Progress = 0
	job.Error = ""
	job.StartedAt = nil
	job.CompletedAt = nil
	snapshot := *job
	b.jobsMutex.Unlock()

	log.Printf("Job %s for video %s queued for retry", id, snapshot.VideoID)
	b.notifyUpdate(snapshot)
	return snapshot, nil
}

// Cancel removes a job that is not running
func (b *Board) Cancel(id string) error {
	b.jobsMutex.Lock()
	job, exists := b.jobs[id]
	if !exists {
		b.jobsMutex.Unlock()
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	if job.Status.IsActive() {
		status := job.Status
		b.jobsMutex.Unlock()
		return fmt.Errorf("%w: %s is %s", ErrJobActive, id, status)
	}
	snapshot := *job
	delete(b.jobs, id)
	b.jobsMutex.Unlock()

	log.Printf("Job %s cancelled", id)
	b.notifyUpdate(snapshot)
	return nil
}

// Stats aggregates job counters. totalVideos is the catalog size.
func (b *Board) Stats(totalVideos int) model.AdminStats {
	b.jobsMutex.RLock()
	defer b.jobsMutex.RUnlock()

	stats := model.AdminStats{TotalVideos: totalVideos}
	for _, job := range b.jobs {
		switch job.Status {
		case model.JobStatusPending:
			stats.Pending++
		case model.JobStatusFailed:
			stats.Failed++
		case model.JobStatusPublished:
			stats.Completed++
		}
		if job.Status.IsActive() {
			stats.Processing++
			stats.ActiveJobs++
		}
	}
	return stats
}

// notifyUpdate calls the update callback if set
func (b *Board) notifyUpdate(job model.Job) {
	b.jobsMutex.RLock()
	callback := b.onUpdate
	b.jobsMutex.RUnlock()

	if callback != nil {
		callback(job)
	}
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return "job-" + uuid.New().String()
}
