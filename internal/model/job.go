package model

import "time"

// Job represents an ingest job tracked on the admin board
type Job struct {
	ID          string     `json:"id"`
	VideoID     string     `json:"video_id"`
	Status      JobStatus  `json:"status"`
	Attempts    int        `json:"attempts"`
	MaxAttempts int        `json:"max_attempts"`
	Progress    int        `json:"progress"` // 0 to 100
	Error       string     `json:"error,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CanRetry returns true when the job may be reset and queued again
func (j *Job) CanRetry() bool {
	return j.Status == JobStatusFailed || j.Status == JobStatusPending
}

// AdminStats aggregates job and catalog counters for the dashboard
type AdminStats struct {
	Pending     int `json:"pending"`
	Processing  int `json:"processing"`
	Failed      int `json:"failed"`
	Completed   int `json:"completed"`
	TotalVideos int `json:"total_videos"`
	ActiveJobs  int `json:"active_jobs"`
}
