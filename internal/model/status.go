package model

// VideoStatus represents the lifecycle status of a catalog video
type VideoStatus string

const (
	// VideoStatusDiscovered means the video is known but not yet processed
	VideoStatusDiscovered VideoStatus = "discovered"

	// VideoStatusProcessing means the video is being transcoded
	VideoStatusProcessing VideoStatus = "processing"

	// VideoStatusPublished means the video is ready to watch
	VideoStatusPublished VideoStatus = "published"

	// VideoStatusFailed means processing failed
	VideoStatusFailed VideoStatus = "failed"
)

// String returns the string representation of VideoStatus
func (vs VideoStatus) String() string {
	return string(vs)
}

// IsPlayable returns true if a video in this status can be played
func (vs VideoStatus) IsPlayable() bool {
	return vs == VideoStatusPublished
}

// IsPending returns true if the video is still on its way to being published
func (vs VideoStatus) IsPending() bool {
	return vs == VideoStatusDiscovered || vs == VideoStatusProcessing
}

// JobStatus represents the status of an ingest job on the admin board
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusUploading  JobStatus = "uploading"
	JobStatusPublished  JobStatus = "published"
	JobStatusFailed     JobStatus = "failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is currently being worked on
func (js JobStatus) IsActive() bool {
	return js == JobStatusProcessing || js == JobStatusUploading
}

// IsFinished returns true if the job reached a terminal state (published or failed)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusPublished || js == JobStatusFailed
}
