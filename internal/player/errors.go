package player

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is not allowed in the current state
	ErrInvalidTransition = errors.New("invalid player transition")
	// ErrNotPlayable is returned for videos that are not published yet
	ErrNotPlayable = errors.New("video is not playable")
	// ErrUnsupportedRate is returned for playback rates outside PlaybackRates
	ErrUnsupportedRate = errors.New("unsupported playback rate")
	// ErrQueueIndex is returned when a queue position does not exist
	ErrQueueIndex = errors.New("queue index out of range")
)
