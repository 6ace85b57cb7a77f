package player

import "github.com/ytget/voidplay/internal/model"

// Phase is the player session phase
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoaded    Phase = "loaded"
	PhasePlaying   Phase = "playing"
	PhasePaused    Phase = "paused"
	PhaseCountdown Phase = "countdown"
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// IsActive reports whether a video is loaded
func (p Phase) IsActive() bool {
	return p != PhaseIdle
}

// State is a read-only snapshot of the player
type State struct {
	Phase      Phase
	SessionID  string
	Current    *model.Video
	Playing    bool
	Position   float64
	Duration   float64
	Volume     float64
	Muted      bool
	Rate       float64
	Fullscreen bool
	MiniPlayer bool
	Visible    bool
	Queue      []model.Video
	// Countdown is the remaining seconds of the autoplay countdown, zero when inactive
	Countdown int
}

// Next returns the video the countdown would advance to
func (s State) Next() (model.Video, bool) {
	if len(s.Queue) == 0 {
		return model.Video{}, false
	}
	return s.Queue[0], true
}
