package player

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/voidplay/internal/model"
)

const (
	// CountdownSeconds is where the autoplay countdown starts
	CountdownSeconds = 5
	// CountdownInterval is the countdown tick period
	CountdownInterval = time.Second

	DefaultVolume = 1.0
	DefaultRate   = 1.0
)

// PlaybackRates lists the accepted playback rates
var PlaybackRates = []float64{0.5, 0.75, 1, 1.25, 1.5, 2}

// IsSupportedRate reports whether rate is one of PlaybackRates
func IsSupportedRate(rate float64) bool {
	for _, r := range PlaybackRates {
		if r == rate {
			return true
		}
	}
	return false
}

// Controller owns one player session. All mutation goes through its methods.
type Controller struct {
	mu        sync.Mutex
	scheduler Scheduler

	current    *model.Video
	sessionID  string
	playing    bool
	position   float64
	duration   float64
	volume     float64
	muted      bool
	rate       float64
	fullscreen bool
	mini       bool
	visible    bool
	queue      []model.Video

	atEnd         bool
	countdown     int
	countdownGen  uint64
	countdownStop func()

	onUpdate func(State)
}

// NewController creates an idle player. A nil scheduler ticks on the real clock.
func NewController(scheduler Scheduler) *Controller {
	if scheduler == nil {
		scheduler = NewClockScheduler(nil)
	}
	return &Controller{
		scheduler: scheduler,
		volume:    DefaultVolume,
		rate:      DefaultRate,
	}
}

// SetUpdateCallback sets the callback invoked with a snapshot after every change
func (c *Controller) SetUpdateCallback(callback func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

// Snapshot returns the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Visible reports whether a session is shown
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Play loads video and starts it when autoPlay is set. The queue is kept.
func (c *Controller) Play(video model.Video, autoPlay bool) error {
	if !video.IsPlayable() {
		return fmt.Errorf("%w: %w: %s is %s", ErrInvalidTransition, ErrNotPlayable, video.ID, video.Status)
	}

	c.mu.Lock()
	c.playLocked(video, autoPlay)
	c.mu.Unlock()

	c.notify()
	return nil
}

// Close ends the session. Queue, volume and rate are kept for the next Play.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.current != nil {
		log.Printf("Player session %s closed at %.0fs", c.sessionID, c.position)
	}
	c.cancelCountdownLocked()
	c.atEnd = false
	c.current = nil
	c.sessionID = ""
	c.playing = false
	c.position = 0
	c.duration = 0
	c.fullscreen = false
	c.mini = false
	c.visible = false
	c.mu.Unlock()

	c.notify()
}

// TogglePlay flips between playing and paused. It does nothing when idle.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	c.playing = !c.playing
	c.mu.Unlock()

	c.notify()
}

// Seek moves the playhead, clamped to [0, duration]
func (c *Controller) Seek(t float64) {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	c.position = clamp(t, 0, c.duration)
	c.checkCountdownLocked()
	c.mu.Unlock()

	c.notify()
}

// SeekBy moves the playhead relative to its current position
func (c *Controller) SeekBy(delta float64) {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	c.position = clamp(c.position+delta, 0, c.duration)
	c.checkCountdownLocked()
	c.mu.Unlock()

	c.notify()
}

// UpdateTime reports the playhead position from the media clock
func (c *Controller) UpdateTime(t float64) {
	c.Seek(t)
}

// SetVolume stores v clamped to [0, 1]. Zero mutes; other values leave mute alone.
func (c *Controller) SetVolume(v float64) {
	c.mu.Lock()
	c.volume = clamp(v, 0, 1)
	if c.volume == 0 {
		c.muted = true
	}
	c.mu.Unlock()

	c.notify()
}

// AdjustVolume changes the volume by delta
func (c *Controller) AdjustVolume(delta float64) {
	c.mu.Lock()
	v := c.volume + delta
	c.mu.Unlock()

	// round away float drift from repeated 0.1 steps
	c.SetVolume(math.Round(v*100) / 100)
}

// ToggleMute flips muted without touching the stored volume
func (c *Controller) ToggleMute() {
	c.mu.Lock()
	c.muted = !c.muted
	c.mu.Unlock()

	c.notify()
}

// SetPlaybackRate sets one of PlaybackRates
func (c *Controller) SetPlaybackRate(rate float64) error {
	if !IsSupportedRate(rate) {
		return fmt.Errorf("%w: %w: %v", ErrInvalidTransition, ErrUnsupportedRate, rate)
	}

	c.mu.Lock()
	c.rate = rate
	c.mu.Unlock()

	c.notify()
	return nil
}

// ToggleMiniPlayer flips the mini-player flag
func (c *Controller) ToggleMiniPlayer() {
	c.mu.Lock()
	c.mini = !c.mini
	c.mu.Unlock()

	c.notify()
}

// ToggleFullscreen flips the fullscreen flag
func (c *Controller) ToggleFullscreen() {
	c.mu.Lock()
	c.fullscreen = !c.fullscreen
	c.mu.Unlock()

	c.notify()
}

// Enqueue appends video to the queue tail
func (c *Controller) Enqueue(video model.Video) error {
	if !video.IsPlayable() {
		return fmt.Errorf("%w: %w: %s is %s", ErrInvalidTransition, ErrNotPlayable, video.ID, video.Status)
	}

	c.mu.Lock()
	c.queue = append(c.queue, video)
	c.checkCountdownLocked()
	c.mu.Unlock()

	c.notify()
	return nil
}

// ClearQueue empties the queue and cancels a pending countdown
func (c *Controller) ClearQueue() {
	c.mu.Lock()
	c.queue = nil
	c.checkCountdownLocked()
	c.mu.Unlock()

	c.notify()
}

// Advance plays the queue head. It does nothing when the queue is empty.
func (c *Controller) Advance() {
	c.mu.Lock()
	advanced := c.advanceLocked()
	c.mu.Unlock()

	if advanced {
		c.notify()
	}
}

// PlayFromQueue removes the item at index from the queue and plays it
func (c *Controller) PlayFromQueue(index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.queue) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrQueueIndex, index)
	}
	next := c.queue[index]
	c.queue = append(c.queue[:index:index], c.queue[index+1:]...)
	c.playLocked(next, true)
	c.mu.Unlock()

	c.notify()
	return nil
}

// CancelCountdown stops the autoplay countdown without advancing and pauses
func (c *Controller) CancelCountdown() {
	c.mu.Lock()
	if c.countdownStop == nil {
		c.mu.Unlock()
		return
	}
	c.cancelCountdownLocked()
	c.playing = false
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) playLocked(video model.Video, autoPlay bool) {
	c.cancelCountdownLocked()

	if c.current == nil {
		c.sessionID = newSessionID()
		log.Printf("Player session %s opened with %s", c.sessionID, video.ID)
	}

	v := video
	c.atEnd = false
	c.current = &v
	c.position = 0
	c.duration = float64(video.Duration)
	c.playing = autoPlay
	c.visible = true
	c.checkCountdownLocked()
}

func (c *Controller) advanceLocked() bool {
	if len(c.queue) == 0 {
		return false
	}
	next := c.queue[0]
	c.queue = c.queue[1:]
	c.playLocked(next, true)
	return true
}

// checkCountdownLocked starts the countdown when the end condition becomes
// true and cancels it when the condition stops holding. A cancelled countdown
// stays off until the condition is left and entered again.
func (c *Controller) checkCountdownLocked() {
	atEnd := c.current != nil && len(c.queue) > 0 && c.duration > 0 && c.position >= c.duration-1
	entered := atEnd && !c.atEnd
	c.atEnd = atEnd

	switch {
	case entered:
		c.startCountdownLocked()
	case !atEnd:
		c.cancelCountdownLocked()
	}
}

func (c *Controller) startCountdownLocked() {
	c.cancelCountdownLocked()

	c.countdownGen++
	gen := c.countdownGen
	c.countdown = CountdownSeconds
	c.countdownStop = c.scheduler.Every(CountdownInterval, func() {
		c.tick(gen)
	})
}

func (c *Controller) cancelCountdownLocked() {
	if c.countdownStop != nil {
		c.countdownStop()
		c.countdownStop = nil
	}
	c.countdown = 0
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.countdownGen || c.countdownStop == nil {
		c.mu.Unlock()
		return
	}
	c.countdown--
	if c.countdown <= 0 {
		c.cancelCountdownLocked()
		c.advanceLocked()
	}
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) phaseLocked() Phase {
	switch {
	case c.current == nil:
		return PhaseIdle
	case c.countdownStop != nil:
		return PhaseCountdown
	case c.playing:
		return PhasePlaying
	case c.position == 0:
		return PhaseLoaded
	default:
		return PhasePaused
	}
}

func (c *Controller) stateLocked() State {
	s := State{
		Phase:      c.phaseLocked(),
		SessionID:  c.sessionID,
		Playing:    c.playing,
		Position:   c.position,
		Duration:   c.duration,
		Volume:     c.volume,
		Muted:      c.muted,
		Rate:       c.rate,
		Fullscreen: c.fullscreen,
		MiniPlayer: c.mini,
		Visible:    c.visible,
		Queue:      append([]model.Video(nil), c.queue...),
		Countdown:  c.countdown,
	}
	if c.current != nil {
		v := *c.current
		s.Current = &v
	}
	return s
}

func (c *Controller) notify() {
	c.mu.Lock()
	callback := c.onUpdate
	if callback == nil {
		c.mu.Unlock()
		return
	}
	s := c.stateLocked()
	c.mu.Unlock()

	callback(s)
}

func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
