package player

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ytget/voidplay/internal/model"
)

// manualScheduler fires scheduled functions only when tick is called
type manualScheduler struct {
	mu    sync.Mutex
	tasks map[int]func()
	next  int
	total int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{tasks: make(map[int]func())}
}

func (m *manualScheduler) Every(d time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.total++
	m.tasks[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.tasks, id)
	}
}

func (m *manualScheduler) tick() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.tasks))
	for _, fn := range m.tasks {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (m *manualScheduler) active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func video(id string, duration int) model.Video {
	return model.Video{ID: id, Title: id, Duration: duration, Status: model.VideoStatusPublished}
}

func newTestController() (*Controller, *manualScheduler) {
	s := newManualScheduler()
	return NewController(s), s
}

func TestPlay(t *testing.T) {
	c, _ := newTestController()

	if err := c.Play(video("a", 100), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := c.Snapshot()
	if s.Current == nil || s.Current.ID != "a" {
		t.Fatalf("expected current video a, got %+v", s.Current)
	}
	if s.Phase != PhasePlaying || !s.Playing {
		t.Errorf("expected playing, got %s", s.Phase)
	}
	if !s.Visible {
		t.Error("expected visible")
	}
	if s.SessionID == "" {
		t.Error("expected session id")
	}

	if err := c.Play(video("b", 50), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next := c.Snapshot()
	if next.Phase != PhaseLoaded || next.Playing {
		t.Errorf("expected loaded, got %s", next.Phase)
	}
	if next.Position != 0 || next.Duration != 50 {
		t.Errorf("expected position 0 duration 50, got %v %v", next.Position, next.Duration)
	}
	if next.SessionID != s.SessionID {
		t.Error("expected session to continue while visible")
	}
}

func TestPlayKeepsQueue(t *testing.T) {
	c, _ := newTestController()
	if err := c.Enqueue(video("q", 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Play(video("a", 100), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(c.Snapshot().Queue); got != 1 {
		t.Errorf("expected queue of 1, got %d", got)
	}
}

func TestPlayRejectsNonPublished(t *testing.T) {
	statuses := []model.VideoStatus{
		model.VideoStatusProcessing,
		model.VideoStatusDiscovered,
		model.VideoStatusFailed,
	}

	for _, status := range statuses {
		t.Run(status.String(), func(t *testing.T) {
			c, _ := newTestController()
			if err := c.Play(video("a", 100), true); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			before := c.Snapshot()

			err := c.Play(model.Video{ID: "x", Duration: 10, Status: status}, true)
			if !errors.Is(err, ErrNotPlayable) || !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrNotPlayable, got %v", err)
			}

			after := c.Snapshot()
			if after.Current.ID != before.Current.ID || after.Playing != before.Playing {
				t.Error("expected state unchanged after rejected play")
			}
		})
	}
}

func TestClose(t *testing.T) {
	c, _ := newTestController()
	_ = c.Enqueue(video("q", 10))
	_ = c.Play(video("a", 100), true)
	c.SetVolume(0.4)
	_ = c.SetPlaybackRate(1.5)
	first := c.Snapshot().SessionID

	c.Close()
	s := c.Snapshot()
	if s.Phase != PhaseIdle || s.Current != nil || s.Visible || s.Playing {
		t.Errorf("expected idle hidden player, got %+v", s)
	}
	if len(s.Queue) != 1 || s.Volume != 0.4 || s.Rate != 1.5 {
		t.Errorf("expected queue, volume and rate kept, got %+v", s)
	}

	_ = c.Play(video("b", 100), true)
	if c.Snapshot().SessionID == first {
		t.Error("expected a new session after close")
	}
}

func TestTogglePlay(t *testing.T) {
	c, _ := newTestController()

	c.TogglePlay()
	if c.Snapshot().Phase != PhaseIdle {
		t.Error("expected toggle to be a no-op when idle")
	}

	_ = c.Play(video("a", 100), true)
	c.Seek(30)
	c.TogglePlay()
	if s := c.Snapshot(); s.Playing || s.Phase != PhasePaused {
		t.Errorf("expected paused, got %s", s.Phase)
	}
	c.TogglePlay()
	if s := c.Snapshot(); !s.Playing || s.Phase != PhasePlaying {
		t.Errorf("expected playing, got %s", s.Phase)
	}
}

func TestSeekClamps(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{name: "negative", t: -20, want: 0},
		{name: "inside", t: 42.5, want: 42.5},
		{name: "beyond", t: 1e9, want: 100},
		{name: "exact end", t: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestController()
			_ = c.Play(video("a", 100), false)
			c.Seek(tt.t)
			s := c.Snapshot()
			if s.Position != tt.want {
				t.Errorf("expected %v, got %v", tt.want, s.Position)
			}
			if s.Playing {
				t.Error("seek must not change play state")
			}
		})
	}
}

func TestSeekBy(t *testing.T) {
	c, _ := newTestController()
	_ = c.Play(video("a", 100), true)
	c.SeekBy(-10)
	if got := c.Snapshot().Position; got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	c.SeekBy(25)
	c.SeekBy(10)
	if got := c.Snapshot().Position; got != 35 {
		t.Errorf("expected 35, got %v", got)
	}
}

func TestSetVolume(t *testing.T) {
	tests := []struct {
		name      string
		v         float64
		wantVol   float64
		wantMuted bool
	}{
		{name: "inside", v: 0.5, wantVol: 0.5},
		{name: "above", v: 3, wantVol: 1},
		{name: "below", v: -1, wantVol: 0, wantMuted: true},
		{name: "zero", v: 0, wantVol: 0, wantMuted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestController()
			c.SetVolume(tt.v)
			s := c.Snapshot()
			if s.Volume != tt.wantVol || s.Muted != tt.wantMuted {
				t.Errorf("expected volume %v muted %v, got %v %v", tt.wantVol, tt.wantMuted, s.Volume, s.Muted)
			}
		})
	}
}

func TestVolumeDoesNotUnmute(t *testing.T) {
	c, _ := newTestController()
	c.SetVolume(0)
	c.SetVolume(0.7)
	s := c.Snapshot()
	if !s.Muted {
		t.Error("expected muted to stay set after non-zero volume")
	}

	c.ToggleMute()
	s = c.Snapshot()
	if s.Muted || s.Volume != 0.7 {
		t.Errorf("expected unmuted at 0.7, got %v %v", s.Muted, s.Volume)
	}
}

func TestAdjustVolume(t *testing.T) {
	c, _ := newTestController()
	c.SetVolume(0.5)
	c.AdjustVolume(0.1)
	c.AdjustVolume(0.1)
	if got := c.Snapshot().Volume; got != 0.7 {
		t.Errorf("expected 0.7, got %v", got)
	}
	for i := 0; i < 10; i++ {
		c.AdjustVolume(-0.1)
	}
	if s := c.Snapshot(); s.Volume != 0 || !s.Muted {
		t.Errorf("expected muted at zero, got %v %v", s.Volume, s.Muted)
	}
}

func TestSetPlaybackRate(t *testing.T) {
	c, _ := newTestController()
	for _, r := range PlaybackRates {
		if err := c.SetPlaybackRate(r); err != nil {
			t.Errorf("rate %v: unexpected error: %v", r, err)
		}
	}

	err := c.SetPlaybackRate(3)
	if !errors.Is(err, ErrUnsupportedRate) || !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrUnsupportedRate, got %v", err)
	}
	if got := c.Snapshot().Rate; got != 2 {
		t.Errorf("expected rate unchanged at 2, got %v", got)
	}
}

func TestDisplayFlags(t *testing.T) {
	c, _ := newTestController()
	_ = c.Play(video("a", 100), true)
	c.ToggleMiniPlayer()
	c.ToggleFullscreen()
	c.TogglePlay()

	s := c.Snapshot()
	if !s.MiniPlayer || !s.Fullscreen {
		t.Error("expected display flags to persist across pause")
	}
}

func TestEnqueueRejectsNonPublished(t *testing.T) {
	c, _ := newTestController()
	err := c.Enqueue(model.Video{ID: "p", Status: model.VideoStatusProcessing})
	if !errors.Is(err, ErrNotPlayable) {
		t.Errorf("expected ErrNotPlayable, got %v", err)
	}
	if len(c.Snapshot().Queue) != 0 {
		t.Error("expected empty queue")
	}
}

func TestAdvance(t *testing.T) {
	c, _ := newTestController()
	_ = c.Play(video("a", 100), false)

	c.Advance()
	s := c.Snapshot()
	if s.Current.ID != "a" || s.Playing {
		t.Errorf("expected advance on empty queue to be a no-op, got %+v", s)
	}

	_ = c.Enqueue(video("b", 60))
	_ = c.Enqueue(video("c", 60))
	c.Advance()
	s = c.Snapshot()
	if s.Current.ID != "b" || !s.Playing {
		t.Errorf("expected b playing, got %+v", s)
	}
	if len(s.Queue) != 1 || s.Queue[0].ID != "c" {
		t.Errorf("expected queue [c], got %v", s.Queue)
	}
}

func TestPlayFromQueue(t *testing.T) {
	c, _ := newTestController()
	_ = c.Play(video("a", 100), false)
	_ = c.Enqueue(video("b", 60))
	_ = c.Enqueue(video("c", 60))
	_ = c.Enqueue(video("d", 60))

	if err := c.PlayFromQueue(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := c.Snapshot()
	if s.Current.ID != "c" {
		t.Errorf("expected c, got %s", s.Current.ID)
	}
	if len(s.Queue) != 2 || s.Queue[0].ID != "b" || s.Queue[1].ID != "d" {
		t.Errorf("expected queue [b d], got %v", s.Queue)
	}

	if err := c.PlayFromQueue(5); !errors.Is(err, ErrQueueIndex) {
		t.Errorf("expected ErrQueueIndex, got %v", err)
	}
}

func TestCountdownExpiresAndAdvancesOnce(t *testing.T) {
	c, sched := newTestController()
	_ = c.Play(video("a", 100), true)
	_ = c.Enqueue(video("b", 60))

	c.UpdateTime(99)
	s := c.Snapshot()
	if s.Phase != PhaseCountdown || s.Countdown != CountdownSeconds {
		t.Fatalf("expected countdown at %d, got %s %d", CountdownSeconds, s.Phase, s.Countdown)
	}

	// further clock reports inside the window do not start another timer
	c.UpdateTime(99.5)
	if sched.total != 1 {
		t.Errorf("expected a single countdown timer, got %d", sched.total)
	}

	for i := 0; i < CountdownSeconds-1; i++ {
		sched.tick()
	}
	if got := c.Snapshot().Current.ID; got != "a" {
		t.Fatalf("expected a before expiry, got %s", got)
	}
	if got := c.Snapshot().Countdown; got != 1 {
		t.Errorf("expected 1 second left, got %d", got)
	}

	sched.tick()
	s = c.Snapshot()
	if s.Current.ID != "b" || !s.Playing {
		t.Errorf("expected b playing after expiry, got %+v", s)
	}
	if len(s.Queue) != 0 {
		t.Errorf("expected empty queue, got %v", s.Queue)
	}
	if sched.active() != 0 {
		t.Error("expected countdown timer stopped")
	}

	sched.tick()
	if got := c.Snapshot().Current.ID; got != "b" {
		t.Errorf("expected no second advance, got %s", got)
	}
}

func TestCountdownCancel(t *testing.T) {
	c, sched := newTestController()
	_ = c.Play(video("a", 100), true)
	_ = c.Enqueue(video("b", 60))
	c.Seek(99)

	sched.tick()
	c.CancelCountdown()

	s := c.Snapshot()
	if s.Current.ID != "a" {
		t.Errorf("expected current unchanged, got %s", s.Current.ID)
	}
	if s.Playing || s.Phase != PhasePaused {
		t.Errorf("expected paused after cancel, got %s", s.Phase)
	}
	if s.Countdown != 0 || sched.active() != 0 {
		t.Error("expected countdown cleared")
	}

	for i := 0; i < CountdownSeconds; i++ {
		sched.tick()
	}
	if got := c.Snapshot().Current.ID; got != "a" {
		t.Errorf("expected no advance after cancel, got %s", got)
	}

	// staying at the end does not restart it
	c.Seek(99.5)
	if sched.active() != 0 {
		t.Error("expected no restart without leaving the end")
	}
}

func TestCountdownRestartsOnReentry(t *testing.T) {
	c, sched := newTestController()
	_ = c.Play(video("a", 100), true)
	_ = c.Enqueue(video("b", 60))

	c.Seek(99)
	sched.tick()
	sched.tick()
	if got := c.Snapshot().Countdown; got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	c.Seek(50)
	if s := c.Snapshot(); s.Countdown != 0 || s.Phase == PhaseCountdown {
		t.Errorf("expected countdown cancelled after seeking back, got %d", s.Countdown)
	}

	c.Seek(99)
	if got := c.Snapshot().Countdown; got != CountdownSeconds {
		t.Errorf("expected restart from %d, got %d", CountdownSeconds, got)
	}
	if sched.active() != 1 {
		t.Errorf("expected one active timer, got %d", sched.active())
	}
}

func TestCountdownNeedsQueue(t *testing.T) {
	c, sched := newTestController()
	_ = c.Play(video("a", 100), true)
	c.Seek(99)
	if sched.total != 0 {
		t.Error("expected no countdown with an empty queue")
	}

	_ = c.Enqueue(video("b", 60))
	if c.Snapshot().Phase != PhaseCountdown {
		t.Error("expected countdown once the queue fills at the end")
	}

	c.ClearQueue()
	if c.Snapshot().Phase == PhaseCountdown || sched.active() != 0 {
		t.Error("expected countdown cancelled when the queue empties")
	}
}

func TestCloseCancelsCountdown(t *testing.T) {
	c, sched := newTestController()
	_ = c.Play(video("a", 100), true)
	_ = c.Enqueue(video("b", 60))
	c.Seek(99)

	c.Close()
	if sched.active() != 0 {
		t.Error("expected countdown stopped on close")
	}
	for i := 0; i < CountdownSeconds; i++ {
		sched.tick()
	}
	if s := c.Snapshot(); s.Current != nil {
		t.Errorf("expected no advance after close, got %s", s.Current.ID)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	sched := newManualScheduler()
	c := NewController(sched)
	_ = c.Play(video("a", 100), true)
	_ = c.Enqueue(video("b", 60))
	c.Seek(99)

	sched.mu.Lock()
	stale := sched.tasks[0]
	sched.mu.Unlock()

	c.Seek(10)
	c.Seek(99)
	stale()
	if got := c.Snapshot().Countdown; got != CountdownSeconds {
		t.Errorf("expected stale tick ignored, got %d", got)
	}
}

func TestUpdateCallback(t *testing.T) {
	c, _ := newTestController()
	var phases []Phase
	c.SetUpdateCallback(func(s State) { phases = append(phases, s.Phase) })

	_ = c.Play(video("a", 100), true)
	c.TogglePlay()
	c.Close()

	want := []Phase{PhasePlaying, PhaseLoaded, PhaseIdle}
	if len(phases) != len(want) {
		t.Fatalf("expected %v, got %v", want, phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("update %d: expected %s, got %s", i, want[i], phases[i])
		}
	}
}
