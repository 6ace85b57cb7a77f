package ui

import (
	"testing"
	"time"

	"github.com/ytget/voidplay/internal/model"
	"github.com/ytget/voidplay/internal/player"
)

// idleScheduler never fires
type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func()) func() { return func() {} }

func TestAdvancePlayhead(t *testing.T) {
	c := player.NewController(idleScheduler{})
	v := model.Video{ID: "v-1", Duration: 3, Status: model.VideoStatusPublished}

	advancePlayhead(c)
	if c.Snapshot().Current != nil {
		t.Fatal("expected no video")
	}

	if err := c.Play(v, true); err != nil {
		t.Fatalf("play: %v", err)
	}
	for i := 0; i < 3; i++ {
		advancePlayhead(c)
	}
	s := c.Snapshot()
	if s.Position != 3 || !s.Playing {
		t.Fatalf("expected playing at 3s, got position=%v playing=%v", s.Position, s.Playing)
	}

	advancePlayhead(c)
	if c.Snapshot().Playing {
		t.Error("expected playback to pause at the end with an empty queue")
	}
}

func TestAdvancePlayheadUsesRate(t *testing.T) {
	c := player.NewController(idleScheduler{})
	if err := c.Play(model.Video{ID: "v-1", Duration: 60, Status: model.VideoStatusPublished}, true); err != nil {
		t.Fatalf("play: %v", err)
	}
	if err := c.SetPlaybackRate(2); err != nil {
		t.Fatalf("rate: %v", err)
	}

	advancePlayhead(c)
	if got := c.Snapshot().Position; got != 2 {
		t.Errorf("expected position 2, got %v", got)
	}

	c.TogglePlay()
	advancePlayhead(c)
	if got := c.Snapshot().Position; got != 2 {
		t.Errorf("paused playhead moved to %v", got)
	}
}
