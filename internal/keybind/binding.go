// Package keybind maps keyboard shortcuts on a Fyne canvas to player controls.
package keybind

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/voidplay/internal/player"
)

const (
	// SeekStep is the seek distance of the arrow keys in seconds
	SeekStep = 10.0
	// VolumeStep is the volume change of the arrow keys
	VolumeStep = 0.1
)

// Controls is the player surface driven by the keyboard
type Controls interface {
	Visible() bool
	Snapshot() player.State
	TogglePlay()
	SeekBy(delta float64)
	AdjustVolume(delta float64)
	ToggleMute()
	ToggleMiniPlayer()
	Close()
}

// Binding forwards canvas key events to Controls while a session is visible
type Binding struct {
	controls Controls

	mu       sync.Mutex
	canvas   fyne.Canvas
	previous func(*fyne.KeyEvent)
}

// New creates a detached binding
func New(controls Controls) *Binding {
	return &Binding{controls: controls}
}

// Attach installs the binding on canvas, chaining to the handler it replaces.
// Attaching again while attached does nothing.
func (b *Binding) Attach(canvas fyne.Canvas) (detach func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.canvas != nil {
		return b.Detach
	}
	b.canvas = canvas
	b.previous = canvas.OnTypedKey()
	canvas.SetOnTypedKey(b.onTypedKey)
	return b.Detach
}

// Detach restores the handler that was installed before Attach
func (b *Binding) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.canvas == nil {
		return
	}
	b.canvas.SetOnTypedKey(b.previous)
	b.canvas = nil
	b.previous = nil
}

// Attached reports whether the binding is installed
func (b *Binding) Attached() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.canvas != nil
}

func (b *Binding) onTypedKey(ev *fyne.KeyEvent) {
	if b.Handle(ev) {
		return
	}
	b.mu.Lock()
	previous := b.previous
	b.mu.Unlock()
	if previous != nil {
		previous(ev)
	}
}

// Handle applies ev to the controls and reports whether it was consumed
func (b *Binding) Handle(ev *fyne.KeyEvent) bool {
	if ev == nil || !b.controls.Visible() {
		return false
	}

	switch ev.Name {
	case fyne.KeySpace, fyne.KeyK:
		b.controls.TogglePlay()
	case fyne.KeyLeft:
		b.controls.SeekBy(-SeekStep)
	case fyne.KeyRight:
		b.controls.SeekBy(SeekStep)
	case fyne.KeyUp:
		b.controls.AdjustVolume(VolumeStep)
	case fyne.KeyDown:
		b.controls.AdjustVolume(-VolumeStep)
	case fyne.KeyM:
		b.controls.ToggleMute()
	case fyne.KeyEscape:
		if b.controls.Snapshot().MiniPlayer {
			b.controls.ToggleMiniPlayer()
		} else {
			b.controls.Close()
		}
	default:
		return false
	}
	return true
}
