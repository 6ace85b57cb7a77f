package feed

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	DefaultThreshold float32 = 0.1
	DefaultMargin    float32 = 100

	// LoadTimeout bounds a load started by the observer
	LoadTimeout = 30 * time.Second
)

// Options tune when the sentinel counts as visible
type Options struct {
	// Threshold is the visible fraction of the sentinel required to intersect
	Threshold float32
	// Margin grows the viewport on every side before intersecting
	Margin float32
}

// DefaultOptions returns the options used by the feed grid
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Margin: DefaultMargin}
}

// Rect is an axis-aligned rectangle in viewport coordinates
type Rect struct {
	X, Y, Width, Height float32
}

// Intersection is one visibility report for the sentinel
type Intersection struct {
	Ratio        float32
	Intersecting bool
}

// Intersect reports how much of target lies inside viewport grown by the
// configured margin
func Intersect(viewport, target Rect, opts Options) Intersection {
	left := viewport.X - opts.Margin
	top := viewport.Y - opts.Margin
	right := viewport.X + viewport.Width + opts.Margin
	bottom := viewport.Y + viewport.Height + opts.Margin

	w := minf(right, target.X+target.Width) - maxf(left, target.X)
	h := minf(bottom, target.Y+target.Height) - maxf(top, target.Y)
	if w < 0 || h < 0 {
		return Intersection{}
	}

	var ratio float32
	area := target.Width * target.Height
	if area > 0 {
		ratio = (w * h) / area
	} else {
		// zero-sized sentinel inside the grown viewport
		ratio = 1
	}
	if ratio > 1 {
		ratio = 1
	}
	return Intersection{Ratio: ratio, Intersecting: ratio > 0 && ratio >= opts.Threshold}
}

// VisibilitySource delivers intersection reports for the sentinel element
type VisibilitySource interface {
	Observe(opts Options, fn func(Intersection)) (unsubscribe func())
}

// Loader is the part of the pager the observer drives
type Loader interface {
	LoadMore(ctx context.Context) error
	HasMore() bool
}

// Observer triggers one LoadMore each time the sentinel enters the viewport.
// A finished load re-arms it, so a sentinel still in view after the page was
// appended loads again on the next intersecting report.
type Observer struct {
	source VisibilitySource
	loader Loader

	mu          sync.Mutex
	opts        Options
	unsubscribe func()
	visible     bool
	loading     bool
	closed      bool
	onStart     func()
	onLoad      func(error)
	done        sync.WaitGroup
}

// NewObserver subscribes to source and starts watching
func NewObserver(source VisibilitySource, loader Loader, opts Options) *Observer {
	o := &Observer{
		source: source,
		loader: loader,
		opts:   opts,
	}
	o.subscribe()
	return o
}

// SetStartCallback sets the callback invoked when a triggered load starts
func (o *Observer) SetStartCallback(callback func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onStart = callback
}

// SetLoadCallback sets the callback invoked when a triggered load completes
func (o *Observer) SetLoadCallback(callback func(error)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onLoad = callback
}

// Loading reports whether a triggered load is in flight
func (o *Observer) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// Options returns the current options
func (o *Observer) Options() Options {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opts
}

// SetOptions replaces the options and resubscribes with them
func (o *Observer) SetOptions(opts Options) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	unsubscribe := o.unsubscribe
	o.unsubscribe = nil
	o.opts = opts
	o.visible = false
	o.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	o.subscribe()
}

// Close stops observing. A load already in flight still completes.
func (o *Observer) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	unsubscribe := o.unsubscribe
	o.unsubscribe = nil
	o.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Wait blocks until every triggered load has returned
func (o *Observer) Wait() {
	o.done.Wait()
}

func (o *Observer) subscribe() {
	o.mu.Lock()
	opts := o.opts
	o.mu.Unlock()

	unsubscribe := o.source.Observe(opts, o.handle)

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		unsubscribe()
		return
	}
	o.unsubscribe = unsubscribe
	o.mu.Unlock()
}

func (o *Observer) handle(in Intersection) {
	o.mu.Lock()
	entered := in.Intersecting && !o.visible
	o.visible = in.Intersecting
	if o.closed || !entered || o.loading || !o.loader.HasMore() {
		o.mu.Unlock()
		return
	}
	o.loading = true
	o.done.Add(1)
	o.mu.Unlock()

	go o.load()
}

func (o *Observer) load() {
	defer o.done.Done()

	o.mu.Lock()
	start := o.onStart
	o.mu.Unlock()
	if start != nil {
		start()
	}

	ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
	err := o.loader.LoadMore(ctx)
	cancel()
	if err != nil {
		log.Printf("Sentinel load failed: %v", err)
	}

	o.mu.Lock()
	o.loading = false
	o.visible = false
	callback := o.onLoad
	o.mu.Unlock()

	if callback != nil {
		callback(err)
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
