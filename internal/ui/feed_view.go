package ui

import (
	"context"
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voidplay/internal/feed"
	"github.com/ytget/voidplay/internal/model"
)

// scrollVisibility reports how much of the sentinel is inside a scroll's viewport.
// The sentinel must be a direct child of the scroll content.
type scrollVisibility struct {
	scroll   *container.Scroll
	sentinel fyne.CanvasObject

	mu   sync.Mutex
	subs map[int]visibilitySub
	next int
}

type visibilitySub struct {
	opts feed.Options
	fn   func(feed.Intersection)
}

func newScrollVisibility(scroll *container.Scroll, sentinel fyne.CanvasObject) *scrollVisibility {
	v := &scrollVisibility{
		scroll:   scroll,
		sentinel: sentinel,
		subs:     make(map[int]visibilitySub),
	}
	previous := scroll.OnScrolled
	scroll.OnScrolled = func(pos fyne.Position) {
		if previous != nil {
			previous(pos)
		}
		v.Check()
	}
	return v
}

// Observe registers fn for intersection reports
func (v *scrollVisibility) Observe(opts feed.Options, fn func(feed.Intersection)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.next
	v.next++
	v.subs[id] = visibilitySub{opts: opts, fn: fn}

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
		})
	}
}

// Check reports the current intersection to every subscriber. It must run on
// the UI goroutine.
func (v *scrollVisibility) Check() {
	size := v.scroll.Size()
	if size.Width <= 0 || size.Height <= 0 || !v.sentinel.Visible() {
		return
	}
	viewport := feed.Rect{X: v.scroll.Offset.X, Y: v.scroll.Offset.Y, Width: size.Width, Height: size.Height}
	pos := v.sentinel.Position()
	sz := v.sentinel.Size()
	target := feed.Rect{X: pos.X, Y: pos.Y, Width: sz.Width, Height: sz.Height}

	v.mu.Lock()
	subs := make([]visibilitySub, 0, len(v.subs))
	for _, s := range v.subs {
		subs = append(subs, s)
	}
	v.mu.Unlock()

	for _, s := range subs {
		s.fn(feed.Intersect(viewport, target, s.opts))
	}
}

// FeedView is the infinite feed: a card grid followed by the sentinel
type FeedView struct {
	pager        *feed.Pager
	variant      feed.Variant
	localization *Localization

	grid        *CardGrid
	statusLabel *widget.Label
	retryBtn    *widget.Button
	sentinel    *fyne.Container
	scroll      *container.Scroll
	visibility  *scrollVisibility
	observer    *feed.Observer

	mu      sync.Mutex
	lastErr error
}

// NewFeedView creates the feed view over pager
func NewFeedView(pager *feed.Pager, localization *Localization) *FeedView {
	fv := &FeedView{
		pager:        pager,
		variant:      feed.VariantFeed,
		localization: localization,
		grid:         NewCardGrid(localization),
	}

	fv.statusLabel = widget.NewLabel("")
	fv.statusLabel.Alignment = fyne.TextAlignCenter
	fv.retryBtn = widget.NewButton(localization.GetText(KeyRetry), fv.onRetry)
	fv.retryBtn.Hide()

	spacer := canvas.NewRectangle(ColorVoid)
	spacer.SetMinSize(fyne.NewSize(CardWidth, SentinelHeight))
	fv.sentinel = container.NewStack(spacer, container.NewVBox(fv.statusLabel, container.NewCenter(fv.retryBtn)))

	fv.scroll = container.NewVScroll(container.NewVBox(fv.grid.Container(), fv.sentinel))
	fv.visibility = newScrollVisibility(fv.scroll, fv.sentinel)
	fv.observer = feed.NewObserver(fv.visibility, pager, feed.DefaultOptions())
	fv.observer.SetStartCallback(func() {
		fyne.Do(fv.updateStatus)
	})
	fv.observer.SetLoadCallback(fv.onLoaded)

	return fv
}

// SetCallbacks sets the card action callbacks
func (fv *FeedView) SetCallbacks(isFavorite func(string) bool, onPlay, onFavorite, onReport func(model.Video)) {
	fv.grid.SetCallbacks(isFavorite, onPlay, onFavorite, onReport)
}

// Container returns the scrollable feed
func (fv *FeedView) Container() fyne.CanvasObject {
	return fv.scroll
}

// Grid returns the card grid
func (fv *FeedView) Grid() *CardGrid {
	return fv.grid
}

// Observer returns the sentinel observer
func (fv *FeedView) Observer() *feed.Observer {
	return fv.observer
}

// Render rebuilds the grid from the pager and re-checks the sentinel.
// It must run on the UI goroutine.
func (fv *FeedView) Render() {
	fv.grid.SetEntries(fv.pager.WithSponsoredInsertions(fv.variant))
	fv.updateStatus()
	fv.scroll.Refresh()
	fv.visibility.Check()
}

// Close stops observing the sentinel
func (fv *FeedView) Close() {
	fv.observer.Close()
}

func (fv *FeedView) onLoaded(err error) {
	fv.mu.Lock()
	fv.lastErr = err
	fv.mu.Unlock()

	fyne.Do(func() {
		fv.updateStatus()
		if err == nil {
			fv.visibility.Check()
		}
	})
}

func (fv *FeedView) onRetry() {
	fv.retryBtn.Hide()
	fv.statusLabel.SetText(fv.localization.GetText(KeyLoadingMore))
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), feed.LoadTimeout)
		defer cancel()
		fv.onLoaded(fv.pager.LoadMore(ctx))
	}()
}

func (fv *FeedView) updateStatus() {
	fv.mu.Lock()
	err := fv.lastErr
	fv.mu.Unlock()

	switch {
	case fv.observer.Loading() || fv.pager.Loading():
		fv.statusLabel.SetText(fv.localization.GetText(KeyLoadingMore))
		fv.retryBtn.Hide()
	case err != nil && errors.Is(err, feed.ErrFetchFailed):
		fv.statusLabel.SetText(fv.localization.GetText(KeyLoadFailed))
		fv.retryBtn.Show()
	case !fv.pager.HasMore():
		fv.statusLabel.SetText(fv.localization.GetText(KeyEndOfFeed))
		fv.retryBtn.Hide()
	default:
		fv.statusLabel.SetText("")
		fv.retryBtn.Hide()
	}
}

// refreshTexts updates localized texts
func (fv *FeedView) refreshTexts() {
	fv.retryBtn.SetText(fv.localization.GetText(KeyRetry))
	fv.updateStatus()
}
