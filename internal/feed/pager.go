package feed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ytget/voidplay/internal/catalog"
	"github.com/ytget/voidplay/internal/model"
)

// ErrFetchFailed wraps errors returned by the catalog source
var ErrFetchFailed = errors.New("page fetch failed")

const loadMoreKey = "load-more"

// Pager owns the displayed video list and the pagination cursor
type Pager struct {
	source  catalog.Source
	seed    catalog.Page
	pool    []model.Video
	cadence int

	mu        sync.RWMutex
	videos    []model.Video
	ids       map[string]bool
	cursor    string
	hasMore   bool
	loading   bool
	pageCount int

	group    singleflight.Group
	onUpdate func([]model.Video)
}

// NewPager creates a pager over source. The displayed list starts with the
// default seed page of the built-in corpus.
func NewPager(source catalog.Source) *Pager {
	p := &Pager{
		source:  source,
		seed:    catalog.DefaultSeed(),
		pool:    catalog.MockVideos(),
		cadence: SponsoredCadence,
	}
	p.Initialize(nil)
	return p
}

// SetDefaultSeed replaces the page used when Initialize gets no videos
func (p *Pager) SetDefaultSeed(seed catalog.Page) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seed = seed
}

// SetSponsorPool sets the catalog entries sponsored entries are copied from
func (p *Pager) SetSponsorPool(pool []model.Video) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pool = pool
}

// SetSponsoredCadence sets how many organic videos separate sponsored entries
func (p *Pager) SetSponsoredCadence(cadence int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cadence = cadence
}

// SetUpdateCallback sets the callback invoked after the displayed list changes
func (p *Pager) SetUpdateCallback(callback func([]model.Video)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = callback
}

// Initialize resets the displayed list. A non-empty seed restarts paging from
// the first source page; an empty seed falls back to the default seed page and
// continues after it.
func (p *Pager) Initialize(seed []model.Video) {
	p.mu.Lock()
	if len(seed) == 0 {
		p.videos = append([]model.Video(nil), p.seed.Items...)
		p.cursor = p.seed.NextToken
		p.hasMore = p.seed.HasMore
	} else {
		p.videos = append([]model.Video(nil), seed...)
		p.cursor = ""
		p.hasMore = true
	}
	p.ids = make(map[string]bool, len(p.videos))
	for _, v := range p.videos {
		p.ids[v.ID] = true
	}
	p.pageCount = 0
	snapshot, callback := p.snapshotLocked()
	p.mu.Unlock()

	notify(callback, snapshot)
}

// LoadMore fetches the page at the current cursor and appends it. Concurrent
// calls share a single upstream fetch. It is a no-op once the source is
// exhausted.
func (p *Pager) LoadMore(ctx context.Context) error {
	_, err, _ := p.group.Do(loadMoreKey, func() (interface{}, error) {
		return nil, p.loadPage(ctx)
	})
	return err
}

func (p *Pager) loadPage(ctx context.Context) error {
	p.mu.Lock()
	if !p.hasMore || p.loading {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	cursor := p.cursor
	p.mu.Unlock()

	page, err := p.source.FetchPage(ctx, cursor)

	p.mu.Lock()
	p.loading = false
	if err != nil {
		p.mu.Unlock()
		log.Printf("Feed page %q failed: %v", cursor, err)
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	added := 0
	for _, v := range page.Items {
		if p.ids[v.ID] {
			continue
		}
		p.ids[v.ID] = true
		p.videos = append(p.videos, v)
		added++
	}
	p.cursor = page.NextToken
	p.hasMore = page.HasMore
	p.pageCount++
	pages := p.pageCount
	snapshot, callback := p.snapshotLocked()
	p.mu.Unlock()

	log.Printf("Feed page %d appended %d videos (more=%v)", pages, added, page.HasMore)
	notify(callback, snapshot)
	return nil
}

// Videos returns a copy of the displayed list
func (p *Pager) Videos() []model.Video {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Video(nil), p.videos...)
}

// HasMore reports whether the source may still have pages
func (p *Pager) HasMore() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hasMore
}

// Loading reports whether a fetch is in flight
func (p *Pager) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// PageCount returns how many pages were appended since the last Initialize
func (p *Pager) PageCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pageCount
}

// WithSponsoredInsertions returns the displayed list with sponsored entries
// interleaved according to the variant
func (p *Pager) WithSponsoredInsertions(variant Variant) []Entry {
	p.mu.RLock()
	videos := p.videos
	pool := p.pool
	cadence := p.cadence
	p.mu.RUnlock()

	return InsertSponsored(videos, pool, variant, cadence)
}

func (p *Pager) snapshotLocked() ([]model.Video, func([]model.Video)) {
	if p.onUpdate == nil {
		return nil, nil
	}
	return append([]model.Video(nil), p.videos...), p.onUpdate
}

func notify(callback func([]model.Video), videos []model.Video) {
	if callback != nil {
		callback(videos)
	}
}
