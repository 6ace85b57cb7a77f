package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/voidplay/internal/feed"
	"github.com/ytget/voidplay/internal/model"
)

// CardGrid lays out video cards and reuses them across updates
type CardGrid struct {
	grid         *fyne.Container
	cards        []*VideoCard
	localization *Localization

	isFavorite func(id string) bool
	onPlay     func(model.Video)
	onFavorite func(model.Video)
	onReport   func(model.Video)
}

// NewCardGrid creates an empty grid
func NewCardGrid(localization *Localization) *CardGrid {
	return &CardGrid{
		grid:         container.NewGridWrap(fyne.NewSize(CardWidth, CardHeight)),
		localization: localization,
	}
}

// SetCallbacks sets the card action callbacks
func (g *CardGrid) SetCallbacks(isFavorite func(string) bool, onPlay, onFavorite, onReport func(model.Video)) {
	g.isFavorite = isFavorite
	g.onPlay = onPlay
	g.onFavorite = onFavorite
	g.onReport = onReport
}

// Container returns the grid container
func (g *CardGrid) Container() *fyne.Container {
	return g.grid
}

// Len returns the number of rendered cards
func (g *CardGrid) Len() int {
	return len(g.cards)
}

// SetEntries renders entries, reusing existing cards in place
func (g *CardGrid) SetEntries(entries []feed.Entry) {
	for i, e := range entries {
		fav := g.isFavorite != nil && g.isFavorite(e.Video.ID)
		if i < len(g.cards) {
			g.cards[i].Update(e, fav)
			continue
		}
		card := NewVideoCard(e, g.localization)
		card.SetCallbacks(g.onPlay, g.onFavorite, g.onReport)
		if fav {
			card.Update(e, fav)
		}
		g.cards = append(g.cards, card)
	}
	g.cards = g.cards[:len(entries)]

	objects := make([]fyne.CanvasObject, len(g.cards))
	for i, c := range g.cards {
		objects[i] = c
	}
	g.grid.Objects = objects
	g.grid.Refresh()
}

// SetVideos renders organic videos
func (g *CardGrid) SetVideos(videos []model.Video) {
	entries := make([]feed.Entry, len(videos))
	for i, v := range videos {
		entries[i] = feed.Entry{Video: v}
	}
	g.SetEntries(entries)
}

// RefreshFavorites re-evaluates favorite markers without changing entries
func (g *CardGrid) RefreshFavorites() {
	for _, c := range g.cards {
		fav := g.isFavorite != nil && g.isFavorite(c.Entry().Video.ID)
		c.Update(c.Entry(), fav)
	}
}
