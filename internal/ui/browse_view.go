package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voidplay/internal/catalog"
	"github.com/ytget/voidplay/internal/feed"
	"github.com/ytget/voidplay/internal/format"
	"github.com/ytget/voidplay/internal/library"
	"github.com/ytget/voidplay/internal/model"
)

// CategoriesView lists categories and the videos of the selected one
type CategoriesView struct {
	corpus       func() []model.Video
	localization *Localization

	buttons *fyne.Container
	title   *widget.Label
	videos  *CardGrid
	root    fyne.CanvasObject
}

// NewCategoriesView creates the categories view
func NewCategoriesView(corpus func() []model.Video, localization *Localization) *CategoriesView {
	cv := &CategoriesView{
		corpus:       corpus,
		localization: localization,
		buttons:      container.NewHBox(),
		title:        widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		videos:       NewCardGrid(localization),
	}

	top := container.NewVBox(container.NewHScroll(cv.buttons), cv.title)
	cv.root = container.NewBorder(top, nil, nil, nil, container.NewVScroll(cv.videos.Container()))
	return cv
}

// Container returns the view
func (cv *CategoriesView) Container() fyne.CanvasObject {
	return cv.root
}

// Videos returns the category grid
func (cv *CategoriesView) Videos() *CardGrid {
	return cv.videos
}

// Render rebuilds the category buttons. It must run on the UI goroutine.
func (cv *CategoriesView) Render() {
	cv.buttons.RemoveAll()
	for _, c := range catalog.Categories(cv.corpus()) {
		name := c.Name
		btn := widget.NewButton(name+" ("+format.Count(c.VideoCount)+")", func() { cv.Select(name) })
		cv.buttons.Add(btn)
	}
	cv.buttons.Refresh()
}

// Select shows the videos of one category
func (cv *CategoriesView) Select(name string) {
	cv.title.SetText(name)
	videos := catalog.ByCategory(cv.corpus(), name)
	cv.videos.SetEntries(feed.InsertSponsored(videos, nil, feed.VariantCategory, 0))
}

// FavoritesView shows the favorite videos
type FavoritesView struct {
	library      *library.Library
	localization *Localization

	empty  *widget.Label
	videos *CardGrid
	root   fyne.CanvasObject
}

// NewFavoritesView creates the favorites view
func NewFavoritesView(lib *library.Library, localization *Localization) *FavoritesView {
	fv := &FavoritesView{
		library:      lib,
		localization: localization,
		empty:        widget.NewLabel(localization.GetText(KeyNoFavorites)),
		videos:       NewCardGrid(localization),
	}
	fv.root = container.NewBorder(fv.empty, nil, nil, nil, container.NewVScroll(fv.videos.Container()))
	fv.Render()
	return fv
}

// Container returns the view
func (fv *FavoritesView) Container() fyne.CanvasObject {
	return fv.root
}

// Videos returns the favorites grid
func (fv *FavoritesView) Videos() *CardGrid {
	return fv.videos
}

// Render reloads the favorites. It must run on the UI goroutine.
func (fv *FavoritesView) Render() {
	favorites := fv.library.Favorites()
	fv.videos.SetVideos(favorites)
	fv.empty.SetText(fv.localization.GetText(KeyNoFavorites))
	if len(favorites) == 0 {
		fv.empty.Show()
	} else {
		fv.empty.Hide()
	}
}
