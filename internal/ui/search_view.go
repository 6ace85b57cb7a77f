package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voidplay/internal/catalog"
	"github.com/ytget/voidplay/internal/config"
	"github.com/ytget/voidplay/internal/feed"
	"github.com/ytget/voidplay/internal/format"
	"github.com/ytget/voidplay/internal/model"
)

// SearchView searches the catalog and shows grouped suggestions
type SearchView struct {
	corpus       func() []model.Video
	settings     *config.Settings
	localization *Localization

	entry       *widget.Entry
	hintLabel   *widget.Label
	suggestions *fyne.Container
	results     *CardGrid
	root        fyne.CanvasObject
}

// NewSearchView creates the search view
func NewSearchView(corpus func() []model.Video, settings *config.Settings, localization *Localization) *SearchView {
	sv := &SearchView{
		corpus:       corpus,
		settings:     settings,
		localization: localization,
		results:      NewCardGrid(localization),
	}

	sv.entry = widget.NewEntry()
	sv.entry.SetPlaceHolder(localization.GetText(KeySearchPlaceholder))
	sv.entry.OnSubmitted = sv.Search

	sv.hintLabel = widget.NewLabel("")
	sv.suggestions = container.NewVBox()

	top := container.NewVBox(sv.entry, sv.hintLabel, sv.suggestions)
	sv.root = container.NewBorder(top, nil, nil, nil, container.NewVScroll(sv.results.Container()))
	sv.renderSuggestions()
	return sv
}

// Results returns the results grid
func (sv *SearchView) Results() *CardGrid {
	return sv.results
}

// Container returns the view
func (sv *SearchView) Container() fyne.CanvasObject {
	return sv.root
}

// Search runs query against the corpus and records it as a recent search
func (sv *SearchView) Search(query string) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < catalog.MinSearchLength {
		sv.hintLabel.SetText(sv.localization.GetText(KeySearchTooShort))
		sv.results.SetEntries(nil)
		return
	}

	sv.entry.SetText(query)
	found := catalog.Search(sv.corpus(), query)
	entries := feed.InsertSponsored(found, nil, feed.VariantSearch, 0)
	sv.results.SetEntries(entries)

	if len(found) == 0 {
		sv.hintLabel.SetText(sv.localization.GetText(KeyNoResults))
	} else {
		sv.hintLabel.SetText(fmt.Sprintf(sv.localization.GetText(KeyResultsFor), len(found), query))
	}

	sv.settings.AddRecentSearch(query)
	sv.renderSuggestions()
}

func (sv *SearchView) renderSuggestions() {
	sv.suggestions.RemoveAll()

	all := catalog.Suggestions(sv.corpus(), sv.settings.GetRecentSearches(), TrendingSuggestions)
	groups := catalog.GroupSuggestions(all)

	sections := []struct {
		kind  model.SuggestionType
		title string
	}{
		{kind: model.SuggestionRecent, title: sv.localization.GetText(KeyRecent)},
		{kind: model.SuggestionTrending, title: sv.localization.GetText(KeyTrending)},
		{kind: model.SuggestionCategory, title: sv.localization.GetText(KeyCategories)},
	}

	for _, section := range sections {
		items := groups[section.kind]
		if len(items) == 0 {
			continue
		}
		row := container.NewHBox(widget.NewLabelWithStyle(section.title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		for _, s := range items {
			value := s.Value
			label := format.Truncate(s.Label, 28)
			if s.Count > 0 {
				label += " (" + format.Count(s.Count) + ")"
			}
			btn := widget.NewButton(label, func() { sv.Search(value) })
			btn.Importance = widget.LowImportance
			row.Add(btn)
		}
		sv.suggestions.Add(container.NewHScroll(row))
	}
	sv.suggestions.Refresh()
}

// refreshTexts updates localized texts
func (sv *SearchView) refreshTexts() {
	sv.entry.SetPlaceHolder(sv.localization.GetText(KeySearchPlaceholder))
	sv.renderSuggestions()
}
