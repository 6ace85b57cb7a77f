package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/voidplay/internal/player"
)

// CatalogSource selects where feed pages come from
type CatalogSource string

const (
	SourceMock     CatalogSource = "mock"
	SourceYouTube  CatalogSource = "youtube"
	SourcePlaylist CatalogSource = "playlist"
)

// Settings keys for Fyne preferences
const (
	KeyVolume           = "player_volume"
	KeyMuted            = "player_muted"
	KeyPlaybackRate     = "player_playback_rate"
	KeyAutoplay         = "player_autoplay"
	KeyPageSize         = "feed_page_size"
	KeySponsoredCadence = "feed_sponsored_cadence"
	KeyLanguage         = "app_language"
	KeyCatalogSource    = "catalog_source"
	KeySearchQuery      = "catalog_search_query"
	KeyPlaylist         = "catalog_playlist"
	KeyRecentSearches   = "recent_searches"
)

// Default values
const (
	DefaultVolume           = 1.0
	DefaultPlaybackRate     = 1.0
	DefaultAutoplay         = true
	DefaultPageSize         = 12
	DefaultSponsoredCadence = 10
	DefaultLanguage         = "system"
	DefaultCatalogSource    = SourceMock
	DefaultSearchQuery      = "music"
	MaxRecentSearches       = 5
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVolume returns the stored player volume
func (s *Settings) GetVolume() float64 {
	v := s.app.Preferences().FloatWithFallback(KeyVolume, DefaultVolume)
	if v < 0 || v > 1 {
		return DefaultVolume
	}
	return v
}

// SetVolume stores the player volume clamped to [0, 1]
func (s *Settings) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.app.Preferences().SetFloat(KeyVolume, v)
}

// GetMuted returns whether the player starts muted
func (s *Settings) GetMuted() bool {
	return s.app.Preferences().Bool(KeyMuted)
}

// SetMuted stores the mute flag
func (s *Settings) SetMuted(muted bool) {
	s.app.Preferences().SetBool(KeyMuted, muted)
}

// GetPlaybackRate returns the stored playback rate
func (s *Settings) GetPlaybackRate() float64 {
	rate := s.app.Preferences().FloatWithFallback(KeyPlaybackRate, DefaultPlaybackRate)
	if !player.IsSupportedRate(rate) {
		return DefaultPlaybackRate
	}
	return rate
}

// SetPlaybackRate stores rate when it is a supported playback rate
func (s *Settings) SetPlaybackRate(rate float64) {
	if !player.IsSupportedRate(rate) {
		rate = DefaultPlaybackRate
	}
	s.app.Preferences().SetFloat(KeyPlaybackRate, rate)
}

// GetAutoplay returns whether selected videos start playing immediately
func (s *Settings) GetAutoplay() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoplay, DefaultAutoplay)
}

// SetAutoplay sets whether selected videos start playing immediately
func (s *Settings) SetAutoplay(autoplay bool) {
	s.app.Preferences().SetBool(KeyAutoplay, autoplay)
}

// GetPageSize returns the number of videos fetched per feed page
func (s *Settings) GetPageSize() int {
	value := s.app.Preferences().Int(KeyPageSize)
	if value <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return value
}

// SetPageSize sets the feed page size
func (s *Settings) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > 50 {
		size = 50
	}
	s.app.Preferences().SetInt(KeyPageSize, size)
}

// GetSponsoredCadence returns how many organic videos separate sponsored cards
func (s *Settings) GetSponsoredCadence() int {
	value := s.app.Preferences().Int(KeySponsoredCadence)
	if value <= 0 {
		s.SetSponsoredCadence(DefaultSponsoredCadence)
		return DefaultSponsoredCadence
	}
	return value
}

// SetSponsoredCadence sets the sponsored cadence
func (s *Settings) SetSponsoredCadence(cadence int) {
	if cadence < 2 {
		cadence = 2
	}
	if cadence > 100 {
		cadence = 100
	}
	s.app.Preferences().SetInt(KeySponsoredCadence, cadence)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetCatalogSource returns the configured catalog source
func (s *Settings) GetCatalogSource() CatalogSource {
	switch source := CatalogSource(s.app.Preferences().String(KeyCatalogSource)); source {
	case SourceMock, SourceYouTube, SourcePlaylist:
		return source
	default:
		return DefaultCatalogSource
	}
}

// SetCatalogSource sets the catalog source
func (s *Settings) SetCatalogSource(source CatalogSource) {
	s.app.Preferences().SetString(KeyCatalogSource, string(source))
}

// GetCatalogSourceOptions returns available catalog sources
func (s *Settings) GetCatalogSourceOptions() []CatalogSource {
	return []CatalogSource{SourceMock, SourceYouTube, SourcePlaylist}
}

// GetSearchQuery returns the query used by the YouTube source
func (s *Settings) GetSearchQuery() string {
	return s.app.Preferences().StringWithFallback(KeySearchQuery, DefaultSearchQuery)
}

// SetSearchQuery sets the YouTube source query
func (s *Settings) SetSearchQuery(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = DefaultSearchQuery
	}
	s.app.Preferences().SetString(KeySearchQuery, query)
}

// GetPlaylist returns the playlist URL or id used by the playlist source
func (s *Settings) GetPlaylist() string {
	return s.app.Preferences().String(KeyPlaylist)
}

// SetPlaylist sets the playlist URL or id
func (s *Settings) SetPlaylist(playlist string) {
	s.app.Preferences().SetString(KeyPlaylist, strings.TrimSpace(playlist))
}

// GetRecentSearches returns recent search terms, newest first
func (s *Settings) GetRecentSearches() []string {
	return s.app.Preferences().StringList(KeyRecentSearches)
}

// AddRecentSearch records a search term, keeping the newest MaxRecentSearches
func (s *Settings) AddRecentSearch(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	recent := []string{term}
	for _, existing := range s.GetRecentSearches() {
		if strings.EqualFold(existing, term) {
			continue
		}
		recent = append(recent, existing)
		if len(recent) == MaxRecentSearches {
			break
		}
	}
	s.app.Preferences().SetStringList(KeyRecentSearches, recent)
}
