package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if v := settings.GetVolume(); v != DefaultVolume {
		t.Errorf("Expected default volume %v, got %v", DefaultVolume, v)
	}

	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{name: "inside", set: 0.3, want: 0.3},
		{name: "above", set: 4, want: 1},
		{name: "below", set: -2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings.SetVolume(tt.set)
			if got := settings.GetVolume(); got != tt.want {
				t.Errorf("Expected volume %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPlaybackRate(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if rate := settings.GetPlaybackRate(); rate != DefaultPlaybackRate {
		t.Errorf("Expected default rate %v, got %v", DefaultPlaybackRate, rate)
	}

	settings.SetPlaybackRate(1.5)
	if rate := settings.GetPlaybackRate(); rate != 1.5 {
		t.Errorf("Expected rate 1.5, got %v", rate)
	}

	settings.SetPlaybackRate(3)
	if rate := settings.GetPlaybackRate(); rate != DefaultPlaybackRate {
		t.Errorf("Unsupported rate should fall back to %v, got %v", DefaultPlaybackRate, rate)
	}
}

func TestMutedAndAutoplay(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMuted() {
		t.Error("Expected unmuted by default")
	}
	if settings.GetAutoplay() != DefaultAutoplay {
		t.Errorf("Expected default autoplay %v", DefaultAutoplay)
	}

	settings.SetMuted(true)
	settings.SetAutoplay(false)
	if !settings.GetMuted() || settings.GetAutoplay() {
		t.Error("Expected stored mute and autoplay values")
	}
}

func TestPageSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.GetPageSize(); size != DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultPageSize, size)
	}

	settings.SetPageSize(24)
	if size := settings.GetPageSize(); size != 24 {
		t.Errorf("Expected page size 24, got %d", size)
	}

	settings.SetPageSize(0)
	if settings.GetPageSize() != 1 {
		t.Error("Page size should be clamped to minimum 1")
	}

	settings.SetPageSize(500)
	if settings.GetPageSize() != 50 {
		t.Error("Page size should be clamped to maximum 50")
	}
}

func TestSponsoredCadence(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if cadence := settings.GetSponsoredCadence(); cadence != DefaultSponsoredCadence {
		t.Errorf("Expected default cadence %d, got %d", DefaultSponsoredCadence, cadence)
	}

	settings.SetSponsoredCadence(1)
	if settings.GetSponsoredCadence() != 2 {
		t.Error("Cadence should be clamped to minimum 2")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language pt, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %s", code)
		}
	}
}

func TestCatalogSource(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if source := settings.GetCatalogSource(); source != SourceMock {
		t.Errorf("Expected default source %s, got %s", SourceMock, source)
	}

	settings.SetCatalogSource(SourceYouTube)
	if source := settings.GetCatalogSource(); source != SourceYouTube {
		t.Errorf("Expected source %s, got %s", SourceYouTube, source)
	}

	settings.SetCatalogSource("ftp")
	if source := settings.GetCatalogSource(); source != DefaultCatalogSource {
		t.Errorf("Unknown source should fall back to %s, got %s", DefaultCatalogSource, source)
	}

	if len(settings.GetCatalogSourceOptions()) != 3 {
		t.Error("Expected 3 catalog sources")
	}
}

func TestSearchQueryAndPlaylist(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if q := settings.GetSearchQuery(); q != DefaultSearchQuery {
		t.Errorf("Expected default query %s, got %s", DefaultSearchQuery, q)
	}
	settings.SetSearchQuery("   ")
	if q := settings.GetSearchQuery(); q != DefaultSearchQuery {
		t.Errorf("Blank query should fall back to %s, got %s", DefaultSearchQuery, q)
	}

	settings.SetPlaylist("  PL123  ")
	if p := settings.GetPlaylist(); p != "PL123" {
		t.Errorf("Expected trimmed playlist, got %q", p)
	}
}

func TestRecentSearches(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	for _, term := range []string{"lofi", "jazz", "LOFI", "synth", "rock", "ambient", "drums"} {
		settings.AddRecentSearch(term)
	}
	settings.AddRecentSearch("  ")

	recent := settings.GetRecentSearches()
	want := []string{"drums", "ambient", "rock", "synth", "LOFI"}
	if len(recent) != len(want) {
		t.Fatalf("Expected %v, got %v", want, recent)
	}
	for i := range want {
		if recent[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], recent[i])
		}
	}
}
