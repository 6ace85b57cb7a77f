package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("VOIDPLAY_CATALOG_SOURCE", "youtube")
	t.Setenv("VOIDPLAY_YOUTUBE_TOKEN", "secret")
	t.Setenv("VOIDPLAY_CATALOG_PAGE_SIZE", "20")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Expected missing env file to be ignored, got %v", err)
	}
	if env.Catalog.Source != "youtube" || env.Youtube.Token != "secret" || env.Catalog.PageSize != 20 {
		t.Errorf("Unexpected env: %+v", env)
	}
	if env.Catalog.MockDelay != 800*time.Millisecond {
		t.Errorf("Expected default mock delay, got %v", env.Catalog.MockDelay)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("VOIDPLAY_YOUTUBE_QUERY=ambient\n"), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv("VOIDPLAY_YOUTUBE_QUERY", "")
	os.Unsetenv("VOIDPLAY_YOUTUBE_QUERY")

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if env.Youtube.Query != "ambient" {
		t.Errorf("Expected query from env file, got %q", env.Youtube.Query)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("VOIDPLAY_CATALOG_PAGE_SIZE", "many")

	if _, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected error for invalid page size")
	}
}

func TestApplyEnv(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.ApplyEnv(Env{
		Catalog: Catalog{Playlist: "PLabc", PageSize: 8},
		Youtube: Youtube{Query: "jazz"},
		Player:  Player{Language: "ru"},
	})

	if settings.GetCatalogSource() != SourcePlaylist {
		t.Errorf("Expected playlist source, got %s", settings.GetCatalogSource())
	}
	if settings.GetPlaylist() != "PLabc" || settings.GetPageSize() != 8 {
		t.Error("Expected playlist and page size from env")
	}
	if settings.GetSearchQuery() != "jazz" || settings.GetLanguage() != "ru" {
		t.Error("Expected query and language from env")
	}

	settings.ApplyEnv(Env{})
	if settings.GetPlaylist() != "PLabc" {
		t.Error("Empty env must leave preferences untouched")
	}
}
