package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadEnv
const EnvPrefix = "VOIDPLAY"

// Env is the process environment configuration. Empty values leave the
// stored preferences untouched.
type Env struct {
	Catalog Catalog
	Youtube Youtube
	Player  Player
}

// Catalog is read from VOIDPLAY_CATALOG_*
type Catalog struct {
	Source    string        `envconfig:"SOURCE"`
	Playlist  string        `envconfig:"PLAYLIST"`
	PageSize  int           `envconfig:"PAGE_SIZE"`
	MockDelay time.Duration `envconfig:"MOCK_DELAY" default:"800ms"`
}

// Youtube is read from VOIDPLAY_YOUTUBE_*
type Youtube struct {
	Token string `envconfig:"TOKEN"`
	Query string `envconfig:"QUERY"`
}

// Player is read from VOIDPLAY_PLAYER_*
type Player struct {
	Language string `envconfig:"LANGUAGE"`
}

// LoadEnv loads the given dotenv files (".env" when none) when they exist and
// processes the environment into Env
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to load env file: %w", err)
	}

	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("failed to process environment: %w", err)
	}
	return env, nil
}

// ApplyEnv copies the non-empty environment values into the preferences
func (s *Settings) ApplyEnv(env Env) {
	if env.Catalog.Source != "" {
		s.SetCatalogSource(CatalogSource(env.Catalog.Source))
	}
	if env.Catalog.Playlist != "" {
		s.SetPlaylist(env.Catalog.Playlist)
		if env.Catalog.Source == "" {
			s.SetCatalogSource(SourcePlaylist)
		}
	}
	if env.Catalog.PageSize > 0 {
		s.SetPageSize(env.Catalog.PageSize)
	}
	if env.Youtube.Query != "" {
		s.SetSearchQuery(env.Youtube.Query)
	}
	if env.Player.Language != "" {
		s.SetLanguage(env.Player.Language)
	}
}
