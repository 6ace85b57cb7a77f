package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/voidplay/internal/catalog"
	"github.com/ytget/voidplay/internal/config"
	"github.com/ytget/voidplay/internal/feed"
	"github.com/ytget/voidplay/internal/jobs"
	"github.com/ytget/voidplay/internal/library"
	"github.com/ytget/voidplay/internal/model"
	"github.com/ytget/voidplay/internal/player"
	"github.com/ytget/voidplay/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "io.ytget.voidplay"
	AppName = "VoidPlay"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	env, err := config.LoadEnv()
	if err != nil {
		log.Printf("Environment not applied: %v", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewVoidTheme())

	settings := config.NewSettings(myApp)
	settings.ApplyEnv(env)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	source, corpus := newSource(settings, env)

	pager := feed.NewPager(source)
	if corpus == nil {
		// Remote catalogs start empty and load their first page through the sentinel
		pager.SetDefaultSeed(catalog.Page{HasMore: true})
		pager.Initialize(nil)
	}
	pager.SetSponsoredCadence(settings.GetSponsoredCadence())

	scheduler := player.NewClockScheduler(nil)
	root := ui.NewRootUI(myWindow, ui.Deps{
		Settings:  settings,
		Pager:     pager,
		Player:    player.NewController(scheduler),
		Library:   library.New(),
		Jobs:      jobs.NewBoard(catalog.MockJobs()),
		Scheduler: scheduler,
		Corpus:    corpus,
	})
	myWindow.SetOnClosed(root.Close)

	myWindow.ShowAndRun()
}

// newSource builds the configured catalog source. The returned corpus is nil
// for remote sources; it falls back to the mock corpus when the configured
// source cannot be created.
func newSource(settings *config.Settings, env config.Env) (catalog.Source, []model.Video) {
	switch settings.GetCatalogSource() {
	case config.SourceYouTube:
		src, err := catalog.NewYouTubeSource(context.Background(), env.Youtube.Token, settings.GetSearchQuery())
		if err == nil && env.Youtube.Token != "" {
			src.SetPageSize(settings.GetPageSize())
			log.Printf("Using YouTube catalog for %q", settings.GetSearchQuery())
			return src, nil
		}
		log.Printf("YouTube catalog unavailable (token set: %v, err: %v), using mock catalog", env.Youtube.Token != "", err)
	case config.SourcePlaylist:
		src, err := catalog.NewPlaylistSource(settings.GetPlaylist())
		if err == nil {
			src.SetPageSize(settings.GetPageSize())
			log.Printf("Using playlist catalog %s", settings.GetPlaylist())
			return src, nil
		}
		log.Printf("Playlist catalog unavailable: %v, using mock catalog", err)
	}

	mock := catalog.NewMockSource(nil)
	mock.SetPageSize(settings.GetPageSize())
	mock.SetDelay(env.Catalog.MockDelay)
	return mock, catalog.Corpus()
}
