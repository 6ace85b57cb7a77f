package ui

import (
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voidplay/internal/catalog"
	"github.com/ytget/voidplay/internal/config"
	"github.com/ytget/voidplay/internal/feed"
	"github.com/ytget/voidplay/internal/jobs"
	"github.com/ytget/voidplay/internal/keybind"
	"github.com/ytget/voidplay/internal/library"
	"github.com/ytget/voidplay/internal/model"
	"github.com/ytget/voidplay/internal/player"
)

// Tab indexes
const (
	TabFeed = iota
	TabSearch
	TabCategories
	TabFavorites
	TabAdmin
)

// Deps carries the services the root UI is wired to
type Deps struct {
	Settings  *config.Settings
	Pager     *feed.Pager
	Player    *player.Controller
	Library   *library.Library
	Jobs      *jobs.Board
	Scheduler player.Scheduler

	// Corpus backs search, categories and related videos. When nil the
	// videos loaded into the feed are used.
	Corpus []model.Video
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	pager      *feed.Pager
	controller *player.Controller
	library    *library.Library
	board      *jobs.Board
	scheduler  player.Scheduler
	corpus     []model.Video
	keys       *keybind.Binding

	tabs       *container.AppTabs
	feedView   *FeedView
	searchView *SearchView
	categories *CategoriesView
	favorites  *FavoritesView
	jobsView   *JobsView
	panel      *PlayerPanel

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationTimer     *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, deps Deps) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(deps.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     deps.Settings,
		localization: localization,
		pager:        deps.Pager,
		controller:   deps.Player,
		library:      deps.Library,
		board:        deps.Jobs,
		scheduler:    deps.Scheduler,
		corpus:       deps.Corpus,
		keys:         keybind.New(deps.Player),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Service callbacks arrive on worker goroutines
	ui.pager.SetUpdateCallback(func([]model.Video) {
		fyne.Do(ui.onFeedUpdate)
	})
	ui.controller.SetUpdateCallback(func(s player.State) {
		fyne.Do(func() { ui.onPlayerUpdate(s) })
	})
	ui.library.SetUpdateCallback(func() {
		fyne.Do(ui.onLibraryUpdate)
	})
	ui.board.SetUpdateCallback(func(model.Job) {
		fyne.Do(ui.jobsView.Render)
	})

	log.Printf("RootUI initialized with %d feed videos", len(ui.pager.Videos()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.feedView = NewFeedView(ui.pager, ui.localization)
	ui.searchView = NewSearchView(ui.corpusVideos, ui.settings, ui.localization)
	ui.categories = NewCategoriesView(ui.corpusVideos, ui.localization)
	ui.favorites = NewFavoritesView(ui.library, ui.localization)
	ui.jobsView = NewJobsView(ui.board, func() int { return len(ui.corpusVideos()) }, ui.localization, ui.window)
	ui.panel = NewPlayerPanel(ui.controller, ui.settings, ui.localization, ui.window)

	for _, grid := range ui.grids() {
		grid.SetCallbacks(ui.library.IsFavorite, ui.onPlayIntent, ui.onFavoriteIntent, ui.onReportIntent)
	}

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyFeed), ui.feedView.Container()),
		container.NewTabItem(ui.localization.GetText(KeySearch), ui.searchView.Container()),
		container.NewTabItem(ui.localization.GetText(KeyCategories), ui.categories.Container()),
		container.NewTabItem(ui.localization.GetText(KeyFavorites), ui.favorites.Container()),
		container.NewTabItem(ui.localization.GetText(KeyAdmin), ui.jobsView.Container()),
	)
	ui.tabs.OnSelected = func(*container.TabItem) {
		switch ui.tabs.SelectedIndex() {
		case TabCategories:
			ui.categories.Render()
		case TabAdmin:
			ui.jobsView.Render()
		}
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	var header *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, container.NewHBox(logoImage, title), settingsBtn)
	} else {
		header = container.NewBorder(nil, nil, title, settingsBtn)
	}

	// Notification panel under the header (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	top := container.NewVBox(header, ui.notificationContainer)
	content := container.NewBorder(top, nil, nil, ui.panel.Container(), ui.tabs)
	ui.window.SetContent(content)

	ui.feedView.Render()
	ui.categories.Render()
	if ui.scheduler != nil {
		ui.panel.StartPlayhead(ui.scheduler)
	}

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	names := []string{KeyFeed, KeySearch, KeyCategories, KeyFavorites, KeyAdmin}
	for i, item := range ui.tabs.Items {
		item.Text = ui.localization.GetText(names[i])
	}
	ui.tabs.Refresh()

	ui.feedView.refreshTexts()
	ui.searchView.refreshTexts()
	ui.panel.refreshTexts()
	ui.favorites.Render()
	ui.jobsView.Render()
	for _, grid := range ui.grids() {
		grid.RefreshFavorites()
	}
}

// Close detaches key handling and stops background work
func (ui *RootUI) Close() {
	ui.keys.Detach()
	ui.panel.StopPlayhead()
	ui.feedView.Close()
	ui.controller.Close()
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
}

func (ui *RootUI) grids() []*CardGrid {
	return []*CardGrid{
		ui.feedView.Grid(),
		ui.searchView.Results(),
		ui.categories.Videos(),
		ui.favorites.Videos(),
	}
}

// corpusVideos returns the videos search and categories work over
func (ui *RootUI) corpusVideos() []model.Video {
	if ui.corpus != nil {
		return ui.corpus
	}
	return ui.pager.Videos()
}

func (ui *RootUI) onFeedUpdate() {
	ui.feedView.Render()
	if ui.corpus == nil {
		ui.categories.Render()
	}
}

// onPlayerUpdate renders the panel and keeps key handling attached while the
// player is open
func (ui *RootUI) onPlayerUpdate(s player.State) {
	ui.panel.Render(s)
	if s.Visible {
		ui.keys.Attach(ui.window.Canvas())
	} else {
		ui.keys.Detach()
	}
}

func (ui *RootUI) onLibraryUpdate() {
	ui.favorites.Render()
	for _, grid := range ui.grids() {
		grid.RefreshFavorites()
	}
}

// onPlayIntent loads video into the player and seeds an empty queue with
// related videos
func (ui *RootUI) onPlayIntent(video model.Video) {
	if err := ui.controller.Play(video, ui.settings.GetAutoplay()); err != nil {
		if errors.Is(err, player.ErrNotPlayable) {
			ui.showTimedNotification(ui.localization.GetText(KeyNotPlayable))
			return
		}
		log.Printf("Play %s failed: %v", video.ID, err)
		dialog.ShowError(err, ui.window)
		return
	}

	if len(ui.controller.Snapshot().Queue) > 0 {
		return
	}
	for _, related := range catalog.Related(video, ui.corpusVideos(), catalog.DefaultRelatedLimit) {
		if err := ui.controller.Enqueue(related); err != nil {
			log.Printf("Enqueue %s failed: %v", related.ID, err)
		}
	}
}

func (ui *RootUI) onFavoriteIntent(video model.Video) {
	if ui.library.ToggleFavorite(video) {
		ui.showTimedNotification(ui.localization.GetText(KeyFavorites) + ": " + video.Title)
	}
}

// onReportIntent asks for a reason and files a report
func (ui *RootUI) onReportIntent(video model.Video) {
	reasons := make([]string, len(library.Reasons))
	for i, r := range library.Reasons {
		reasons[i] = string(r)
	}
	reasonSelect := widget.NewSelect(reasons, nil)
	reasonSelect.SetSelected(reasons[0])
	noteEntry := widget.NewMultiLineEntry()
	noteEntry.SetPlaceHolder(ui.localization.GetText(KeyReportNote))

	form := container.NewVBox(
		widget.NewLabel(video.Title),
		widget.NewLabel(ui.localization.GetText(KeyReportReason)+":"),
		reasonSelect,
		noteEntry,
	)

	d := dialog.NewCustomConfirm(
		ui.localization.GetText(KeyReport),
		ui.localization.GetText(KeyReport),
		ui.localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if _, err := ui.library.Report(video.ID, library.ReportReason(reasonSelect.Selected), noteEntry.Text); err != nil {
				dialog.ShowError(err, ui.window)
				return
			}
			ui.showTimedNotification(ui.localization.GetText(KeyReported))
		},
		ui.window,
	)
	d.Resize(fyne.NewSize(400, 300))
	d.Show()
}

// showNotification displays a message in the notification panel under the header.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// showTimedNotification shows message and hides it after ToastAutoHide
func (ui *RootUI) showTimedNotification(message string) {
	ui.showNotification(message, false)
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(ui.hideNotification)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies what takes effect without a restart
func (ui *RootUI) onSettingsSaved() {
	if err := ui.controller.SetPlaybackRate(ui.settings.GetPlaybackRate()); err != nil {
		log.Printf("Apply playback rate: %v", err)
	}
	ui.controller.SetVolume(ui.settings.GetVolume())
	ui.pager.SetSponsoredCadence(ui.settings.GetSponsoredCadence())
	ui.feedView.Render()

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.showTimedNotification(ui.localization.GetText(KeyRestartRequired))
}
