package ui

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voidplay/internal/config"
	"github.com/ytget/voidplay/internal/player"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	rateSelect     *widget.Select
	autoplayCheck  *widget.Check
	volumeSlider   *widget.Slider
	pageSizeEntry  *widget.Entry
	cadenceEntry   *widget.Entry
	sourceSelect   *widget.Select
	queryEntry     *widget.Entry
	playlistEntry  *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	rates := make([]string, len(player.PlaybackRates))
	for i, r := range player.PlaybackRates {
		rates[i] = fmt.Sprintf(RateFormat, r)
	}
	sd.rateSelect = widget.NewSelect(rates, nil)
	sd.autoplayCheck = widget.NewCheck(text(KeyAutoplay), nil)
	sd.volumeSlider = widget.NewSlider(0, 1)
	sd.volumeSlider.Step = 0.05

	sd.pageSizeEntry = widget.NewEntry()
	sd.pageSizeEntry.SetPlaceHolder("1-50")
	sd.cadenceEntry = widget.NewEntry()
	sd.cadenceEntry.SetPlaceHolder("2-100")

	sources := []string{}
	for _, s := range sd.settings.GetCatalogSourceOptions() {
		sources = append(sources, string(s))
	}
	sd.sourceSelect = widget.NewSelect(sources, nil)
	sd.queryEntry = widget.NewEntry()
	sd.playlistEntry = widget.NewEntry()
	sd.playlistEntry.SetPlaceHolder("https://www.youtube.com/playlist?list=...")

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(text(KeyPlayerSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(text(KeyPlaybackRate)+":"),
		sd.rateSelect,
		widget.NewLabel(text(KeyVolume)+":"),
		sd.volumeSlider,
		sd.autoplayCheck,

		widget.NewLabelWithStyle(text(KeyFeedSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(text(KeyPageSize)+":"),
		sd.pageSizeEntry,
		widget.NewLabel(text(KeySponsoredCadence)+":"),
		sd.cadenceEntry,
		widget.NewLabel(text(KeyCatalogSource)+":"),
		sd.sourceSelect,
		widget.NewLabel(text(KeySearchQuery)+":"),
		sd.queryEntry,
		widget.NewLabel(text(KeyPlaylist)+":"),
		sd.playlistEntry,

		widget.NewLabelWithStyle(text(KeyInterfaceSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 560))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.rateSelect.SetSelected(fmt.Sprintf(RateFormat, sd.settings.GetPlaybackRate()))
	sd.autoplayCheck.SetChecked(sd.settings.GetAutoplay())
	sd.volumeSlider.SetValue(sd.settings.GetVolume())
	sd.pageSizeEntry.SetText(strconv.Itoa(sd.settings.GetPageSize()))
	sd.cadenceEntry.SetText(strconv.Itoa(sd.settings.GetSponsoredCadence()))
	sd.sourceSelect.SetSelected(string(sd.settings.GetCatalogSource()))
	sd.queryEntry.SetText(sd.settings.GetSearchQuery())
	sd.playlistEntry.SetText(sd.settings.GetPlaylist())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save stores the dialog values; invalid numbers leave the stored value
func (sd *SettingsDialog) save() {
	for _, r := range player.PlaybackRates {
		if fmt.Sprintf(RateFormat, r) == sd.rateSelect.Selected {
			sd.settings.SetPlaybackRate(r)
		}
	}
	sd.settings.SetAutoplay(sd.autoplayCheck.Checked)
	sd.settings.SetVolume(sd.volumeSlider.Value)

	if size, err := strconv.Atoi(sd.pageSizeEntry.Text); err == nil {
		sd.settings.SetPageSize(size)
	}
	if cadence, err := strconv.Atoi(sd.cadenceEntry.Text); err == nil {
		sd.settings.SetSponsoredCadence(cadence)
	}

	if sd.sourceSelect.Selected != "" {
		sd.settings.SetCatalogSource(config.CatalogSource(sd.sourceSelect.Selected))
	}
	sd.settings.SetSearchQuery(sd.queryEntry.Text)
	sd.settings.SetPlaylist(sd.playlistEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
