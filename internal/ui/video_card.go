package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voidplay/internal/feed"
	"github.com/ytget/voidplay/internal/format"
	"github.com/ytget/voidplay/internal/model"
)

// VideoCard renders one feed entry
type VideoCard struct {
	widget.BaseWidget

	entry        feed.Entry
	favorite     bool
	localization *Localization
	now          func() time.Time

	// UI components
	thumbnail     *canvas.Rectangle
	durationText  *canvas.Text
	statusText    *canvas.Text
	titleLabel    *widget.Label
	metaLabel     *widget.Label
	badgesLabel   *widget.Label
	progressBar   *widget.ProgressBar
	etaLabel      *widget.Label
	sponsoredText *canvas.Text

	// Action buttons
	playBtn     *widget.Button
	favoriteBtn *widget.Button
	reportBtn   *widget.Button

	// Callbacks
	onPlay     func(model.Video)
	onFavorite func(model.Video)
	onReport   func(model.Video)
}

// NewVideoCard creates a card widget for entry
func NewVideoCard(entry feed.Entry, localization *Localization) *VideoCard {
	vc := &VideoCard{
		entry:        entry,
		localization: localization,
		now:          time.Now,
	}
	vc.ExtendBaseWidget(vc)
	vc.createUI()
	vc.updateFromEntry()
	return vc
}

// SetCallbacks sets the action callbacks
func (vc *VideoCard) SetCallbacks(onPlay, onFavorite, onReport func(model.Video)) {
	vc.onPlay = onPlay
	vc.onFavorite = onFavorite
	vc.onReport = onReport
}

// Update replaces the rendered entry
func (vc *VideoCard) Update(entry feed.Entry, favorite bool) {
	vc.entry = entry
	vc.favorite = favorite
	vc.updateFromEntry()
	vc.Refresh()
}

// Entry returns the rendered entry
func (vc *VideoCard) Entry() feed.Entry {
	return vc.entry
}

func (vc *VideoCard) createUI() {
	vc.thumbnail = canvas.NewRectangle(ColorRaised)
	vc.thumbnail.SetMinSize(fyne.NewSize(CardWidth, ThumbnailHeight))
	vc.thumbnail.CornerRadius = 6

	vc.durationText = canvas.NewText("", color.White)
	vc.durationText.TextSize = 11
	vc.durationText.TextStyle = fyne.TextStyle{Monospace: true}

	vc.statusText = canvas.NewText("", ColorMuted)
	vc.statusText.TextSize = 10
	vc.statusText.TextStyle = fyne.TextStyle{Bold: true}

	vc.sponsoredText = canvas.NewText("", ColorWarning)
	vc.sponsoredText.TextSize = 10
	vc.sponsoredText.TextStyle = fyne.TextStyle{Bold: true}

	vc.titleLabel = widget.NewLabel("")
	vc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	vc.titleLabel.Wrapping = fyne.TextWrapWord
	vc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	vc.metaLabel = widget.NewLabel("")
	vc.metaLabel.Truncation = fyne.TextTruncateEllipsis
	vc.badgesLabel = widget.NewLabel("")

	vc.progressBar = widget.NewProgressBar()
	vc.progressBar.Max = 100
	vc.etaLabel = widget.NewLabel("")

	vc.playBtn = widget.NewButton(IconPlay, func() {
		if vc.onPlay != nil {
			vc.onPlay(vc.entry.Video)
		}
	})
	vc.playBtn.Importance = widget.HighImportance

	vc.favoriteBtn = widget.NewButton(IconNotFavorite, func() {
		if vc.onFavorite != nil {
			vc.onFavorite(vc.entry.Video)
		}
	})
	vc.favoriteBtn.Importance = widget.LowImportance

	vc.reportBtn = widget.NewButton(IconReport, func() {
		if vc.onReport != nil {
			vc.onReport(vc.entry.Video)
		}
	})
	vc.reportBtn.Importance = widget.LowImportance
}

// updateFromEntry updates UI components based on the entry
func (vc *VideoCard) updateFromEntry() {
	v := vc.entry.Video

	vc.titleLabel.SetText(format.Truncate(cleanTitle(v.Title), CardTitleLength))
	vc.durationText.Text = format.Duration(v.Duration)

	meta := []string{v.Author}
	if v.Views > 0 {
		meta = append(meta, format.Views(v.Views))
	}
	if !v.CreatedAt.IsZero() {
		meta = append(meta, format.TimeAgo(v.CreatedAt, vc.now()))
	}
	vc.metaLabel.SetText(strings.Join(nonEmpty(meta), MiddleDotSeparator))

	badges := make([]string, 0, len(v.Badges))
	for _, b := range v.Badges {
		badges = append(badges, string(b))
	}
	vc.badgesLabel.SetText(strings.Join(badges, " "))

	if vc.entry.Sponsored {
		vc.sponsoredText.Text = IconSponsored + " " + vc.localization.GetText(KeySponsored)
		vc.reportBtn.Hide()
		vc.favoriteBtn.Hide()
	} else {
		vc.sponsoredText.Text = ""
		vc.reportBtn.Show()
		vc.favoriteBtn.Show()
	}

	vc.statusText.Text = strings.ToUpper(v.Status.String())
	vc.statusText.Color = ToneColor(format.StatusTone(v.Status.String()))

	if percent, ok := v.ProgressPercent(); ok {
		vc.progressBar.SetValue(float64(percent))
		vc.progressBar.Show()
	} else {
		vc.progressBar.Hide()
	}

	if minutes, ok := v.ETAMinutes(); ok {
		vc.etaLabel.SetText(format.ETA(minutes))
		vc.etaLabel.Show()
	} else {
		vc.etaLabel.Hide()
	}

	if v.IsPlayable() {
		vc.playBtn.Enable()
		vc.durationText.Show()
	} else {
		vc.playBtn.Disable()
		vc.durationText.Hide()
	}

	if vc.favorite {
		vc.favoriteBtn.SetText(IconFavorite)
	} else {
		vc.favoriteBtn.SetText(IconNotFavorite)
	}
}

// CreateRenderer creates the widget renderer
func (vc *VideoCard) CreateRenderer() fyne.WidgetRenderer {
	return &videoCardRenderer{card: vc}
}

// videoCardRenderer renders the video card widget
type videoCardRenderer struct {
	card   *VideoCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *videoCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *videoCardRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	size := r.layout.MinSize()
	return fyne.NewSize(fyne.Max(size.Width, CardWidth), fyne.Max(size.Height, CardHeight))
}

// Refresh refreshes the renderer
func (r *videoCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.card.durationText.Refresh()
	r.card.statusText.Refresh()
	r.card.sponsoredText.Refresh()
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *videoCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *videoCardRenderer) Destroy() {}

func (r *videoCardRenderer) createLayout() {
	vc := r.card

	// duration pinned bottom-right, status top-left on the thumbnail
	overlay := container.NewBorder(
		container.NewHBox(vc.statusText),
		container.NewHBox(layout.NewSpacer(), vc.durationText),
		nil, nil,
	)
	thumb := container.NewStack(vc.thumbnail, container.NewPadded(overlay))

	actions := container.NewHBox(vc.playBtn, layout.NewSpacer(), vc.favoriteBtn, vc.reportBtn)

	r.layout = container.NewVBox(
		thumb,
		vc.sponsoredText,
		vc.titleLabel,
		vc.metaLabel,
		vc.badgesLabel,
		vc.progressBar,
		vc.etaLabel,
		actions,
	)
}

// cleanTitle strips control whitespace from titles coming from external sources
func cleanTitle(title string) string {
	title = strings.ReplaceAll(title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\t", " ")
	return strings.TrimSpace(title)
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// videoSummary is the single-line description used by lists
func videoSummary(v model.Video) string {
	return fmt.Sprintf("%s%s%s", format.Truncate(cleanTitle(v.Title), CardTitleLength), MiddleDotSeparator, format.Duration(v.Duration))
}
