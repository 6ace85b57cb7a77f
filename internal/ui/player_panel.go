package ui

import (
	"fmt"
	"log"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voidplay/internal/config"
	"github.com/ytget/voidplay/internal/format"
	"github.com/ytget/voidplay/internal/player"
)

// PlayerPanel renders the player session and forwards control intents
type PlayerPanel struct {
	controller   *player.Controller
	settings     *config.Settings
	localization *Localization
	window       fyne.Window

	stopPlayhead func()
	saved        savedPrefs
	seeking      bool

	// UI components
	root          *fyne.Container
	thumbnail     *canvas.Rectangle
	titleLabel    *widget.Label
	metaLabel     *widget.Label
	positionLabel *widget.Label
	seekSlider    *widget.Slider
	playBtn       *widget.Button
	muteBtn       *widget.Button
	volumeSlider  *widget.Slider
	rateSelect    *widget.Select
	miniBtn       *widget.Button
	fullBtn       *widget.Button
	closeBtn      *widget.Button
	countdown     *fyne.Container
	countdownText *widget.Label
	cancelBtn     *widget.Button
	upNextLabel   *widget.Label
	queueBox      *fyne.Container
	details       *fyne.Container
}

type savedPrefs struct {
	volume float64
	muted  bool
	rate   float64
}

// NewPlayerPanel creates the panel and applies the stored volume, mute and rate
func NewPlayerPanel(controller *player.Controller, settings *config.Settings, localization *Localization, window fyne.Window) *PlayerPanel {
	p := &PlayerPanel{
		controller:   controller,
		settings:     settings,
		localization: localization,
		window:       window,
	}

	p.saved = savedPrefs{volume: settings.GetVolume(), muted: settings.GetMuted(), rate: settings.GetPlaybackRate()}
	controller.SetVolume(p.saved.volume)
	if p.saved.muted != controller.Snapshot().Muted {
		controller.ToggleMute()
	}
	if err := controller.SetPlaybackRate(p.saved.rate); err != nil {
		log.Printf("Stored playback rate rejected: %v", err)
	}

	p.createUI()
	p.Render(controller.Snapshot())
	return p
}

// Container returns the panel
func (p *PlayerPanel) Container() fyne.CanvasObject {
	return p.root
}

// StartPlayhead advances the playhead once per interval on scheduler
func (p *PlayerPanel) StartPlayhead(scheduler player.Scheduler) {
	p.StopPlayhead()
	p.stopPlayhead = scheduler.Every(PlayheadInterval, func() {
		advancePlayhead(p.controller)
	})
}

// StopPlayhead stops the playhead ticker
func (p *PlayerPanel) StopPlayhead() {
	if p.stopPlayhead != nil {
		p.stopPlayhead()
		p.stopPlayhead = nil
	}
}

// advancePlayhead moves a playing video forward by its playback rate and
// pauses it when it ends with nothing queued
func advancePlayhead(c *player.Controller) {
	s := c.Snapshot()
	if s.Current == nil || !s.Playing {
		return
	}
	if s.Position >= s.Duration {
		if s.Countdown == 0 && len(s.Queue) == 0 {
			c.TogglePlay()
		}
		return
	}
	c.UpdateTime(s.Position + s.Rate)
}

func (p *PlayerPanel) createUI() {
	p.thumbnail = canvas.NewRectangle(ColorRaised)
	p.thumbnail.SetMinSize(fyne.NewSize(PlayerPanelWidth, PlayerThumbHeight))
	p.thumbnail.CornerRadius = 8

	p.titleLabel = widget.NewLabel("")
	p.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.titleLabel.Wrapping = fyne.TextWrapWord
	p.metaLabel = widget.NewLabel("")
	p.metaLabel.Truncation = fyne.TextTruncateEllipsis

	p.positionLabel = widget.NewLabel("")
	p.positionLabel.TextStyle = fyne.TextStyle{Monospace: true}
	p.seekSlider = widget.NewSlider(0, 1)
	p.seekSlider.OnChanged = func(v float64) {
		if !p.seeking {
			p.controller.Seek(v)
		}
	}

	p.playBtn = widget.NewButton(IconPlay, p.controller.TogglePlay)
	p.playBtn.Importance = widget.HighImportance
	p.muteBtn = widget.NewButton(IconVolume, p.controller.ToggleMute)
	p.volumeSlider = widget.NewSlider(0, 1)
	p.volumeSlider.Step = 0.05
	p.volumeSlider.OnChanged = func(v float64) {
		if !p.seeking {
			p.controller.SetVolume(v)
		}
	}

	rates := make([]string, len(player.PlaybackRates))
	for i, r := range player.PlaybackRates {
		rates[i] = fmt.Sprintf(RateFormat, r)
	}
	p.rateSelect = widget.NewSelect(rates, func(selected string) {
		if p.seeking {
			return
		}
		for _, r := range player.PlaybackRates {
			if fmt.Sprintf(RateFormat, r) == selected {
				if err := p.controller.SetPlaybackRate(r); err != nil {
					log.Printf("Playback rate %s rejected: %v", selected, err)
				}
				return
			}
		}
	})

	p.miniBtn = widget.NewButton(IconMini, p.controller.ToggleMiniPlayer)
	p.fullBtn = widget.NewButton(IconFullscreen, p.controller.ToggleFullscreen)
	p.closeBtn = widget.NewButton(IconClose, p.controller.Close)
	p.closeBtn.Importance = widget.LowImportance

	p.countdownText = widget.NewLabel("")
	p.countdownText.TextStyle = fyne.TextStyle{Bold: true}
	p.cancelBtn = widget.NewButton(p.localization.GetText(KeyCancelAutoplay), p.controller.CancelCountdown)
	p.countdown = container.NewHBox(p.countdownText, layout.NewSpacer(), p.cancelBtn)
	p.countdown.Hide()

	p.upNextLabel = widget.NewLabel(p.localization.GetText(KeyUpNext))
	p.upNextLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.queueBox = container.NewVBox()

	header := container.NewHBox(p.miniBtn, p.fullBtn, layout.NewSpacer(), p.closeBtn)
	transport := container.NewBorder(nil, nil, container.NewHBox(p.playBtn, p.muteBtn), p.rateSelect, p.volumeSlider)

	p.details = container.NewVBox(
		p.thumbnail,
		p.metaLabel,
		p.countdown,
		widget.NewSeparator(),
		p.upNextLabel,
		p.queueBox,
	)

	p.root = container.NewVBox(
		header,
		p.titleLabel,
		p.details,
		container.NewBorder(nil, nil, nil, p.positionLabel, p.seekSlider),
		transport,
	)
	p.root.Hide()
}

// Render applies a player snapshot. It must run on the UI goroutine.
func (p *PlayerPanel) Render(s player.State) {
	p.persist(s)

	if !s.Visible || s.Current == nil {
		p.root.Hide()
		if p.window != nil && p.window.FullScreen() {
			p.window.SetFullScreen(false)
		}
		return
	}
	p.root.Show()

	v := s.Current
	p.titleLabel.SetText(cleanTitle(v.Title))
	p.metaLabel.SetText(v.Author + MiddleDotSeparator + format.Views(v.Views))

	// slider callbacks fire on programmatic changes; suppress them while syncing
	p.seeking = true
	p.seekSlider.Max = math.Max(1, s.Duration)
	p.seekSlider.SetValue(s.Position)
	p.volumeSlider.SetValue(s.Volume)
	p.rateSelect.SetSelected(fmt.Sprintf(RateFormat, s.Rate))
	p.seeking = false

	p.positionLabel.SetText(fmt.Sprintf(PositionFormat, format.Position(s.Position), format.Position(s.Duration)))

	if s.Playing {
		p.playBtn.SetText(IconPause)
	} else {
		p.playBtn.SetText(IconPlay)
	}
	if s.Muted {
		p.muteBtn.SetText(IconMuted)
	} else {
		p.muteBtn.SetText(IconVolume)
	}

	if s.Countdown > 0 {
		p.countdownText.SetText(fmt.Sprintf(p.localization.GetText(KeyPlayingNextIn), s.Countdown))
		p.countdown.Show()
	} else {
		p.countdown.Hide()
	}

	p.renderQueue(s)

	if s.MiniPlayer {
		p.details.Hide()
	} else {
		p.details.Show()
	}
	if p.window != nil && p.window.FullScreen() != s.Fullscreen {
		p.window.SetFullScreen(s.Fullscreen)
	}
	p.root.Refresh()
}

func (p *PlayerPanel) renderQueue(s player.State) {
	p.queueBox.RemoveAll()
	if len(s.Queue) == 0 {
		p.queueBox.Add(widget.NewLabel(p.localization.GetText(KeyQueueEmpty)))
		return
	}
	for i, v := range s.Queue {
		if i == QueuePreviewSize {
			p.queueBox.Add(widget.NewLabel("+" + strconv.Itoa(len(s.Queue)-QueuePreviewSize)))
			break
		}
		index := i
		btn := widget.NewButton(videoSummary(v), func() {
			if err := p.controller.PlayFromQueue(index); err != nil {
				log.Printf("Queue item %d: %v", index, err)
			}
		})
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		p.queueBox.Add(btn)
	}
}

// persist stores volume, mute and rate when they changed
func (p *PlayerPanel) persist(s player.State) {
	if s.Volume != p.saved.volume {
		p.settings.SetVolume(s.Volume)
		p.saved.volume = s.Volume
	}
	if s.Muted != p.saved.muted {
		p.settings.SetMuted(s.Muted)
		p.saved.muted = s.Muted
	}
	if s.Rate != p.saved.rate {
		p.settings.SetPlaybackRate(s.Rate)
		p.saved.rate = s.Rate
	}
}

// refreshTexts updates localized texts
func (p *PlayerPanel) refreshTexts() {
	p.cancelBtn.SetText(p.localization.GetText(KeyCancelAutoplay))
	p.upNextLabel.SetText(p.localization.GetText(KeyUpNext))
	p.Render(p.controller.Snapshot())
}
