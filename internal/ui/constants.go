package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings    = "⚙"
	IconPlay        = "▶"
	IconPause       = "⏸"
	IconClose       = "×"
	IconFavorite    = "♥"
	IconNotFavorite = "♡"
	IconReport      = "⚑"
	IconMuted       = "🔇"
	IconVolume      = "🔊"
	IconMini        = "▭"
	IconFullscreen  = "⛶"
	IconSponsored   = "★"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	PositionFormat     = "%s / %s"
	RateFormat         = "%gx"
)

// Layout sizing
const (
	CardWidth       float32 = 240
	CardHeight      float32 = 250
	ThumbnailHeight float32 = 135
	CardTitleLength         = 60

	PlayerPanelWidth  float32 = 360
	PlayerThumbHeight float32 = 200
	QueuePreviewSize          = 5

	SentinelHeight float32 = 40
	WindowWidth    float32 = 1280
	WindowHeight   float32 = 820
)

// Toast notification behavior
const (
	ToastAutoHide = 3 * time.Second
)

// Playhead timing
const (
	PlayheadInterval = time.Second
)

// Search
const (
	TrendingSuggestions = 5
)
