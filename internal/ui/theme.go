package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/voidplay/internal/format"
)

// Palette
var (
	ColorAccent  = color.NRGBA{R: 0xE5, G: 0x09, B: 0x14, A: 0xFF}
	ColorVoid    = color.NRGBA{R: 0x0F, G: 0x0F, B: 0x0F, A: 0xFF}
	ColorSurface = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	ColorRaised  = color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xFF}
	ColorMuted   = color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
	ColorSuccess = color.NRGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF}
	ColorInfo    = color.NRGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	ColorWarning = color.NRGBA{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF}
)

// VoidTheme is the dark, compact application theme
type VoidTheme struct{}

// NewVoidTheme creates the application theme
func NewVoidTheme() fyne.Theme {
	return &VoidTheme{}
}

// Color returns theme colors. The palette is dark regardless of variant.
func (t *VoidTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorVoid
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return ColorSurface
	case theme.ColorNameHeaderBackground:
		return ColorRaised
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameError:
		return ColorAccent
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameWarning:
		return ColorWarning
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorMuted
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *VoidTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *VoidTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *VoidTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 2
	}
	return theme.DefaultTheme().Size(name)
}

// ToneColor returns the badge color of a status tone
func ToneColor(tone format.Tone) color.Color {
	switch tone {
	case format.ToneSuccess:
		return ColorSuccess
	case format.ToneInfo:
		return ColorInfo
	case format.ToneError:
		return ColorAccent
	case format.ToneWarning:
		return ColorWarning
	default:
		return ColorMuted
	}
}
