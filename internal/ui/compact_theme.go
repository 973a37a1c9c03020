package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the application
var (
	ColorTint        = color.NRGBA{R: 0x0a, G: 0x7e, B: 0xa4, A: 0xff}
	ColorError       = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	ColorCard        = color.NRGBA{R: 0xf0, G: 0xf4, B: 0xf8, A: 0xff}
	ColorText        = color.NRGBA{R: 0x11, G: 0x18, B: 0x1c, A: 0xff}
	ColorTextMuted   = color.NRGBA{R: 0x68, G: 0x70, B: 0x76, A: 0xff}
	ColorBorder      = color.NRGBA{R: 0xe1, G: 0xe4, B: 0xe8, A: 0xff}
	ColorPlaceholder = color.NRGBA{R: 0xa0, G: 0xa4, B: 0xa7, A: 0xff}
	ColorDarkBg      = color.NRGBA{R: 0x15, G: 0x17, B: 0x18, A: 0xff}
	ColorDarkText    = color.NRGBA{R: 0xec, G: 0xed, B: 0xee, A: 0xff}
	ColorDarkIcon    = color.NRGBA{R: 0x9b, G: 0xa1, B: 0xa6, A: 0xff}
)

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return ColorError
	case theme.ColorNamePrimary, theme.ColorNameHyperlink, theme.ColorNameFocus:
		return ColorTint
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorPlaceholder
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		if variant == theme.VariantDark {
			return ColorDarkIcon
		}
		return ColorBorder
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		if variant == theme.VariantDark {
			return ColorDarkBg
		}
		return ColorCard
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return ColorDarkBg
		}
		return color.White
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return ColorDarkText
		}
		return ColorText
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 8 // Rounded inputs
	case theme.SizeNameSelectionRadius:
		return 4
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
