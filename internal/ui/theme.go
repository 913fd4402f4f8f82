package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DashboardTheme is the compact dashboard theme. A non-system variant
// pins the theme to light or dark regardless of the OS setting.
type DashboardTheme struct {
	variant fyne.ThemeVariant
	forced  bool
}

var _ fyne.Theme = (*DashboardTheme)(nil)

// NewDashboardTheme creates the theme for a config value of "system",
// "light" or "dark". Unknown names follow the system.
func NewDashboardTheme(name string) fyne.Theme {
	switch name {
	case "light":
		return &DashboardTheme{variant: theme.VariantLight, forced: true}
	case "dark":
		return &DashboardTheme{variant: theme.VariantDark, forced: true}
	default:
		return &DashboardTheme{}
	}
}

// Color returns the color for the specified name and variant.
func (t *DashboardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}

	switch name {
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
		}
		return color.RGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF}

	case theme.ColorNamePlaceHolder:
		if variant == theme.VariantLight {
			return color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
		}
		return color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF}

	case theme.ColorNameInputBorder:
		if variant == theme.VariantLight {
			return color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
		}
		return color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}

	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

// Font returns the font resource for the specified text style.
func (t *DashboardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon resource for the specified name.
func (t *DashboardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name.
func (t *DashboardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 12 // default is 16
	case theme.SizeNameInputBorder:
		return 2
	case theme.SizeNameInputRadius:
		return 4
	default:
		return theme.DefaultTheme().Size(name)
	}
}
