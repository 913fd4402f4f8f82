package ui

import (
	"image/color"

	"fyne.io/fyne/v2/theme"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

func kindColor(k app.LogKind) color.Color {
	switch k {
	case app.LogError:
		return util.RED
	case app.LogSuccess:
		return util.GREEN
	case app.LogLink:
		return util.YELLOW
	default:
		return theme.Color(theme.ColorNameForeground)
	}
}
