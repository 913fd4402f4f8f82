package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
)

// tabButton marks the active tab with high importance.
type tabButton struct {
	button *widget.Button
}

var _ app.Pane = tabButton{}

func (b tabButton) SetActive(active bool) {
	fyne.Do(func() {
		if active {
			b.button.Importance = widget.HighImportance
		} else {
			b.button.Importance = widget.MediumImportance
		}
		b.button.Refresh()
	})
}

// paneToggle shows a page or settings panel only while its tab is active.
type paneToggle struct {
	obj fyne.CanvasObject
}

var _ app.Pane = paneToggle{}

func (p paneToggle) SetActive(active bool) {
	fyne.Do(func() {
		if active {
			p.obj.Show()
		} else {
			p.obj.Hide()
		}
	})
}
