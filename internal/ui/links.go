package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
)

// logRow renders one transcript entry.
func (a *App) logRow(e app.LogEntry) fyne.CanvasObject {
	if e.Link != nil {
		return a.linkRow(*e.Link)
	}
	l := widget.NewLabel(e.Time.Format("15:04:05") + "  " + e.String())
	l.Wrapping = fyne.TextWrapWord
	switch e.Kind {
	case app.LogError:
		l.Importance = widget.DangerImportance
	case app.LogSuccess:
		l.Importance = widget.SuccessImportance
	}
	return l
}

// linkRow renders a download affordance. Archives held in the artifact
// store save straight from memory; decrypted members link to the server
// and can be fetched into a save dialog.
func (a *App) linkRow(l app.Link) fyne.CanvasObject {
	if l.IsArtifact() {
		return widget.NewButtonWithIcon("Download: "+l.Label, theme.DownloadIcon(), func() {
			a.saveArtifact(l)
		})
	}

	var label fyne.CanvasObject
	if u, err := url.Parse(l.URL); err == nil {
		label = widget.NewHyperlink(l.Label, u)
	} else {
		label = widget.NewLabel(l.Label)
	}
	save := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		a.fetchMember(l)
	})
	return container.NewHBox(label, save)
}

// saveArtifact saves a held archive. Released archives report an error.
func (a *App) saveArtifact(l app.Link) {
	art, data, err := a.dash.Artifacts.Open(l.URL)
	if err != nil {
		dialog.ShowError(err, a.Window)
		return
	}
	a.showSaveDialog(art.Filename, data)
}

// fetchMember downloads a decrypted member and offers to save it.
func (a *App) fetchMember(l app.Link) {
	go func() {
		arc, err := a.dash.Runner.Fetch(a.ctx, l)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(err, a.Window)
				return
			}
			a.showSaveDialog(arc.Filename, arc.Data)
		})
	}()
}
